package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/nordixdotma/kamano/internal/cart"
	"github.com/nordixdotma/kamano/internal/catalog"
	"github.com/nordixdotma/kamano/internal/models"
	"github.com/nordixdotma/kamano/internal/notify"
	"github.com/nordixdotma/kamano/internal/routes"
)

type stubNotifier struct {
	err    error
	orders []models.Order
}

func (s *stubNotifier) SendOrderEmail(_ context.Context, order models.Order) error {
	s.orders = append(s.orders, order)
	return s.err
}

type testEnv struct {
	router   *gin.Engine
	carts    *cart.Store
	catalog  *catalog.Store
	notifier *stubNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		carts:    cart.NewStore(time.Hour),
		catalog:  catalog.New(),
		notifier: &stubNotifier{},
	}
	env.router = gin.New()
	routes.RegisterRoutes(
		env.router,
		env.catalog,
		env.carts,
		env.notifier,
		notify.NewWhatsApp("+212643874852", "+212704749027"),
	)
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

// newCartWith opens a cart and adds the given product once per call.
func (e *testEnv) newCartWith(t *testing.T, productID int, quantity int, size, color string) string {
	t.Helper()

	w := e.do(t, http.MethodPost, "/v1/cart", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	decodeJSON(t, w, &created)
	require.NotEmpty(t, created.ID)

	w = e.do(t, http.MethodPost, "/v1/cart/"+created.ID+"/items", gin.H{
		"product_id": productID,
		"quantity":   quantity,
		"size":       size,
		"color":      color,
	})
	require.Equal(t, http.StatusOK, w.Code)

	return created.ID
}
