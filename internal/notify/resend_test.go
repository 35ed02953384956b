package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordixdotma/kamano/internal/models"
)

func testOrder() models.Order {
	return models.Order{
		FullName: "أحمد العلوي",
		Phone:    "+212600000000",
		City:     "الدار البيضاء",
		Address:  "شارع الحسن الثاني، رقم 12",
		Items: []models.CartItem{
			{
				ProductID: 1,
				Name:      "Samsung Galaxy S24 Ultra",
				Price:     models.Price{Amount: 12500, Currency: "درهم"},
				Size:      "256GB",
				Color:     "أسود",
				Quantity:  1,
			},
		},
		TotalPrice: 12500,
		Currency:   "درهم",
	}
}

func TestSendOrderEmail(t *testing.T) {
	t.Run("PostsPayloadToResend", func(t *testing.T) {
		var got map[string]interface{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := NewResendClient("test-key", "noreply@kamano.ma", "orders@kamano.ma")
		client.endpoint = srv.URL

		require.NoError(t, client.SendOrderEmail(context.Background(), testOrder()))

		assert.Equal(t, "noreply@kamano.ma", got["from"])
		assert.Equal(t, "orders@kamano.ma", got["to"])
		assert.Contains(t, got["subject"], "أحمد العلوي")

		html, ok := got["html"].(string)
		require.True(t, ok)
		assert.Contains(t, html, "Samsung Galaxy S24 Ultra")
		assert.Contains(t, html, "256GB / أسود")
		assert.Contains(t, html, "12500.00 درهم")
		assert.Contains(t, html, "شارع الحسن الثاني، رقم 12")
	})

	t.Run("APIErrorStatusIsAnError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := NewResendClient("bad-key", "noreply@kamano.ma", "orders@kamano.ma")
		client.endpoint = srv.URL

		assert.Error(t, client.SendOrderEmail(context.Background(), testOrder()))
	})

	t.Run("MissingAPIKeyIsAnError", func(t *testing.T) {
		client := NewResendClient("", "noreply@kamano.ma", "orders@kamano.ma")
		assert.Error(t, client.SendOrderEmail(context.Background(), testOrder()))
	})
}
