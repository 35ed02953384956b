package handlers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordixdotma/kamano/internal/handlers"
)

func listedIDs(products []struct {
	ID int `json:"id"`
}) []int {
	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

type listResponse struct {
	Total    int `json:"total"`
	Count    int `json:"count"`
	Products []struct {
		ID int `json:"id"`
	} `json:"products"`
}

func TestGetProducts(t *testing.T) {
	env := newTestEnv(t)

	t.Run("DefaultListingIsNewestFirst", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/v1/products", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, 9, resp.Total)
		assert.Equal(t, 9, resp.Count)
		assert.Equal(t, []int{12, 11, 9, 8, 7, 5, 3, 2, 1}, listedIDs(resp.Products))
	})

	t.Run("SearchTermIsCaseInsensitive", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/v1/products?q=galaxy", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, []int{11, 1}, listedIDs(resp.Products))
	})

	t.Run("BrandFilter", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/v1/products?brand=Apple", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, []int{9, 7, 2}, listedIDs(resp.Products))
	})

	t.Run("PriceRange", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/v1/products?max_price=3000", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, []int{11, 9}, listedIDs(resp.Products))
	})

	t.Run("LoneMinPriceKeepsUpperBoundOpen", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/v1/products?min_price=20000", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, []int{2}, listedIDs(resp.Products))
	})

	t.Run("SortPriceLow", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/v1/products?sort=price-low", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, []int{9, 11, 3, 5, 8, 1, 12, 7, 2}, listedIDs(resp.Products))
	})
}

func TestGetProductByID(t *testing.T) {
	env := newTestEnv(t)

	t.Run("Found", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/v1/products/7", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "iPhone 15 Pro Max")
	})

	t.Run("UnknownID", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/v1/products/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("MalformedID", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/v1/products/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetProductWhatsAppLink(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/products/7/whatsapp?size=512GB", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.WhatsAppLinkResponse
	decodeJSON(t, w, &resp)
	assert.True(t, strings.HasPrefix(resp.URL, "https://wa.me/+212704749027?text="), resp.URL)
}

func TestCategoryListing(t *testing.T) {
	env := newTestEnv(t)

	t.Run("Categories", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/v1/categories", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Categories []string `json:"categories"`
		}
		decodeJSON(t, w, &resp)
		assert.Len(t, resp.Categories, 5)
	})

	t.Run("CategoryLandingPage", func(t *testing.T) {
		path := "/v1/categories/" + url.PathEscape("سماعات") + "/products"
		w := env.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, []int{9, 3}, listedIDs(resp.Products))
	})

	t.Run("UnknownCategoryIs404", func(t *testing.T) {
		path := "/v1/categories/" + url.PathEscape("ملابس") + "/products"
		w := env.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetFilterMetadata(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/filters", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories  []string `json:"categories"`
		Brands      []string `json:"brands"`
		PriceRanges []struct {
			Label string  `json:"label"`
			Min   float64 `json:"min"`
			Max   float64 `json:"max"`
		} `json:"price_ranges"`
		SortOptions []struct {
			Key   string `json:"key"`
			Label string `json:"label"`
		} `json:"sort_options"`
	}
	decodeJSON(t, w, &resp)

	assert.Len(t, resp.Categories, 5)
	assert.Len(t, resp.Brands, 5)
	assert.Len(t, resp.PriceRanges, 6)
	require.Len(t, resp.SortOptions, 5)
	assert.Equal(t, "newest", resp.SortOptions[0].Key)
}
