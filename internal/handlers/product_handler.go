package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nordixdotma/kamano/internal/catalog"
	"github.com/nordixdotma/kamano/internal/models"
)

// Response envelopes shared by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

type FieldErrorsResponse struct {
	Errors map[string]string `json:"errors"`
}

type ProductListResponse struct {
	Total    int              `json:"total"`
	Count    int              `json:"count"`
	Products []models.Product `json:"products"`
}

type WhatsAppLinkResponse struct {
	URL string `json:"url"`
}

type ProductHandler struct {
	Catalog  *catalog.Store
	WhatsApp WhatsAppLinker
}

// WhatsAppLinker builds the outbound deep links.
type WhatsAppLinker interface {
	OrderLink(items []models.CartItem, totalPrice float64, currency string) string
	InquiryLink(p models.Product, size, color string) string
}

// GET /v1/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	all := h.Catalog.All()
	products := catalog.Apply(all, h.buildSelection(c), "")

	c.JSON(http.StatusOK, ProductListResponse{
		Total:    len(all),
		Count:    len(products),
		Products: products,
	})
}

// GET /v1/products/:id
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	product, ok := h.lookupProduct(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, product)
}

// GET /v1/products/:id/whatsapp
//
// Builds the product inquiry deep link with the shopper's variant picks.
func (h *ProductHandler) GetProductWhatsAppLink(c *gin.Context) {
	product, ok := h.lookupProduct(c)
	if !ok {
		return
	}

	url := h.WhatsApp.InquiryLink(product, c.Query("size"), c.Query("color"))
	c.JSON(http.StatusOK, WhatsAppLinkResponse{URL: url})
}

// GET /v1/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Catalog.Categories()})
}

// GET /v1/categories/:category/products
//
// Category landing page listing: the category restriction is fixed and the
// regular filters apply on top of it. An unknown category is a 404.
func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	category := c.Param("category")
	if !h.Catalog.HasCategory(category) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "category not found"})
		return
	}

	all := h.Catalog.All()
	products := catalog.Apply(all, h.buildSelection(c), category)

	c.JSON(http.StatusOK, ProductListResponse{
		Total:    len(all),
		Count:    len(products),
		Products: products,
	})
}

// GET /v1/filters
//
// Metadata the storefront filter bar is built from: the four dropdown panels.
func (h *ProductHandler) GetFilterMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.Catalog.Categories(),
		"brands":     h.Catalog.Brands(),
		"price_ranges": []gin.H{
			{"label": "أقل من 2000 درهم", "min": 0, "max": 2000},
			{"label": "2000 - 5000 درهم", "min": 2000, "max": 5000},
			{"label": "5000 - 10000 درهم", "min": 5000, "max": 10000},
			{"label": "10000 - 15000 درهم", "min": 10000, "max": 15000},
			{"label": "15000 - 25000 درهم", "min": 15000, "max": 25000},
			{"label": "أكثر من 25000 درهم", "min": 25000, "max": 50000},
		},
		"sort_options": []gin.H{
			{"key": catalog.SortNewest, "label": "الأحدث"},
			{"key": catalog.SortPriceLow, "label": "السعر: من الأقل للأعلى"},
			{"key": catalog.SortPriceHigh, "label": "السعر: من الأعلى للأقل"},
			{"key": catalog.SortName, "label": "الاسم: أ-ي"},
			{"key": catalog.SortBrand, "label": "العلامة التجارية"},
		},
	})
}

// --- helpers ---

func (h *ProductHandler) lookupProduct(c *gin.Context) (models.Product, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product ID"})
		return models.Product{}, false
	}

	product, err := h.Catalog.ByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "error fetching product"})
		}
		return models.Product{}, false
	}
	return product, true
}

// buildSelection maps query params onto a filter selection.
func (h *ProductHandler) buildSelection(c *gin.Context) catalog.Selection {
	sel := catalog.Selection{
		Query:      c.Query("q"),
		Categories: c.QueryArray("category"),
		Brands:     c.QueryArray("brand"),
		SortBy:     parseSortKey(c.DefaultQuery("sort", string(catalog.SortNewest))),
	}
	sel.PriceRange = h.buildPriceRange(c)
	return sel
}

func (h *ProductHandler) buildPriceRange(c *gin.Context) catalog.PriceRange {
	var r catalog.PriceRange
	minSet, maxSet := false, false

	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		r.Min = v
		minSet = true
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		r.Max = v
		maxSet = true
	}

	// A lone lower bound keeps the upper bound open.
	if minSet && !maxSet {
		r.Max = maxOpenPrice
	}
	return r
}

const maxOpenPrice = 1 << 53

func parseSortKey(s string) catalog.SortKey {
	switch key := catalog.SortKey(s); key {
	case catalog.SortNewest, catalog.SortPriceLow, catalog.SortPriceHigh,
		catalog.SortName, catalog.SortBrand:
		return key
	default:
		return catalog.SortNewest
	}
}
