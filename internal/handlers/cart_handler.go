package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nordixdotma/kamano/internal/cart"
	"github.com/nordixdotma/kamano/internal/catalog"
	"github.com/nordixdotma/kamano/internal/models"
)

type CartHandler struct {
	Catalog *catalog.Store
	Carts   *cart.Store
}

type CartResponse struct {
	ID         string            `json:"id"`
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice float64           `json:"total_price"`
	Currency   string            `json:"currency"`
}

type AddItemRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type UpdateItemRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// POST /v1/cart
func (h *CartHandler) CreateCart(c *gin.Context) {
	created := h.Carts.Create()
	c.JSON(http.StatusCreated, cartResponse(created))
}

// GET /v1/cart/:id
func (h *CartHandler) GetCart(c *gin.Context) {
	current, ok := h.loadCart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cartResponse(current))
}

// POST /v1/cart/:id/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.Catalog.ByID(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
		return
	}

	item := models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.MainImage,
		Price:     product.Price,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	}

	updated, err := h.Carts.AddItem(c.Param("id"), item)
	if err != nil {
		h.cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(updated))
}

// PATCH /v1/cart/:id/items
//
// A quantity of zero or less removes the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	key := models.ItemKey{ProductID: req.ProductID, Size: req.Size, Color: req.Color}
	updated, err := h.Carts.SetQuantity(c.Param("id"), key, req.Quantity)
	if err != nil {
		h.cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(updated))
}

// DELETE /v1/cart/:id/items?product_id=&size=&color=
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Query("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product ID"})
		return
	}

	key := models.ItemKey{ProductID: productID, Size: c.Query("size"), Color: c.Query("color")}
	updated, err := h.Carts.RemoveItem(c.Param("id"), key)
	if err != nil {
		h.cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(updated))
}

// DELETE /v1/cart/:id
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.Carts.Clear(c.Param("id")); err != nil {
		h.cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "cart cleared"})
}

func (h *CartHandler) loadCart(c *gin.Context) (models.Cart, bool) {
	current, err := h.Carts.Get(c.Param("id"))
	if err != nil {
		h.cartError(c, err)
		return models.Cart{}, false
	}
	return current, true
}

func (h *CartHandler) cartError(c *gin.Context, err error) {
	if errors.Is(err, cart.ErrCartNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "cart not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "cart operation failed"})
}

func cartResponse(c models.Cart) CartResponse {
	items := c.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return CartResponse{
		ID:         c.ID,
		Items:      items,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
		Currency:   catalog.Currency,
	}
}
