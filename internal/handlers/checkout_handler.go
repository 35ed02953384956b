package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/nordixdotma/kamano/internal/cart"
	"github.com/nordixdotma/kamano/internal/catalog"
	"github.com/nordixdotma/kamano/internal/models"
)

// Field messages shown next to the checkout form inputs.
const (
	msgRequired      = "مطلوب"
	msgInvalidEmail  = "بريد إلكتروني غير صحيح"
	msgOrderAccepted = "تم إرسال الطلب بنجاح! سنتواصل معك قريباً."
	msgEmptyCart     = "السلة فارغة"
)

// OrderNotifier forwards an order snapshot to the notification channel.
type OrderNotifier interface {
	SendOrderEmail(ctx context.Context, order models.Order) error
}

type CheckoutHandler struct {
	Carts    *cart.Store
	Notifier OrderNotifier
	WhatsApp WhatsAppLinker
}

type CheckoutRequest struct {
	CartID   string `json:"cart_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Address  string `json:"address"`
}

type WhatsAppCheckoutRequest struct {
	CartID string `json:"cart_id" binding:"required"`
}

var validate = validator.New()

// POST /v1/checkout/order
//
// The form path: validate the contact fields, snapshot the cart, dispatch the
// e-mail and clear the cart. A dispatch failure is logged and masked as
// success; the WhatsApp path stays available as the fallback contact method.
func (h *CheckoutHandler) SubmitOrder(c *gin.Context) {
	const op = "CheckoutHandler.SubmitOrder"
	log := slog.With("op", op)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.CartID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cart_id is required"})
		return
	}

	if fieldErrors := validateCheckout(&req); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, FieldErrorsResponse{Errors: fieldErrors})
		return
	}

	snapshot, ok := h.loadNonEmptyCart(c, req.CartID)
	if !ok {
		return
	}

	order := models.Order{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		City:       req.City,
		Address:    req.Address,
		Items:      snapshot.Items,
		TotalPrice: snapshot.TotalPrice(),
		Currency:   catalog.Currency,
	}

	// The notification is non-critical: a failed e-mail must not block the
	// customer, so the response is the same either way.
	if err := h.Notifier.SendOrderEmail(c.Request.Context(), order); err != nil {
		log.Error("failed to send order notification email", "err", err)
	}

	if err := h.Carts.Clear(req.CartID); err != nil {
		log.Warn("failed to clear cart after checkout", "err", err)
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: msgOrderAccepted})
}

// POST /v1/checkout/whatsapp
//
// The WhatsApp path: no validation, no delivery confirmation. The cart is
// serialized into the deep link and kept as-is.
func (h *CheckoutHandler) WhatsAppOrder(c *gin.Context) {
	var req WhatsAppCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	snapshot, ok := h.loadNonEmptyCart(c, req.CartID)
	if !ok {
		return
	}

	url := h.WhatsApp.OrderLink(snapshot.Items, snapshot.TotalPrice(), catalog.Currency)
	c.JSON(http.StatusOK, WhatsAppLinkResponse{URL: url})
}

func (h *CheckoutHandler) loadNonEmptyCart(c *gin.Context, cartID string) (models.Cart, bool) {
	snapshot, err := h.Carts.Get(cartID)
	if err != nil {
		if errors.Is(err, cart.ErrCartNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "cart not found"})
		} else {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "cart operation failed"})
		}
		return models.Cart{}, false
	}
	if len(snapshot.Items) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgEmptyCart})
		return models.Cart{}, false
	}
	return snapshot, true
}

// validateCheckout trims the contact fields and returns per-field messages.
// Email is optional but must look like an address when present.
func validateCheckout(req *CheckoutRequest) map[string]string {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.City = strings.TrimSpace(req.City)
	req.Address = strings.TrimSpace(req.Address)

	fieldErrors := make(map[string]string)
	if req.FullName == "" {
		fieldErrors["full_name"] = msgRequired
	}
	if req.Phone == "" {
		fieldErrors["phone"] = msgRequired
	}
	if req.City == "" {
		fieldErrors["city"] = msgRequired
	}
	if req.Address == "" {
		fieldErrors["address"] = msgRequired
	}
	if req.Email != "" {
		if err := validate.Var(req.Email, "email"); err != nil {
			fieldErrors["email"] = msgInvalidEmail
		}
	}
	return fieldErrors
}
