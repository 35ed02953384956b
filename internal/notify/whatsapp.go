// Package notify dispatches order notifications to the outside world:
// e-mail through the Resend API and WhatsApp deep links. Both paths are
// fire-and-forget, nothing is persisted.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nordixdotma/kamano/internal/models"
)

// WhatsApp builds wa.me deep links carrying a pre-filled message.
type WhatsApp struct {
	orderPhone   string
	inquiryPhone string
}

func NewWhatsApp(orderPhone, inquiryPhone string) WhatsApp {
	return WhatsApp{orderPhone: orderPhone, inquiryPhone: inquiryPhone}
}

// OrderLink serializes the cart into the order message and returns the link.
// No validation and no delivery confirmation exist on this path.
func (w WhatsApp) OrderLink(items []models.CartItem, totalPrice float64, currency string) string {
	var msg strings.Builder
	msg.WriteString("مرحباً، أريد طلب المنتجات التالية:\n\n")

	for i, item := range items {
		fmt.Fprintf(&msg, "*%d. %s*\n", i+1, item.Name)
		fmt.Fprintf(&msg, "   - الكمية: %d\n", item.Quantity)
		if item.Size != "" {
			fmt.Fprintf(&msg, "   - المواصفات: %s\n", item.Size)
		}
		if item.Color != "" {
			fmt.Fprintf(&msg, "   - اللون: %s\n", item.Color)
		}
		fmt.Fprintf(&msg, "   - السعر: %s\n\n", item.Price.Display())
	}

	fmt.Fprintf(&msg, "*المجموع: %.2f %s*\n\n", totalPrice, currency)
	msg.WriteString("أريد إتمام الطلب. شكراً!")

	return link(w.orderPhone, msg.String())
}

// InquiryLink builds the single-product inquiry message from the product
// detail page, with the shopper's variant picks when present.
func (w WhatsApp) InquiryLink(p models.Product, size, color string) string {
	var msg strings.Builder
	msg.WriteString("مرحباً، أنا مهتم بهذا المنتج:\n\n")
	fmt.Fprintf(&msg, "*%s*\n", p.Name)
	if p.Brand != "" {
		fmt.Fprintf(&msg, "العلامة التجارية: %s\n", p.Brand)
	}
	fmt.Fprintf(&msg, "الفئة: %s\n", p.Category)
	fmt.Fprintf(&msg, "السعر: %s\n", p.Price.Display())
	if size != "" {
		fmt.Fprintf(&msg, "المواصفات: %s\n", size)
	}
	if color != "" {
		fmt.Fprintf(&msg, "اللون: %s\n", color)
	}
	msg.WriteString("\nهل يمكنكم إعطائي المزيد من المعلومات؟")

	return link(w.inquiryPhone, msg.String())
}

func link(phone, message string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     phone,
		RawQuery: url.Values{"text": {message}}.Encode(),
	}
	return u.String()
}
