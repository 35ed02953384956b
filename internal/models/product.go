package models

import "fmt"

// Price is a numeric amount plus the currency it is displayed in.
// The storefront shows whole dirham amounts, totals keep two decimals.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Display renders the price the way product cards show it, e.g. "12500 درهم".
func (p Price) Display() string {
	if p.Amount == float64(int64(p.Amount)) {
		return fmt.Sprintf("%d %s", int64(p.Amount), p.Currency)
	}
	return fmt.Sprintf("%.2f %s", p.Amount, p.Currency)
}

type Product struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand,omitempty"`
	OldPrice       Price             `json:"old_price"`
	Price          Price             `json:"price"`
	Sizes          []string          `json:"sizes,omitempty"`
	Colors         []string          `json:"colors,omitempty"`
	MainImage      string            `json:"main_image"`
	Images         []string          `json:"images,omitempty"`
	InStock        bool              `json:"in_stock"`
	Specifications map[string]string `json:"specifications,omitempty"`
}
