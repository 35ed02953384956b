package models

// Order is the snapshot handed to the notification channel at checkout time.
// It lives for the duration of the dispatch call and is never stored.
type Order struct {
	FullName   string     `json:"full_name"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone"`
	City       string     `json:"city"`
	Address    string     `json:"address"`
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"total_price"`
	Currency   string     `json:"currency"`
}
