package models

// CartItem is one cart line. Two lines are the same iff product, size and
// color all match; the same product with another variant is a separate line.
type CartItem struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Price     Price  `json:"price"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	Quantity  int    `json:"quantity"`
}

// ItemKey identifies a cart line.
type ItemKey struct {
	ProductID int    `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

func (i CartItem) Key() ItemKey {
	return ItemKey{ProductID: i.ProductID, Size: i.Size, Color: i.Color}
}

type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

// Add merges the item into an existing line with the same key, or appends a
// new line. Quantities below one are coerced to one.
func (c *Cart) Add(item CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].Key() == item.Key() {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// SetQuantity sets the quantity of the line with the given key.
// A quantity of zero or less removes the line.
func (c *Cart) SetQuantity(key ItemKey, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].Key() == key {
			if quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = quantity
			}
			return true
		}
	}
	return false
}

func (c *Cart) Remove(key ItemKey) bool {
	return c.SetQuantity(key, 0)
}

func (c *Cart) Clear() {
	c.Items = nil
}

// TotalItems is the sum of line quantities.
func (c *Cart) TotalItems() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// TotalPrice is the sum of quantity times unit price over all lines.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items {
		total += float64(item.Quantity) * item.Price.Amount
	}
	return total
}
