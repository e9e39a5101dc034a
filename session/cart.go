package session

// CartItem is one line of a session cart. Name and price are captured from
// the menu item at add time.
type CartItem struct {
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"` // cents
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes"`
	Subtotal   int64  `json:"subtotal"`
}

// Cart lives only inside a browsing session, never in durable storage.
type Cart struct {
	Items []CartItem `json:"items"`
	Total int64      `json:"total"`
}

// Recalculate recomputes line subtotals and the running total.
func (c *Cart) Recalculate() {
	var total int64
	for i := range c.Items {
		c.Items[i].Subtotal = c.Items[i].Price * int64(c.Items[i].Quantity)
		total += c.Items[i].Subtotal
	}
	c.Total = total
}

// Find returns the index of the line for a menu item, or -1.
func (c *Cart) Find(menuItemID uint) int {
	for i := range c.Items {
		if c.Items[i].MenuItemID == menuItemID {
			return i
		}
	}
	return -1
}
