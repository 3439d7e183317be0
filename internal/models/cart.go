package models

// CartLine represents a product (and optional variant) in the shopping cart
type CartLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unit_price"` // in whole pesos
	Quantity  int    `json:"quantity"`
	Variant   string `json:"variant,omitempty"`
	Image     string `json:"image,omitempty"`
}

// Subtotal returns the line total
func (l CartLine) Subtotal() int {
	return l.UnitPrice * l.Quantity
}

// Cart represents the shopping cart of one browser session.
// Lines are keyed by (ProductID, Variant): the same product in two
// different variants occupies two lines.
type Cart struct {
	Lines []CartLine `json:"lines"`
	Open  bool       `json:"open"` // cart drawer visibility flag
}

// AddLine adds a line to the cart. If a line with the same product and
// variant already exists its quantity is incremented instead. A quantity
// of zero or less counts as one. Adding always opens the cart drawer.
func (c *Cart) AddLine(line CartLine) {
	if line.Quantity <= 0 {
		line.Quantity = 1
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID && c.Lines[i].Variant == line.Variant {
			c.Lines[i].Quantity += line.Quantity
			c.Open = true
			return
		}
	}

	c.Lines = append(c.Lines, line)
	c.Open = true
}

// RemoveLine deletes the line matching the product and variant.
// Removing a line that is not in the cart is a no-op.
func (c *Cart) RemoveLine(productID, variant string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID && c.Lines[i].Variant == variant {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity of the matching line. A quantity of
// zero or less removes the line.
func (c *Cart) SetQuantity(productID string, quantity int, variant string) {
	if quantity <= 0 {
		c.RemoveLine(productID, variant)
		return
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == productID && c.Lines[i].Variant == variant {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties all lines
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalQuantity returns the sum of line quantities, recomputed on every call
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// TotalAmount returns the sum of line subtotals, recomputed on every call
func (c *Cart) TotalAmount() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Subtotal()
	}
	return total
}
