package models

import "time"

type CartLine struct {
	ItemID   string `json:"itemId"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

func (l CartLine) Total() int { return l.Price * l.Quantity }

// Cart belongs to one browsing session and is never persisted beyond it.
type Cart struct {
	SessionID string     `json:"sessionId"`
	Lines     []CartLine `json:"lines"`
}

// Add puts qty units of item into the cart, merging with an existing line.
// Quantities below one are raised to one.
func (c *Cart) Add(item MenuItem, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ItemID == item.ID {
			c.Lines[i].Quantity += qty
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{ItemID: item.ID, Name: item.Name, Price: item.Price, Quantity: qty})
}

// ChangeQuantity shifts a line's quantity by delta and never lets it drop
// below one; removing a line is a separate action.
func (c *Cart) ChangeQuantity(itemID string, delta int) bool {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Quantity = max(1, c.Lines[i].Quantity+delta)
			return true
		}
	}
	return false
}

func (c *Cart) Remove(itemID string) bool {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// Subtract takes placed lines out of the cart by item and quantity. Anything
// added after the lines were read stays behind.
func (c *Cart) Subtract(placed []CartLine) {
	for _, p := range placed {
		for i := range c.Lines {
			if c.Lines[i].ItemID != p.ItemID {
				continue
			}
			if c.Lines[i].Quantity > p.Quantity {
				c.Lines[i].Quantity -= p.Quantity
			} else {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			}
			break
		}
	}
}

func (c Cart) Subtotal() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Total()
	}
	return total
}

func (c Cart) Empty() bool { return len(c.Lines) == 0 }

// Clone copies the lines so the result can be mutated without touching a
// cached value.
func (c Cart) Clone() Cart {
	out := Cart{SessionID: c.SessionID}
	if c.Lines != nil {
		out.Lines = append(make([]CartLine, 0, len(c.Lines)), c.Lines...)
	}
	return out
}

// PlacedOrder is what gets handed to the order-placement collaborator and
// shown on the confirmation page.
type PlacedOrder struct {
	Number        string       `json:"orderNumber"`
	PlacedAt      time.Time    `json:"placedAt"`
	Request       OrderRequest `json:"request"`
	Lines         []CartLine   `json:"lines"`
	Subtotal      int          `json:"subtotal"`
	Currency      string       `json:"currency"`
	EstimatedTime string       `json:"estimatedTime"`
}
