// Package cart holds the ordered collection of configured lines for one
// session.
package cart

import (
	"github.com/shopspring/decimal"

	"shekinah-storefront/pkg/models"
)

// Cart preserves insertion order; the order message lists lines in the order
// they were added. Lines are never edited in place — a change is a remove
// followed by a fresh add.
type Cart struct {
	lines []models.CartLine
}

func New() *Cart {
	return &Cart{}
}

// Append adds a line to the end of the cart.
func (c *Cart) Append(line models.CartLine) {
	c.lines = append(c.lines, line)
}

// Remove deletes the line with the given id. Removing an absent id is a
// no-op.
func (c *Cart) Remove(lineID string) {
	for i, l := range c.lines {
		if l.ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart in one step.
func (c *Cart) Clear() {
	c.lines = nil
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal sums the stored line totals. The sum stays unrounded; rendering
// to two decimals happens only at display and serialization time.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.TotalPrice)
	}
	return total
}
