package models

import "strings"

// Cart is an ordered list of items. It owns its backing slice; callers only
// ever see copies.
type Cart struct {
	items []Item
}

func NewCart() *Cart {
	return &Cart{items: []Item{}}
}

// Add appends item to the end of the cart.
func (c *Cart) Add(item Item) {
	c.items = append(c.items, item)
}

// RemoveByName drops every item whose name matches name case-insensitively
// and returns how many were removed.
func (c *Cart) RemoveByName(name string) int {
	kept := c.items[:0]
	for _, it := range c.items {
		if !strings.EqualFold(it.Name, name) {
			kept = append(kept, it)
		}
	}
	removed := len(c.items) - len(kept)
	// clear the tail so dropped names aren't retained by the backing array
	clear(c.items[len(kept):])
	c.items = kept
	return removed
}

// Replace swaps the whole content of the cart for a copy of items.
func (c *Cart) Replace(items []Item) {
	c.items = append(make([]Item, 0, len(items)), items...)
}

func (c *Cart) Items() []Item {
	return append(make([]Item, 0, len(c.items)), c.items...)
}

func (c *Cart) Len() int { return len(c.items) }

// Total is recomputed on every call.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Cost()
	}
	return total
}
