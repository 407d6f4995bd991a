package models

import (
	"encoding/gob"
	"strconv"
)

func init() {
	// The cart travels inside the session cookie, which is gob-encoded.
	gob.Register(Cart{})
}

// CartItem is one line of the session cart. Name, price and image are
// snapshots taken when the product was first added; later catalog changes
// do not touch existing lines.
type CartItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// Cart is the visitor's in-progress selection, keyed by the product ID
// rendered as a string. It lives in the session and is never written to
// the database; checkout discards it.
type Cart map[string]CartItem

// Add puts one unit of p into the cart and returns the resulting line.
// An existing line keeps its original snapshot and just gains quantity;
// a new line snapshots the product as it is now.
func (c Cart) Add(p Product) CartItem {
	key := strconv.FormatUint(uint64(p.ID), 10)
	item, ok := c[key]
	if ok {
		item.Quantity++
	} else {
		item = CartItem{
			Name:     p.Name,
			Price:    p.Price.InexactFloat64(),
			Quantity: 1,
			Image:    p.ImageFile,
		}
	}
	c[key] = item
	return item
}

// Remove drops the line for productID and reports whether it was present.
// Removing an absent line is a no-op.
func (c Cart) Remove(productID string) bool {
	if _, ok := c[productID]; !ok {
		return false
	}
	delete(c, productID)
	return true
}

// Total is the sum of unit price times quantity over all lines.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Units counts the units across all lines, shown next to the cart link in
// the navigation.
func (c Cart) Units() int {
	var n int
	for _, item := range c {
		n += item.Quantity
	}
	return n
}
