package models_test

import (
	"strconv"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityaanand10062000/storefront-api/models"
)

func randomProduct() models.Product {
	return models.Product{
		ID:          uint(gofakeit.Number(1, 100_000)),
		Name:        gofakeit.ProductName(),
		Price:       decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2),
		Description: gofakeit.Sentence(8),
		ImageFile:   gofakeit.Word() + ".jpg",
		Stock:       gofakeit.Number(0, 50),
	}
}

func key(p models.Product) string {
	return strconv.FormatUint(uint64(p.ID), 10)
}

func TestCartAddSnapshotsProduct(t *testing.T) {
	p := randomProduct()
	cart := models.Cart{}

	item := cart.Add(p)

	want := models.CartItem{
		Name:     p.Name,
		Price:    p.Price.InexactFloat64(),
		Quantity: 1,
		Image:    p.ImageFile,
	}
	if diff := cmp.Diff(want, item); diff != "" {
		t.Errorf("unexpected cart item (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, cart[key(p)]); diff != "" {
		t.Errorf("unexpected stored line (-want +got):\n%s", diff)
	}
}

func TestCartAddAgainIncrementsQuantityOnly(t *testing.T) {
	p := randomProduct()
	cart := models.Cart{}

	first := cart.Add(p)
	second := cart.Add(p)

	require.Len(t, cart, 1)
	assert.Equal(t, 2, second.Quantity)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.Price, second.Price)
	assert.Equal(t, first.Image, second.Image)
}

func TestCartAddKeepsSnapshotAfterPriceChange(t *testing.T) {
	p := randomProduct()
	p.Price = decimal.RequireFromString("9.99")
	cart := models.Cart{}
	cart.Add(p)

	// A catalog price change between adds must not refresh the line.
	p.Price = decimal.RequireFromString("19.99")
	item := cart.Add(p)

	assert.Equal(t, 9.99, item.Price)
	assert.Equal(t, 2, item.Quantity)
}

func TestCartRemove(t *testing.T) {
	p := randomProduct()
	cart := models.Cart{}
	cart.Add(p)

	assert.False(t, cart.Remove("no-such-id"), "removing an absent line should be a no-op")
	require.Len(t, cart, 1)

	assert.True(t, cart.Remove(key(p)))
	assert.Empty(t, cart)

	assert.False(t, cart.Remove(key(p)), "second removal should find nothing")
}

func TestCartTotalAndUnits(t *testing.T) {
	widget := models.Product{ID: 1, Name: "Widget", Price: decimal.RequireFromString("9.99"), ImageFile: "widget.jpg"}
	gadget := models.Product{ID: 2, Name: "Gadget", Price: decimal.RequireFromString("4.50"), ImageFile: "gadget.jpg"}

	cart := models.Cart{}
	assert.Zero(t, cart.Total())
	assert.Zero(t, cart.Units())

	cart.Add(widget)
	cart.Add(widget)
	cart.Add(gadget)

	assert.InDelta(t, 24.48, cart.Total(), 1e-9)
	assert.Equal(t, 3, cart.Units())
}

func TestCartWidgetScenario(t *testing.T) {
	widget := models.Product{ID: 1, Name: "Widget", Price: decimal.RequireFromString("9.99"), ImageFile: "widget.jpg"}
	cart := models.Cart{}

	item := cart.Add(widget)
	assert.Equal(t, models.CartItem{Name: "Widget", Price: 9.99, Quantity: 1, Image: "widget.jpg"}, item)

	item = cart.Add(widget)
	assert.Equal(t, 2, item.Quantity)
	assert.InDelta(t, 19.98, cart.Total(), 1e-9)

	require.True(t, cart.Remove("1"))
	assert.Empty(t, cart)
}
