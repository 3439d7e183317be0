package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartAddLine(t *testing.T) {
	t.Run("merges lines with same product and variant", func(t *testing.T) {
		cart := &Cart{}
		cart.AddLine(CartLine{ProductID: "p1", Name: "Vase", UnitPrice: 1000, Quantity: 1})
		cart.AddLine(CartLine{ProductID: "p1", Name: "Vase", UnitPrice: 1000, Quantity: 2})

		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, 3, cart.Lines[0].Quantity)
		assert.Equal(t, 3, cart.TotalQuantity())
		assert.Equal(t, 3000, cart.TotalAmount())
	})

	t.Run("same product in different variants gets separate lines", func(t *testing.T) {
		cart := &Cart{}
		cart.AddLine(CartLine{ProductID: "p1", UnitPrice: 1000, Quantity: 1, Variant: "Rojo"})
		cart.AddLine(CartLine{ProductID: "p1", UnitPrice: 1000, Quantity: 1, Variant: "Azul"})

		assert.Len(t, cart.Lines, 2)
		assert.Equal(t, 2, cart.TotalQuantity())
	})

	t.Run("zero quantity counts as one", func(t *testing.T) {
		cart := &Cart{}
		cart.AddLine(CartLine{ProductID: "p1", UnitPrice: 500, Quantity: 0})

		assert.Equal(t, 1, cart.Lines[0].Quantity)
	})

	t.Run("adding opens the drawer", func(t *testing.T) {
		cart := &Cart{}
		assert.False(t, cart.Open)

		cart.AddLine(CartLine{ProductID: "p1", Quantity: 1})
		assert.True(t, cart.Open)
	})
}

func TestCartSetQuantity(t *testing.T) {
	newCart := func() *Cart {
		cart := &Cart{}
		cart.AddLine(CartLine{ProductID: "p1", UnitPrice: 1000, Quantity: 2, Variant: "Rojo"})
		return cart
	}

	t.Run("replaces the quantity", func(t *testing.T) {
		cart := newCart()
		cart.SetQuantity("p1", 5, "Rojo")

		assert.Equal(t, 5, cart.Lines[0].Quantity)
		assert.Equal(t, 5000, cart.TotalAmount())
	})

	t.Run("zero removes the line", func(t *testing.T) {
		cart := newCart()
		cart.SetQuantity("p1", 0, "Rojo")

		assert.True(t, cart.IsEmpty())
	})

	t.Run("negative removes the line", func(t *testing.T) {
		cart := newCart()
		cart.SetQuantity("p1", -3, "Rojo")

		assert.True(t, cart.IsEmpty())
	})

	t.Run("unknown line is a no-op", func(t *testing.T) {
		cart := newCart()
		cart.SetQuantity("p2", 4, "")

		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, 2, cart.Lines[0].Quantity)
	})
}

func TestCartRemoveLine(t *testing.T) {
	cart := &Cart{}
	cart.AddLine(CartLine{ProductID: "p1", Quantity: 1, Variant: "Rojo"})
	cart.AddLine(CartLine{ProductID: "p1", Quantity: 1, Variant: "Azul"})

	cart.RemoveLine("p1", "Rojo")

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, "Azul", cart.Lines[0].Variant)

	// Removing something that is not there changes nothing
	cart.RemoveLine("p9", "")
	assert.Len(t, cart.Lines, 1)
}

func TestCartClear(t *testing.T) {
	cart := &Cart{}
	cart.AddLine(CartLine{ProductID: "p1", UnitPrice: 1000, Quantity: 2})

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalQuantity())
	assert.Equal(t, 0, cart.TotalAmount())
}

func TestCartTotals(t *testing.T) {
	cart := &Cart{}
	cart.AddLine(CartLine{ProductID: "p1", UnitPrice: 1500, Quantity: 2})
	cart.AddLine(CartLine{ProductID: "p2", UnitPrice: 800, Quantity: 3})

	assert.Equal(t, 5, cart.TotalQuantity())
	assert.Equal(t, 5400, cart.TotalAmount())
	assert.Equal(t, 3000, cart.Lines[0].Subtotal())
}
