package storefront

import (
	"context"
	"fmt"
	"math"
	"revorz_storefront/storage"
	"revorz_storefront/structs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccessor() *storage.Accessor {
	return storage.NewAccessor(storage.NewMemoryBackend(), "sess-1", storage.NewMemoryBackend(), "prof-1")
}

func newTestCart(t *testing.T, a *storage.Accessor, loggedIn bool) *Cart {
	t.Helper()
	gate := NewGate(a, DefaultDestinations())
	if loggedIn {
		require.NoError(t, gate.LogIn(context.Background()))
	}

	c := NewCart(a, gate)
	n := 0
	c.newID = func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	}
	return c
}

func TestAddToCart_NewItem(t *testing.T) {
	ctx := context.Background()
	a := newTestAccessor()
	c := newTestCart(t, a, true)
	sel := newTestSelection()
	sel.SelectColor(structs.ColorBlack)
	sel.ChangeQuantity(1)

	res, err := c.AddToCart(ctx, sel, sel.ProductName(), nil)
	require.NoError(t, err)

	assert.False(t, res.Merged)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, structs.CartLineItem{
		ID:          "item-1",
		ProductName: "Smart Watch Pro",
		UnitPrice:   75,
		ImageRef:    "product-black.png",
		Quantity:    2,
		Color:       structs.ColorBlack,
	}, res.Item)

	items, err := c.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestAddToCart_MergesSameNameAndColor(t *testing.T) {
	ctx := context.Background()
	c := newTestCart(t, newTestAccessor(), true)
	sel := newTestSelection()
	sel.SelectColor(structs.ColorBlue)

	_, err := c.AddToCart(ctx, sel, sel.ProductName(), nil)
	require.NoError(t, err)

	sel.ChangeQuantity(2)
	res, err := c.AddToCart(ctx, sel, sel.ProductName(), nil)
	require.NoError(t, err)

	assert.True(t, res.Merged)
	assert.Equal(t, "item-1", res.Item.ID)
	assert.Equal(t, 4, res.Item.Quantity)
	assert.Equal(t, 4, res.Total)

	items, err := c.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestAddToCart_HugeQuantityKeepsCart(t *testing.T) {
	ctx := context.Background()
	c := newTestCart(t, newTestAccessor(), true)

	other := newTestSelection()
	other.SelectColor(structs.ColorBlue)
	_, err := c.AddToCart(ctx, other, "Other", nil)
	require.NoError(t, err)

	sel := newTestSelection()
	assert.Equal(t, MaxQuantity, sel.ChangeQuantity(math.MaxInt-1))

	_, err = c.AddToCart(ctx, sel, sel.ProductName(), nil)
	require.NoError(t, err)
	res, err := c.AddToCart(ctx, sel, sel.ProductName(), nil)
	require.NoError(t, err)

	assert.True(t, res.Merged)
	assert.Equal(t, MaxQuantity, res.Item.Quantity)
	assert.Equal(t, MaxQuantity+1, res.Total)

	items, err := c.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Other", items[0].ProductName)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, MaxQuantity, items[1].Quantity)
}

func TestAddToCart_MergeIntoOversizedStoredItem(t *testing.T) {
	ctx := context.Background()
	a := newTestAccessor()
	c := newTestCart(t, a, true)

	raw := fmt.Sprintf(`[{"id":"old","productName":"Smart Watch Pro","unitPrice":75,"imageRef":"product-white.png","quantity":%d,"color":"white"},`+
		`{"id":"keep","productName":"Other","unitPrice":10,"imageRef":"product-blue.png","quantity":3,"color":"blue"}]`, math.MaxInt)
	require.NoError(t, a.Set(ctx, storage.Persistent, CartKey.Name, raw))

	total, err := c.ReadCartTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, total)

	res, err := c.AddToCart(ctx, newTestSelection(), "Smart Watch Pro", nil)
	require.NoError(t, err)
	assert.True(t, res.Merged)
	assert.Equal(t, "old", res.Item.ID)
	assert.Equal(t, MaxQuantity, res.Item.Quantity)
	assert.Equal(t, MaxQuantity+3, res.Total)

	items, err := c.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[1].Quantity)
}

func TestTotal_Saturates(t *testing.T) {
	items := []structs.CartLineItem{{Quantity: math.MaxInt - 1}, {Quantity: 5}, {Quantity: 1}}

	assert.Equal(t, math.MaxInt, total(items))
	assert.True(t, IndicatorActive(total(items)))
}

func TestAddToCart_DistinctColorsAreSeparateItems(t *testing.T) {
	ctx := context.Background()
	c := newTestCart(t, newTestAccessor(), true)
	sel := newTestSelection()

	_, err := c.AddToCart(ctx, sel, sel.ProductName(), nil)
	require.NoError(t, err)

	sel.SelectColor(structs.ColorBlack)
	res, err := c.AddToCart(ctx, sel, sel.ProductName(), nil)
	require.NoError(t, err)

	assert.False(t, res.Merged)
	assert.Equal(t, 2, res.Total)

	items, err := c.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestAddToCart_MergedItemKeepsOriginalPrice(t *testing.T) {
	ctx := context.Background()
	c := newTestCart(t, newTestAccessor(), true)
	sel := newTestSelection()

	_, err := c.AddToCart(ctx, sel, sel.ProductName(), nil)
	require.NoError(t, err)

	sel.SetPrice("90000")
	res, err := c.AddToCart(ctx, sel, sel.ProductName(), nil)
	require.NoError(t, err)

	assert.True(t, res.Merged)
	assert.Equal(t, float64(75), res.Item.UnitPrice)
}

func TestAddToCart_GatedWithoutLogin(t *testing.T) {
	ctx := context.Background()
	a := newTestAccessor()
	c := newTestCart(t, a, false)
	sel := newTestSelection()

	called := false
	_, err := c.AddToCart(ctx, sel, sel.ProductName(), func() { called = true })

	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.True(t, called)

	_, ok, err := a.Get(ctx, storage.Persistent, CartKey.Name)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestItems_MalformedCartIsEmpty(t *testing.T) {
	ctx := context.Background()
	a := newTestAccessor()
	c := newTestCart(t, a, true)

	require.NoError(t, a.Set(ctx, storage.Persistent, CartKey.Name, "{not json"))

	total, err := c.ReadCartTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	res, err := c.AddToCart(ctx, newTestSelection(), "Smart Watch Pro", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
}

func TestSummary_AndClear(t *testing.T) {
	ctx := context.Background()
	c := newTestCart(t, newTestAccessor(), true)

	summary, err := c.Summary(ctx)
	require.NoError(t, err)
	assert.NotNil(t, summary.Items)
	assert.Empty(t, summary.Items)
	assert.False(t, summary.Indicator)

	sel := newTestSelection()
	sel.ChangeQuantity(2)
	_, err = c.AddToCart(ctx, sel, sel.ProductName(), nil)
	require.NoError(t, err)

	summary, err = c.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.True(t, summary.Indicator)

	require.NoError(t, c.Clear(ctx))

	total, err := c.ReadCartTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestCart_SharedAcrossSessionsOfOneProfile(t *testing.T) {
	ctx := context.Background()
	persistent := storage.NewMemoryBackend()
	tabA := storage.NewAccessor(storage.NewMemoryBackend(), "sess-a", persistent, "prof-1")
	tabB := storage.NewAccessor(storage.NewMemoryBackend(), "sess-b", persistent, "prof-1")

	c := newTestCart(t, tabA, true)
	_, err := c.AddToCart(ctx, newTestSelection(), "Smart Watch Pro", nil)
	require.NoError(t, err)

	total, err := NewCart(tabB, NewGate(tabB, DefaultDestinations())).ReadCartTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestNewLineItemID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := newLineItemID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
