package storefront

import (
	"context"
	"fmt"
	"math"
	"revorz_storefront/storage"
	"revorz_storefront/structs"

	"github.com/google/uuid"
)

// Cart aggregates line items of a browser profile. It is the only writer of CartKey.
type Cart struct {
	accessor *storage.Accessor
	gate     *Gate
	newID    func() string
}

func NewCart(accessor *storage.Accessor, gate *Gate) *Cart {
	return &Cart{
		accessor: accessor,
		gate:     gate,
		newID:    newLineItemID,
	}
}

// newLineItemID returns a time-ordered id
func newLineItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// AddResult describes the outcome of a successful add
type AddResult struct {
	Item   structs.CartLineItem
	Merged bool
	Total  int
}

// AddToCart adds the current selection as productName. A line item with the same
// name and color absorbs the quantity, capped at MaxQuantity; otherwise a new
// item is appended. When the shopper is not logged in, onGated is called and ErrLoginRequired returned
// without touching the cart.
func (c *Cart) AddToCart(ctx context.Context, sel *Selection, productName string, onGated func()) (AddResult, error) {
	if err := c.gate.RequireLogin(ctx, onGated); err != nil {
		return AddResult{}, err
	}

	items, err := c.Items(ctx)
	if err != nil {
		return AddResult{}, err
	}

	result := AddResult{}
	idx := indexOf(items, productName, sel.Color())
	if idx >= 0 {
		items[idx].Quantity = addQuantity(items[idx].Quantity, sel.Quantity())
		result.Item = items[idx]
		result.Merged = true
	} else {
		item := structs.CartLineItem{
			ID:          c.newID(),
			ProductName: productName,
			UnitPrice:   sel.UnitPrice(),
			ImageRef:    sel.Image(),
			Quantity:    sel.Quantity(),
			Color:       sel.Color(),
		}
		items = append(items, item)
		result.Item = item
	}

	if err := CartKey.Save(ctx, c.accessor, items); err != nil {
		return AddResult{}, fmt.Errorf("failed to persist cart: %w", err)
	}

	result.Total = total(items)
	return result, nil
}

func indexOf(items []structs.CartLineItem, productName string, color structs.Color) int {
	for i, item := range items {
		if item.ProductName == productName && item.Color == color {
			return i
		}
	}
	return -1
}

// Items returns the stored line items; a missing or malformed cart is empty
func (c *Cart) Items(ctx context.Context) ([]structs.CartLineItem, error) {
	items, _, err := CartKey.Load(ctx, c.accessor)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ReadCartTotal sums the quantities of all line items. It has no side effects.
func (c *Cart) ReadCartTotal(ctx context.Context) (int, error) {
	items, err := c.Items(ctx)
	if err != nil {
		return 0, err
	}
	return total(items), nil
}

// Summary returns the items with their total and indicator state
func (c *Cart) Summary(ctx context.Context) (structs.CartSummary, error) {
	items, err := c.Items(ctx)
	if err != nil {
		return structs.CartSummary{}, err
	}
	if items == nil {
		items = []structs.CartLineItem{}
	}
	t := total(items)
	return structs.CartSummary{Items: items, Total: t, Indicator: IndicatorActive(t)}, nil
}

// Clear removes the whole cart, as the checkout flow does
func (c *Cart) Clear(ctx context.Context) error {
	return CartKey.Delete(ctx, c.accessor)
}

// total saturates at math.MaxInt instead of wrapping
func total(items []structs.CartLineItem) int {
	sum := 0
	for _, item := range items {
		if item.Quantity > math.MaxInt-sum {
			return math.MaxInt
		}
		sum += item.Quantity
	}
	return sum
}

// IndicatorActive reports whether the cart dot is shown
func IndicatorActive(total int) bool {
	return total > 0
}
