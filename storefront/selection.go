package storefront

import (
	"revorz_storefront/structs"
)

// Keys that activate a focused color option like a click does
var activationKeys = map[string]bool{
	"Enter":    true,
	" ":        true,
	"Space":    true,
	"Spacebar": true,
}

// Selection is the product selection state of one page view. It is not persisted.
type Selection struct {
	options     []structs.ColorOption
	priceSuffix string

	productName string
	color       structs.Color
	label       string
	image       string
	quantity    int
	unitPrice   float64
}

func NewSelection(productName string, options []structs.ColorOption, priceSuffix string) *Selection {
	return &Selection{
		options:     options,
		priceSuffix: priceSuffix,
		productName: productName,
		color:       structs.ColorWhite,
		label:       colorLabel(options, structs.ColorWhite),
		quantity:    1,
	}
}

// SelectColor switches to the variant c. It is a no-op returning false when c is
// not a known variant or the page offers no option for it.
func (s *Selection) SelectColor(c structs.Color) bool {
	if !c.Valid() {
		return false
	}
	opt, ok := findOption(s.options, c)
	if !ok {
		return false
	}

	s.color = opt.Color
	s.image = opt.Image
	s.label = opt.Label
	return true
}

// ActivateColorKey handles a key press on a color option; Enter and Space select it.
func (s *Selection) ActivateColorKey(c structs.Color, key string) bool {
	if !activationKeys[key] {
		return false
	}
	return s.SelectColor(c)
}

// ChangeQuantity adds delta, staying within 1..MaxQuantity
func (s *Selection) ChangeQuantity(delta int) int {
	s.quantity = addQuantity(s.quantity, delta)
	return s.quantity
}

// MaxQuantity caps the quantity of a selection and of a single line item
const MaxQuantity = 999

// addQuantity adds delta to q and clamps the result to 1..MaxQuantity without overflowing
func addQuantity(q, delta int) int {
	if delta > 0 && q > MaxQuantity-delta {
		return MaxQuantity
	}
	return min(MaxQuantity, max(1, q+delta))
}

// SetPrice normalizes a raw listed price; invalid input keeps the previous price
func (s *Selection) SetPrice(raw string) bool {
	price, ok := NormalizePrice(raw)
	if !ok {
		return false
	}
	s.unitPrice = price
	return true
}

// Apply overlays a handed-off product on the selection
func (s *Selection) Apply(p structs.PendingSelection) {
	if p.Name != "" {
		s.productName = p.Name
	}
	if p.Image != "" {
		s.image = p.Image
		s.SelectColor(ColorFromImage(p.Image))
	}
	if p.Price != "" {
		s.SetPrice(string(p.Price))
	}
}

func (s *Selection) ProductName() string  { return s.productName }
func (s *Selection) Color() structs.Color { return s.color }
func (s *Selection) Label() string        { return s.label }
func (s *Selection) Image() string        { return s.image }
func (s *Selection) Quantity() int        { return s.quantity }
func (s *Selection) UnitPrice() float64   { return s.unitPrice }

// Options returns the color options of the page
func (s *Selection) Options() []structs.ColorOption { return s.options }

func (s *Selection) Snapshot() structs.SelectionSnapshot {
	return structs.SelectionSnapshot{
		ProductName:  s.productName,
		Color:        s.color,
		ColorLabel:   "Warna: " + s.label,
		Image:        s.image,
		Quantity:     s.quantity,
		UnitPrice:    s.unitPrice,
		DisplayPrice: FormatPrice(s.unitPrice, s.priceSuffix),
	}
}
