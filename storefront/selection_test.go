package storefront

import (
	"math"
	"revorz_storefront/structs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSelection() *Selection {
	s := NewSelection("Smart Watch Pro", structs.DefaultColorOptions(), "J")
	s.SetPrice("75000")
	return s
}

func TestNewSelection_Defaults(t *testing.T) {
	s := newTestSelection()

	assert.Equal(t, structs.ColorWhite, s.Color())
	assert.Equal(t, "Putih", s.Label())
	assert.Equal(t, 1, s.Quantity())
	assert.Equal(t, float64(75), s.UnitPrice())
}

func TestSelectColor(t *testing.T) {
	s := newTestSelection()

	assert.True(t, s.SelectColor(structs.ColorBlack))
	assert.Equal(t, structs.ColorBlack, s.Color())
	assert.Equal(t, "Hitam", s.Label())
	assert.Equal(t, "product-black.png", s.Image())
}

func TestSelectColor_UnknownIsNoop(t *testing.T) {
	s := newTestSelection()
	s.SelectColor(structs.ColorBlue)

	assert.False(t, s.SelectColor(structs.Color("red")))
	assert.Equal(t, structs.ColorBlue, s.Color())
	assert.Equal(t, "Biru", s.Label())
}

func TestSelectColor_MissingOptionIsNoop(t *testing.T) {
	s := NewSelection("Watch", []structs.ColorOption{
		{Color: structs.ColorWhite, Image: "w.png", Label: "Putih"},
	}, "J")

	assert.False(t, s.SelectColor(structs.ColorBlack))
	assert.Equal(t, structs.ColorWhite, s.Color())
}

func TestActivateColorKey_MatchesPointer(t *testing.T) {
	for _, key := range []string{"Enter", " ", "Space", "Spacebar"} {
		t.Run(key, func(t *testing.T) {
			byKey := newTestSelection()
			byClick := newTestSelection()

			assert.True(t, byKey.ActivateColorKey(structs.ColorBlue, key))
			byClick.SelectColor(structs.ColorBlue)

			assert.Equal(t, byClick.Snapshot(), byKey.Snapshot())
		})
	}
}

func TestActivateColorKey_OtherKeysIgnored(t *testing.T) {
	s := newTestSelection()

	assert.False(t, s.ActivateColorKey(structs.ColorBlack, "Tab"))
	assert.Equal(t, structs.ColorWhite, s.Color())
}

func TestChangeQuantity_NeverBelowOne(t *testing.T) {
	s := newTestSelection()

	assert.Equal(t, 2, s.ChangeQuantity(1))
	assert.Equal(t, 1, s.ChangeQuantity(-1))
	assert.Equal(t, 1, s.ChangeQuantity(-1))
	assert.Equal(t, 1, s.ChangeQuantity(-100))
	assert.Equal(t, 4, s.ChangeQuantity(3))
}

func TestChangeQuantity_ExtremeDeltas(t *testing.T) {
	s := newTestSelection()

	assert.Equal(t, MaxQuantity, s.ChangeQuantity(math.MaxInt))
	assert.Equal(t, MaxQuantity, s.ChangeQuantity(math.MaxInt-1))
	assert.Equal(t, MaxQuantity, s.ChangeQuantity(1))
	assert.Equal(t, 1, s.ChangeQuantity(math.MinInt))
	assert.Equal(t, 1, s.ChangeQuantity(math.MinInt+1))
	assert.Equal(t, MaxQuantity-1, s.ChangeQuantity(MaxQuantity-2))
	assert.Equal(t, MaxQuantity, s.ChangeQuantity(2))
}

func TestSetPrice_InvalidKeepsPrevious(t *testing.T) {
	s := newTestSelection()

	assert.False(t, s.SetPrice("abc"))
	assert.Equal(t, float64(75), s.UnitPrice())

	assert.True(t, s.SetPrice("1500000"))
	assert.Equal(t, float64(1500), s.UnitPrice())
}

func TestApply_PendingSelection(t *testing.T) {
	s := newTestSelection()

	s.Apply(structs.PendingSelection{
		Name:  "Sport Band",
		Price: "1500000",
		Image: "img/product-blue.png",
	})

	assert.Equal(t, "Sport Band", s.ProductName())
	assert.Equal(t, structs.ColorBlue, s.Color())
	assert.Equal(t, float64(1500), s.UnitPrice())
	assert.Equal(t, "1.500J", s.Snapshot().DisplayPrice)
}

func TestApply_EmptyFieldsKeepDefaults(t *testing.T) {
	s := newTestSelection()

	s.Apply(structs.PendingSelection{})

	assert.Equal(t, "Smart Watch Pro", s.ProductName())
	assert.Equal(t, structs.ColorWhite, s.Color())
	assert.Equal(t, float64(75), s.UnitPrice())
}

func TestColorFromImage(t *testing.T) {
	tests := []struct {
		image string
		want  structs.Color
	}{
		{"product-black.png", structs.ColorBlack},
		{"assets/blue-strap.jpg", structs.ColorBlue},
		{"product-white.png", structs.ColorWhite},
		{"product.png", structs.ColorWhite},
		{"", structs.ColorWhite},
	}

	for _, tt := range tests {
		t.Run(tt.image, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorFromImage(tt.image))
		})
	}
}

func TestSnapshot_Label(t *testing.T) {
	s := newTestSelection()
	s.SelectColor(structs.ColorBlack)

	snap := s.Snapshot()
	assert.Equal(t, "Warna: Hitam", snap.ColorLabel)
	assert.Equal(t, "75J", snap.DisplayPrice)
}
