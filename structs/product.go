package structs

// Color is a product color variant key
type Color string

const (
	ColorBlack Color = "black"
	ColorBlue  Color = "blue"
	ColorWhite Color = "white"
)

// Colors is the closed set of variants offered on the product page, in the order
// image references are matched against them.
var Colors = []Color{ColorBlack, ColorBlue, ColorWhite}

// Valid reports whether c is one of the known variants
func (c Color) Valid() bool {
	for _, known := range Colors {
		if c == known {
			return true
		}
	}
	return false
}

// ColorOption is a selectable variant control on the page (data-color, data-image, data-label).
type ColorOption struct {
	Color Color  `json:"color"`
	Image string `json:"image"`
	Label string `json:"label"`
}

// DefaultColorOptions mirrors the product page markup.
func DefaultColorOptions() []ColorOption {
	return []ColorOption{
		{Color: ColorBlack, Image: "product-black.png", Label: "Hitam"},
		{Color: ColorBlue, Image: "product-blue.png", Label: "Biru"},
		{Color: ColorWhite, Image: "product-white.png", Label: "Putih"},
	}
}

// ProductInfo is the page defined product shown before any selection is made
type ProductInfo struct {
	Name         string        `json:"name"`
	UnitPrice    float64       `json:"unitPrice"`
	DisplayPrice string        `json:"displayPrice"`
	Options      []ColorOption `json:"options"`
	DefaultColor Color         `json:"defaultColor"`
}
