package structs

// CartLineItem is one entry of the persisted cart. At most one entry exists per
// (ProductName, Color) pair.
type CartLineItem struct {
	ID          string  `json:"id" validate:"required"`
	ProductName string  `json:"productName" validate:"required"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"` // thousands units
	ImageRef    string  `json:"imageRef"`
	Quantity    int     `json:"quantity" validate:"gte=1"`
	Color       Color   `json:"color" validate:"oneof=black blue white"`
}

// CartSummary is what the cart page and the cart indicator read.
type CartSummary struct {
	Items     []CartLineItem `json:"items"`
	Total     int            `json:"total"`
	Indicator bool           `json:"indicator"`
}

type CartIndicator struct {
	Total  int  `json:"total"`
	Active bool `json:"active"`
}
