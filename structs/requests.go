package structs

type SelectColorRequest struct {
	Color string `json:"color" validate:"required"`
}

type ColorKeyRequest struct {
	Color string `json:"color" validate:"required"`
	Key   string `json:"key" validate:"required"`
}

type QuantityRequest struct {
	Delta int `json:"delta" validate:"gte=-999,lte=999"`
}

// ListingSelectRequest carries the data-product, data-price and data-image attributes of a listing control
type ListingSelectRequest struct {
	Product string   `json:"product" validate:"required"`
	Price   RawPrice `json:"price"`
	Image   string   `json:"image"`
}

type NewsletterRequest struct {
	Email string `json:"email" validate:"omitempty,email,max=254"`
}
