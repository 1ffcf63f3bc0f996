package structs

import (
	"bytes"
	"encoding/json"
	"errors"
)

// PendingSelection is the product chosen on a listing page, handed to the detail
// page through the session store.
type PendingSelection struct {
	Name  string   `json:"name"`
	Price RawPrice `json:"price"`
	Image string   `json:"image"`
}

// RawPrice keeps a price exactly as the listing supplied it. Listings write either
// a JSON number or a numeric string; both are accepted and normalized later.
type RawPrice string

var errRawPriceType = errors.New("price must be a number or a string")

func (p *RawPrice) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*p = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = RawPrice(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return errRawPriceType
		}
		*p = RawPrice(n.String())
		return nil
	}
}

// SelectionSnapshot is the rendered view of the product selection state.
type SelectionSnapshot struct {
	ProductName  string  `json:"productName"`
	Color        Color   `json:"color"`
	ColorLabel   string  `json:"colorLabel"`
	Image        string  `json:"image"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	DisplayPrice string  `json:"displayPrice"`
}
