package entity

// Product is a catalog entry. Category is free-form; Image is an opaque
// reference resolved by the storefront.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}
