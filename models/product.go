package models

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Money  `json:"price"`
	ImageURL    string `json:"image_url"`
}

// SeedProduct is an entry of the fixed catalog applied at startup.
// Name is the natural key used to match existing products.
type SeedProduct struct {
	Name        string
	Description string
	Price       Money
	ImageURL    string
}
