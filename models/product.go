package models

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Product is a catalog record. Price is in minor currency units.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	InStock     bool     `json:"in_stock"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Features    []string `json:"features,omitempty"`
}
