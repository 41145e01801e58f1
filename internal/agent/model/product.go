package model

// Search result kinds reported by the search service.
const (
	SearchTypeVector = "vector"
	SearchTypeText   = "text"
	SearchTypeNone   = "none"
)

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Color       string  `json:"color,omitempty"`
	Material    string  `json:"material,omitempty"`
	Brand       string  `json:"brand,omitempty"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	InStock     bool    `json:"in_stock"`
}

// SearchResult is what the search service returns for one dispatch.
type SearchResult struct {
	Products   []Product `json:"products"`
	Count      int       `json:"count"`
	SearchType string    `json:"search_type"`
}
