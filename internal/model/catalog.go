package model

// Product mirrors the storefront backend's product payload. The backend
// serves a full, unpaginated snapshot from GET /products/. Brand, features
// and rating are optional and absent for most items.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug,omitempty"`
	Image         string   `json:"image,omitempty"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	InStock       bool     `json:"in_stock"`
	StockQuantity int      `json:"stock_quantity"`
	Brand         string   `json:"brand,omitempty"`
	Features      []string `json:"features,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
}

// OrderItem is a line item of a past order.
type OrderItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity,omitempty"`
}

// Order mirrors the backend's GET /orders/my-orders/ payload. The backend
// returns orders most-recent first; no re-sorting happens on this side.
type Order struct {
	ID     string      `json:"order_id"`
	Status string      `json:"order_status"`
	Total  float64     `json:"total_amount"`
	Items  []OrderItem `json:"items"`
}
