package model

// Product is one catalog entry as served by the shop API. Image is a path
// relative to the API base URL.
type Product struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
}

type CatalogResponse struct {
	Success  bool      `json:"success"`
	Products []Product `json:"products"`
	Message  string    `json:"message,omitempty"`
}

type AddToCartRequest struct {
	ProductID string `json:"productId"`
}

type AddToCartResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
