package dto

import "time"

// CreateProductRequest cuerpo para POST /api/products.
type CreateProductRequest struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateProductRequest cuerpo para PUT /api/products/:id. El ID no se modifica.
type UpdateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ProductID   string    `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
