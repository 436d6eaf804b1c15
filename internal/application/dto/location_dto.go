package dto

import "time"

// CreateLocationRequest cuerpo para POST /api/locations.
type CreateLocationRequest struct {
	LocationID  string `json:"location_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateLocationRequest cuerpo para PUT /api/locations/:id. El ID no se modifica.
type UpdateLocationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LocationResponse representación HTTP de una ubicación.
type LocationResponse struct {
	LocationID  string    `json:"location_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LocationListResponse listado de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Total int                `json:"total"`
}
