package handler

import "github.com/farmlink/marketplace-api/internal/core/domain"

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"    validate:"required"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"        validate:"required"`
	Location    string  `json:"location"`
	ImageURL    *string `json:"image_url"`
}

// updateProductRequest is a partial update: absent fields are left as is.
type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Quantity    *float64 `json:"quantity"`
	Unit        *string  `json:"unit"`
	Location    *string  `json:"location"`
	ImageURL    *string  `json:"image_url"`
	Available   *bool    `json:"available"`
}

func (r createProductRequest) toDraft() domain.ProductDraft {
	return domain.ProductDraft{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
	}
}

func (r updateProductRequest) toPatch() domain.ProductPatch {
	return domain.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		Available:   r.Available,
	}
}
