package domain

import "time"

// Product is a listing owned by the farmer who created it.
type Product struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category"`
	Price       float64   `json:"price" bson:"price"`
	Quantity    float64   `json:"quantity" bson:"quantity"`
	Unit        string    `json:"unit" bson:"unit"`
	FarmerID    string    `json:"farmer_id" bson:"farmer_id"`
	FarmerName  string    `json:"farmer_name" bson:"farmer_name"`
	Location    string    `json:"location" bson:"location"`
	ImageURL    *string   `json:"image_url" bson:"image_url,omitempty"`
	Available   bool      `json:"available" bson:"available"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// ProductDraft carries the farmer-supplied fields of a new listing.
type ProductDraft struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Quantity    float64
	Unit        string
	Location    string
	ImageURL    *string
}

// ProductPatch is a partial update: nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Quantity    *float64
	Unit        *string
	Location    *string
	ImageURL    *string
	Available   *bool
}

// IsEmpty reports whether the patch sets no field.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Category == nil &&
		p.Price == nil && p.Quantity == nil && p.Unit == nil &&
		p.Location == nil && p.ImageURL == nil && p.Available == nil
}

// Apply copies every present field of patch onto p.
func (p *Product) Apply(patch ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		p.Unit = *patch.Unit
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.ImageURL != nil {
		url := *patch.ImageURL
		p.ImageURL = &url
	}
	if patch.Available != nil {
		p.Available = *patch.Available
	}
}
