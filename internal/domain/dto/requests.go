package dto

import "github.com/google/uuid"

// SearchRequest is the search invocation boundary: a free-text keyword and a
// "City, State" location string.
type SearchRequest struct {
	Keyword     string `json:"keyword" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Subcategory string `json:"subcategory,omitempty"`
}

type UpsertVendorRequest struct {
	Name            string `json:"name" validate:"required"`
	Category        string `json:"category" validate:"required"`
	Subcategory     string `json:"subcategory,omitempty"`
	City            string `json:"city" validate:"required"`
	State           string `json:"state" validate:"required"`
	Phone           string `json:"phone,omitempty"`
	Website         string `json:"website,omitempty" validate:"omitempty,url"`
	InstagramHandle string `json:"instagram_handle,omitempty"`
	Description     string `json:"description,omitempty"`
	ImageURL        string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type AddFavoriteRequest struct {
	VendorID uuid.UUID `json:"vendor_id" validate:"required"`
}
