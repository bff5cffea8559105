package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Vendor struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	Slug            string          `db:"slug" json:"slug"`
	Name            string          `db:"name" json:"name"`
	Category        string          `db:"category" json:"category"`
	Subcategory     string          `db:"subcategory" json:"subcategory,omitempty"`
	City            string          `db:"city" json:"city"`
	State           string          `db:"state" json:"state"`
	Phone           string          `db:"phone" json:"phone,omitempty"`
	Website         string          `db:"website" json:"website,omitempty"`
	InstagramHandle string          `db:"instagram_handle" json:"instagram_handle,omitempty"`
	Rating          decimal.Decimal `db:"rating" json:"rating"`
	ReviewCount     int             `db:"review_count" json:"review_count"`
	Description     string          `db:"description" json:"description,omitempty"`
	ImageURL        string          `db:"image_url" json:"image_url,omitempty"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

type Favorite struct {
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	VendorID  uuid.UUID `db:"vendor_id" json:"vendor_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CacheEntry is one cached provider result set for a search tuple.
// Subcategory is always present in the key, empty string when the search had
// none, so the uniqueness constraint never compares NULLs.
type CacheEntry struct {
	ID            int64          `db:"id"`
	Category      string         `db:"category"`
	City          string         `db:"city"`
	State         string         `db:"state"`
	Subcategory   string         `db:"subcategory"`
	LocationCode  int            `db:"location_code"`
	SearchResults []SearchResult `db:"search_results"`
	CreatedAt     time.Time      `db:"created_at"`
	ExpiresAt     time.Time      `db:"expires_at"`
}

// Live reports whether the entry is still usable at the given instant.
// Expiry is checked lazily at read time; stale rows stay in storage until
// the next write overwrites them.
func (e *CacheEntry) Live(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
