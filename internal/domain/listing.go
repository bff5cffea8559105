package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type ListingSource string

const (
	SourceGoogle    ListingSource = "google"
	SourceInstagram ListingSource = "instagram"
	SourceDatabase  ListingSource = "database"
)

type Rating struct {
	Value      decimal.Decimal `json:"value"`
	VotesCount int             `json:"votes_count"`
	RatingType string          `json:"rating_type,omitempty"`
}

// SearchResult is the common projection served to clients and stored inside
// a CacheEntry. Everything past Title is optional; which fields are filled
// depends on the listing source.
type SearchResult struct {
	Title   string        `json:"title"`
	PlaceID string        `json:"place_id,omitempty"`
	Image   string        `json:"image,omitempty"`
	Rating  *Rating       `json:"rating,omitempty"`
	Phone   string        `json:"phone,omitempty"`
	Address string        `json:"address,omitempty"`
	URL     string        `json:"url,omitempty"`
	Source  ListingSource `json:"source"`
}

// Listing is the tagged union over the upstream result shapes. Each variant
// carries only the fields its source guarantees and projects itself into the
// common SearchResult view.
type Listing interface {
	SearchResult() SearchResult
}

type GoogleListing struct {
	Title   string
	PlaceID string
	Image   string
	Rating  *Rating
	Phone   string
	Address string
	URL     string
}

func (l GoogleListing) SearchResult() SearchResult {
	return SearchResult{
		Title:   l.Title,
		PlaceID: l.PlaceID,
		Image:   l.Image,
		Rating:  l.Rating,
		Phone:   l.Phone,
		Address: l.Address,
		URL:     l.URL,
		Source:  SourceGoogle,
	}
}

type InstagramListing struct {
	Username  string
	FullName  string
	AvatarURL string
	Followers int
}

func (l InstagramListing) SearchResult() SearchResult {
	title := l.FullName
	if title == "" {
		title = "@" + l.Username
	}

	return SearchResult{
		Title:  title,
		Image:  l.AvatarURL,
		URL:    fmt.Sprintf("https://www.instagram.com/%s/", strings.TrimPrefix(l.Username, "@")),
		Source: SourceInstagram,
	}
}

type DatabaseListing struct {
	Vendor *Vendor
}

func (l DatabaseListing) SearchResult() SearchResult {
	res := SearchResult{
		Title:   l.Vendor.Name,
		Image:   l.Vendor.ImageURL,
		Phone:   l.Vendor.Phone,
		URL:     l.Vendor.Website,
		Address: strings.TrimPrefix(fmt.Sprintf("%s, %s", l.Vendor.City, l.Vendor.State), ", "),
		Source:  SourceDatabase,
	}
	if l.Vendor.ReviewCount > 0 {
		res.Rating = &Rating{
			Value:      l.Vendor.Rating,
			VotesCount: l.Vendor.ReviewCount,
			RatingType: "Max5",
		}
	}
	return res
}

// Project flattens listings into the common view, preserving order.
func Project(listings []Listing) []SearchResult {
	results := make([]SearchResult, 0, len(listings))
	for _, l := range listings {
		results = append(results, l.SearchResult())
	}
	return results
}
