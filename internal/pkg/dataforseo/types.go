package dataforseo

import (
	"github.com/bloomday/bloomday/internal/domain"
	"github.com/shopspring/decimal"
)

type taskRequest struct {
	Keyword      string `json:"keyword"`
	LocationCode int    `json:"location_code"`
	LanguageCode string `json:"language_code"`
	Device       string `json:"device"`
	OS           string `json:"os"`
}

type rawRating struct {
	Value      decimal.Decimal `json:"value"`
	VotesCount int             `json:"votes_count"`
	RatingType string          `json:"rating_type"`
}

type rawItem struct {
	Title     string     `json:"title"`
	PlaceID   string     `json:"place_id"`
	MainImage string     `json:"main_image"`
	Rating    *rawRating `json:"rating"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	URL       string     `json:"url"`
}

type taskResult struct {
	Items []rawItem `json:"items"`
}

type task struct {
	StatusCode    int          `json:"status_code"`
	StatusMessage string       `json:"status_message"`
	Result        []taskResult `json:"result"`
}

type searchResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Tasks         []task `json:"tasks"`
}

func (i rawItem) toListing() domain.GoogleListing {
	listing := domain.GoogleListing{
		Title:   i.Title,
		PlaceID: i.PlaceID,
		Image:   i.MainImage,
		Phone:   i.Phone,
		Address: i.Address,
		URL:     i.URL,
	}
	if i.Rating != nil {
		listing.Rating = &domain.Rating{
			Value:      i.Rating.Value,
			VotesCount: i.Rating.VotesCount,
			RatingType: i.Rating.RatingType,
		}
	}
	return listing
}
