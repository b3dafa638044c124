package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	StockQuantity int             `json:"stock_quantity"`
	Manufacturer  string          `json:"manufacturer"`
	ReleaseDate   time.Time       `json:"release_date"`
	ImageURL      string          `json:"image_url"`
}

// ProductSummary is the listing row: id, name and price.
type ProductSummary struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type NewProduct struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	StockQuantity int             `json:"stock_quantity"`
	Manufacturer  string          `json:"manufacturer"`
	ReleaseDate   time.Time       `json:"release_date"`
	ImageURL      string          `json:"image_url"`
}

type Review struct {
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	ReviewDate time.Time `json:"review_date"`
}

type ReviewList []Review

// Average returns the mean rating. ok is false when there are no reviews.
func (l ReviewList) Average() (avg float64, ok bool) {
	if len(l) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range l {
		sum += r.Rating
	}
	return float64(sum) / float64(len(l)), true
}
