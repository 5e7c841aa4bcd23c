package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type Product struct {
	Id              uuid.UUID  `json:"id" db:"id"`
	SellerId        uuid.UUID  `json:"sellerId" db:"seller_id"`
	Title           string     `json:"title" db:"title"`
	Description     string     `json:"description" db:"description"`
	Price           float64    `json:"price" db:"price"`
	Quantity        float64    `json:"quantity" db:"quantity"`
	Unit            string     `json:"unit" db:"unit"`
	Location        string     `json:"location" db:"location"`
	Category        string     `json:"category" db:"category"`
	ImageUrls       []string   `json:"imageUrls" db:"image_urls"`
	VideoUrl        *string    `json:"videoUrl" db:"video_url"`
	BiddingStart    *time.Time `json:"biddingStart" db:"bidding_start"`
	BiddingDeadline *time.Time `json:"biddingDeadline" db:"bidding_deadline"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateProductInput struct {
	SellerId        string
	Title           string
	Description     string
	Price           float64
	Quantity        float64
	Unit            string
	Location        string
	Category        string
	ImageUrls       []string
	VideoUrl        *string
	BiddingStart    *time.Time
	BiddingDeadline *time.Time
}

// controller model
type ProductOutputModel struct {
	Id              string   `json:"id"`
	SellerId        string   `json:"sellerId"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Quantity        float64  `json:"quantity"`
	Unit            string   `json:"unit"`
	Location        string   `json:"location"`
	Category        string   `json:"category"`
	ImageUrls       []string `json:"imageUrls"`
	VideoUrl        string   `json:"videoUrl,omitempty"`
	BiddingStart    string   `json:"biddingStart,omitempty"`
	BiddingDeadline string   `json:"biddingDeadline,omitempty"`
	CreatedAt       string   `json:"createdAt"`
}

// BiddingWindowOpen reports whether the product accepts new bids at the
// given moment. A product without an explicit window accepts bids at any
// time; otherwise bids are taken only while start <= now < deadline.
func (p *Product) BiddingWindowOpen(now time.Time) bool {
	if p.BiddingStart != nil && now.Before(*p.BiddingStart) {
		return false
	}
	if p.BiddingDeadline != nil && !now.Before(*p.BiddingDeadline) {
		return false
	}

	return true
}
