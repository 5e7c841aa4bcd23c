package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type Penalty struct {
	Id          uuid.UUID  `json:"id" db:"id"`
	UserId      uuid.UUID  `json:"userId" db:"user_id"`
	BidId       uuid.UUID  `json:"bidId" db:"bid_id"`
	ProductId   uuid.UUID  `json:"productId" db:"product_id"`
	Type        string     `json:"type" db:"type"`
	Amount      float64    `json:"amount" db:"amount"`
	Description string     `json:"description" db:"description"`
	Status      string     `json:"status" db:"status"`
	AppliedAt   time.Time  `json:"appliedAt" db:"applied_at"`
	ResolvedAt  *time.Time `json:"resolvedAt" db:"resolved_at"`
}

// service + repo input model
type CreatePenaltyInput struct {
	UserId      string
	BidId       string
	ProductId   string
	Type        string
	Amount      float64 // zero means warning-only
	Description string
	// Status should be set: "active"
}

// controller model
type PenaltyOutputModel struct {
	Id          string  `json:"id"`
	UserId      string  `json:"userId"`
	BidId       string  `json:"bidId"`
	ProductId   string  `json:"productId"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	AppliedAt   string  `json:"appliedAt"`
	ResolvedAt  string  `json:"resolvedAt,omitempty"`
}
