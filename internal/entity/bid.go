package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type Bid struct {
	Id                   uuid.UUID  `json:"id" db:"id"`
	ProductId            uuid.UUID  `json:"productId" db:"product_id"`
	BuyerId              uuid.UUID  `json:"buyerId" db:"buyer_id"`
	Amount               float64    `json:"amount" db:"amount"`
	Status               string     `json:"status" db:"status"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	ConfirmationDeadline *time.Time `json:"confirmationDeadline" db:"confirmation_deadline"`
	ConfirmedAt          *time.Time `json:"confirmedAt" db:"confirmed_at"`
	AbandonedAt          *time.Time `json:"abandonedAt" db:"abandoned_at"`
}

// service + repo input model
type CreateBidInput struct {
	ProductId string  // given
	BuyerId   string  // given
	Amount    float64 // given
	// Status should be set: "pending"
	// Id and CreatedAt set automatically
}

// BidStatusPatch carries the columns written together with a status
// transition. Nil fields are left untouched.
type BidStatusPatch struct {
	ConfirmationDeadline *time.Time
	ConfirmedAt          *time.Time
	AbandonedAt          *time.Time
}

// controller model
type BidOutputModel struct {
	Id                   string  `json:"id"`
	ProductId            string  `json:"productId"`
	BuyerId              string  `json:"buyerId"`
	Amount               float64 `json:"amount"`
	Status               string  `json:"status"`
	CreatedAt            string  `json:"createdAt"`
	ConfirmationDeadline string  `json:"confirmationDeadline,omitempty"`
	ConfirmedAt          string  `json:"confirmedAt,omitempty"`
	AbandonedAt          string  `json:"abandonedAt,omitempty"`
}

// BidEvent is the payload published to the realtime feed after a
// successful lifecycle transition.
type BidEvent struct {
	EventId    string    `json:"event_id"`
	BidId      string    `json:"bid_id"`
	ProductId  string    `json:"product_id"`
	BuyerId    string    `json:"buyer_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
