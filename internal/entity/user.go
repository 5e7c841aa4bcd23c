package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type User struct {
	Id                 uuid.UUID  `json:"id" db:"id"`
	Name               string     `json:"name" db:"name"`
	Email              string     `json:"email" db:"email"`
	Role               string     `json:"role" db:"role"`
	Phone              string     `json:"phone" db:"phone"`
	Address            string     `json:"address" db:"address"`
	AvatarUrl          *string    `json:"avatarUrl" db:"avatar_url"`
	Rating             float64    `json:"rating" db:"rating"`
	ReviewCount        int        `json:"reviewCount" db:"review_count"`
	AbandonCount       int        `json:"abandonCount" db:"abandon_count"`
	BidSuspensionUntil *time.Time `json:"bidSuspensionUntil" db:"bid_suspension_until"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
}

// controller model
type UserOutputModel struct {
	Id                 string  `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Role               string  `json:"role"`
	Phone              string  `json:"phone"`
	Address            string  `json:"address"`
	AvatarUrl          string  `json:"avatarUrl,omitempty"`
	Rating             float64 `json:"rating"`
	ReviewCount        int     `json:"reviewCount"`
	AbandonCount       int     `json:"abandonCount"`
	BidSuspensionUntil string  `json:"bidSuspensionUntil,omitempty"`
	CreatedAt          string  `json:"createdAt"`
}

// Suspended reports whether the user is barred from placing bids at the
// given moment.
func (u *User) Suspended(now time.Time) bool {
	return u.BidSuspensionUntil != nil && now.Before(*u.BidSuspensionUntil)
}
