package common

import "fmt"

// Bid lifecycle statuses. Pending bids may be accepted, rejected or
// withdrawn; accepted bids may be confirmed or abandoned; confirmed bids
// may be completed. Rejected, withdrawn, abandoned and completed are
// terminal.
const (
	BidPending   = "pending"
	BidAccepted  = "accepted"
	BidRejected  = "rejected"
	BidConfirmed = "confirmed"
	BidAbandoned = "abandoned"
	BidWithdrawn = "withdrawn"
	BidCompleted = "completed"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

const (
	PenaltyDealRefusal  = "deal_refusal"
	PenaltyFakeListing  = "fake_listing"
	PenaltyQualityIssue = "quality_issue"
)

const (
	PenaltyActive = "active"
	PenaltyPaid   = "paid"
	PenaltyWaived = "waived"
)

const (
	NotificationBid      = "bid"
	NotificationMessage  = "message"
	NotificationOrder    = "order"
	NotificationDelivery = "delivery"
	NotificationSystem   = "system"
)

// ParseBidStatus rejects status strings that are not part of the closed
// bid status set. Rows carrying unknown statuses must not leak past the
// storage boundary.
func ParseBidStatus(s string) (string, error) {
	switch s {
	case BidPending, BidAccepted, BidRejected, BidConfirmed, BidAbandoned, BidWithdrawn, BidCompleted:
		return s, nil
	}

	return "", fmt.Errorf("unknown bid status %q", s)
}

// IsTerminalBidStatus reports whether no further transition may leave s.
func IsTerminalBidStatus(s string) bool {
	switch s {
	case BidRejected, BidAbandoned, BidWithdrawn, BidCompleted:
		return true
	}

	return false
}

// ParseRole rejects user roles outside the closed buyer/seller/admin set.
func ParseRole(s string) (string, error) {
	switch s {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return s, nil
	}

	return "", fmt.Errorf("unknown user role %q", s)
}

// ParsePenaltyType validates an administrative penalty category.
func ParsePenaltyType(s string) (string, error) {
	switch s {
	case PenaltyDealRefusal, PenaltyFakeListing, PenaltyQualityIssue:
		return s, nil
	}

	return "", fmt.Errorf("unknown penalty type %q", s)
}

// ParsePenaltyResolution validates a terminal penalty status. Only paid
// and waived resolve a penalty; active is the initial state.
func ParsePenaltyResolution(s string) (string, error) {
	switch s {
	case PenaltyPaid, PenaltyWaived:
		return s, nil
	}

	return "", fmt.Errorf("unknown penalty resolution %q", s)
}
