package service

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrBidNotFound          = errors.New("bid not found")
	ErrPenaltyNotFound      = errors.New("penalty not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrUserIsNotSeller = errors.New("acting user is not a seller")
	ErrUserIsNotAdmin  = errors.New("acting user is not an administrator")
	ErrNotProductOwner = errors.New("acting user doesn't own the bid's product")
	ErrNotBidOwner     = errors.New("acting user is not the buyer of the bid")
	ErrNoAccessToBids  = errors.New("only the product seller or an administrator can list product bids")

	ErrInvalidBidAmount     = errors.New("bid amount must be positive")
	ErrOwnProductBid        = errors.New("attempt to bid on user's own product")
	ErrUserSuspended        = errors.New("user is temporarily suspended from bidding")
	ErrBiddingWindowClosed  = errors.New("product bidding window is closed")
	ErrInvalidBiddingWindow = errors.New("bidding start must precede bidding deadline")

	ErrWrongBidState          = errors.New("bid is not in a state that permits this transition")
	ErrConfirmationExpired    = errors.New("confirmation deadline has passed")
	ErrPenaltyAlreadyResolved = errors.New("penalty has already been resolved")
)
