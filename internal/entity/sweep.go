package entity

// SweepSummary reports the outcome of one deadline sweep pass.
type SweepSummary struct {
	BidsAbandoned  int `json:"bidsAbandoned"`
	UsersSuspended int `json:"usersSuspended"`
}

// ResolutionSummary reports the outcome of one expired-auction
// resolution pass.
type ResolutionSummary struct {
	ProductsResolved int `json:"productsResolved"`
	BidsRejected     int `json:"bidsRejected"`
}
