package domain

// PriceQuote is the dynamic rental price for a movie, at most one per
// IMDb id per session. The JSON field names mirror the pricing endpoint
// contract and must not change.
type PriceQuote struct {
	RentalPrice float64 `json:"rentalPrice"`
	Suggestion  string  `json:"bestTimeToRentSuggestion"`
}
