package pricing

import (
	"math"

	"github.com/moodreel/recommendation-service/internal/domain"
)

const (
	basePrice = 4.99
	minPrice  = 0.99

	lowestPricesSuggestion = "Rent between 2 AM - 6 AM for lowest prices!"
	primeTimeSuggestion    = "Prime time pricing active (7-10 PM)."
	weekendSuggestion      = "Weekends are more expensive. Try weekdays for better rates."
	weekendAddon           = " Also, it's a weekend, so prices are higher."
	popularPrefix          = "This movie is popular, affecting its price. "
	watchedPrefix          = "Welcome back! You've watched this before, enjoy a discount. "
)

// QuoteInput mirrors the query parameters of the dynamic-price
// endpoint.
type QuoteInput struct {
	ImdbID     string
	HourOfDay  int     // 0-23
	DayOfWeek  string  // "Mon".."Sun"
	Popularity float64 // IMDb rating used as popularity proxy
}

// Quote applies the dynamic pricing rules in their fixed order: prime
// time, weekend, popularity, watched-before discount. The suggestion
// string composes additively as each rule fires; the multiplier order
// and message wording are a compatibility contract and must not change.
func Quote(in QuoteInput, history domain.ViewingHistory) domain.PriceQuote {
	price := basePrice
	suggestion := lowestPricesSuggestion

	// 1. Prime time surcharge, 7-10 PM inclusive.
	if in.HourOfDay >= 19 && in.HourOfDay <= 22 {
		price *= 1.25
		suggestion = primeTimeSuggestion
	}

	// 2. Weekend surcharge. The weekend message replaces the default
	// only when no rule has fired yet; otherwise it appends.
	if in.DayOfWeek == "Sat" || in.DayOfWeek == "Sun" {
		price *= 1.15
		if suggestion == lowestPricesSuggestion {
			suggestion = weekendSuggestion
		} else {
			suggestion += weekendAddon
		}
	}

	// 3. Trending movies cost a little more.
	if in.Popularity > 7.5 {
		price *= 1 + (in.Popularity-7.5)*0.05
		suggestion = popularPrefix + suggestion
	}

	// 4. Watched-before discount.
	if in.ImdbID != "" && history.HasWatched(in.ImdbID) {
		price *= 0.9
		suggestion = watchedPrefix + suggestion
	}

	price = math.Max(minPrice, math.Round(price*100)/100)

	return domain.PriceQuote{
		RentalPrice: price,
		Suggestion:  suggestion,
	}
}
