package handler

import (
	"net/http"
	"strconv"

	"github.com/moodreel/recommendation-service/internal/pricing"
)

// GET /api/dynamic-price
//
// The dynamic pricing collaborator. The coordinator consumes this over
// HTTP; the response shape and rule behavior are a compatibility
// contract (see pricing.Quote).
func (h *Handler) GetDynamicPrice(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	hour := 0
	if t := q.Get("timeOfDay"); t != "" {
		parsed, err := strconv.Atoi(t)
		if err != nil || parsed < 0 || parsed > 23 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid timeOfDay parameter")
			return
		}
		hour = parsed
	}

	popularity := 0.0
	if p := q.Get("moviePopularity"); p != "" {
		parsed, err := strconv.ParseFloat(p, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid moviePopularity parameter")
			return
		}
		popularity = parsed
	}

	quote := pricing.Quote(pricing.QuoteInput{
		ImdbID:     q.Get("imdbID"),
		HourOfDay:  hour,
		DayOfWeek:  q.Get("dayOfWeek"),
		Popularity: popularity,
	}, h.history)

	writeJSON(w, http.StatusOK, quote)
}
