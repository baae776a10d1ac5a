package http

import (
	"net/http"

	"pvmarket-backend/internal/advisor"
)

type AdvisorHandler struct{}

func NewAdvisorHandler() *AdvisorHandler {
	return &AdvisorHandler{}
}

// Advise runs the recommendation heuristic. Stateless; nothing is stored.
func (h *AdvisorHandler) Advise(w http.ResponseWriter, r *http.Request) {
	var input advisor.Input
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	rec, err := advisor.Recommend(input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// search_filters mirrors the browse query parameters so the client can
	// jump straight from a recommendation to matching listings.
	filters := rec.Filters()
	writeJSON(w, http.StatusOK, map[string]any{
		"recommendation": rec,
		"search_filters": map[string]any{
			"length_min": filters.LengthMin,
			"length_max": filters.LengthMax,
			"weight_min": filters.WeightMin,
			"weight_max": filters.WeightMax,
		},
	})
}
