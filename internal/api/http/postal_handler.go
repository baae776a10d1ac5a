package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"pvmarket-backend/internal/postal"
)

type PostalHandler struct{}

func NewPostalHandler() *PostalHandler {
	return &PostalHandler{}
}

// Lookup resolves a postal code to its municipality. Unresolvable codes are
// not an error; the municipality comes back empty.
func (h *PostalHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	writeJSON(w, http.StatusOK, map[string]string{
		"postal_code":  code,
		"municipality": postal.Resolve(code),
	})
}

// Municipalities lists the known municipalities for filter dropdowns.
func (h *PostalHandler) Municipalities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"municipalities": postal.Municipalities()})
}
