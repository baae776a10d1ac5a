package http

import (
	"net/http"

	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/service"
)

type ProfileHandler struct {
	profiles service.ProfileService
}

func NewProfileHandler(profiles service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Upsert saves the caller's profile. Identity fields in the body are ignored;
// they always come from the credential.
func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	var profile domain.UserProfile
	if err := decodeJSON(r, &profile); err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := h.profiles.Upsert(r.Context(), identity, &profile)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
