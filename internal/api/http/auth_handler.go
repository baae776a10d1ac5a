package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"pvmarket-backend/internal/auth"
	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/service"
)

// AuthHandler serves registration, login and Google session endpoints.
type AuthHandler struct {
	authService    service.AuthService
	profileService service.ProfileService
}

func NewAuthHandler(authService service.AuthService, profileService service.ProfileService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		profileService: profileService,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  *domain.LocalUser `json:"user"`
	Token string            `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, token, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}

func (h *AuthHandler) GoogleRedirectURL(w http.ResponseWriter, r *http.Request) {
	// State is generated per request; the client carries it through the
	// OAuth round trip and compares on return.
	url := h.authService.GoogleAuthURL(uuid.NewString())
	writeJSON(w, http.StatusOK, map[string]string{"redirect_url": url})
}

type createSessionRequest struct {
	Code string `json:"code"`
}

// CreateSession trades a Google authorization code for a session cookie.
func (h *AuthHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Code == "" {
		writeError(w, r, domain.Validationf("code is required"))
		return
	}

	session, err := h.authService.GoogleCallback(r.Context(), req.Code)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			writeError(w, r, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type meResponse struct {
	User     *domain.Identity    `json:"user"`
	AuthType domain.AuthType     `json:"auth_type"`
	Profile  *domain.UserProfile `json:"profile"`
}

// Me returns the caller's identity and profile. A missing profile is not an
// error; Google users have none until their first save.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	profile, err := h.profileService.Get(r.Context(), identity.UserID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, meResponse{
		User:     identity,
		AuthType: identity.AuthType,
		Profile:  profile,
	})
}
