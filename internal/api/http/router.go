package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"pvmarket-backend/internal/auth"
	"pvmarket-backend/internal/service"
)

// NewRouter wires every API route. Listing browse routes take optional auth
// so owners see their own internal notes; mutations require a credential.
func NewRouter(
	authenticator *auth.Authenticator,
	authService service.AuthService,
	profileService service.ProfileService,
	poleService service.PoleService,
	requestService service.RequestService,
) *mux.Router {
	m := NewMiddleware(authenticator)
	authHandler := NewAuthHandler(authService, profileService)
	profileHandler := NewProfileHandler(profileService)
	poleHandler := NewPoleHandler(poleService, requestService)
	advisorHandler := NewAdvisorHandler()
	postalHandler := NewPostalHandler()

	router := mux.NewRouter()

	router.HandleFunc("/api/health", handleHealth).Methods("GET")

	// Auth and sessions
	router.HandleFunc("/api/oauth/google/redirect_url", authHandler.GoogleRedirectURL).Methods("GET")
	router.HandleFunc("/api/sessions", authHandler.CreateSession).Methods("POST")
	router.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/api/users/me", m.RequireAuth(authHandler.Me)).Methods("GET")
	router.HandleFunc("/api/logout", authHandler.Logout).Methods("GET")

	// Profiles
	router.HandleFunc("/api/profile", m.RequireAuth(profileHandler.Upsert)).Methods("POST")

	// Poles
	router.HandleFunc("/api/poles", m.OptionalAuth(poleHandler.List)).Methods("GET")
	router.HandleFunc("/api/poles", m.RequireAuth(poleHandler.Create)).Methods("POST")
	router.HandleFunc("/api/poles/bulk", m.RequireAuth(poleHandler.CreateBulk)).Methods("POST")
	router.HandleFunc("/api/poles/{id:[0-9]+}", m.OptionalAuth(poleHandler.Get)).Methods("GET")
	router.HandleFunc("/api/poles/{id:[0-9]+}", m.RequireAuth(poleHandler.Update)).Methods("PUT")
	router.HandleFunc("/api/poles/{id:[0-9]+}", m.RequireAuth(poleHandler.Delete)).Methods("DELETE")
	router.HandleFunc("/api/my-poles", m.RequireAuth(poleHandler.ListMine)).Methods("GET")

	// Requests
	router.HandleFunc("/api/poles/{id:[0-9]+}/request", m.RequireAuth(poleHandler.CreateRequest)).Methods("POST")
	router.HandleFunc("/api/my-requests", m.RequireAuth(poleHandler.ListRequests)).Methods("GET")

	// Advisor and postal lookups
	router.HandleFunc("/api/advisor", advisorHandler.Advise).Methods("POST")
	router.HandleFunc("/api/postal-code/{code}", postalHandler.Lookup).Methods("GET")
	router.HandleFunc("/api/municipalities", postalHandler.Municipalities).Methods("GET")

	return router
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
