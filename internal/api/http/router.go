package http

import (
	"net/http"
	"time"

	"arena-backend/internal/config"
	"arena-backend/internal/security"
	"arena-backend/internal/service"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
)

// NewRouter wires every endpoint of the platform API.
func NewRouter(
	cfg *config.Config,
	tokens security.TokenManager,
	authSvc service.AuthService,
	teamSvc service.TeamService,
	tournamentSvc service.TournamentService,
) http.Handler {
	authHandler := NewAuthHandler(authSvc)
	teamHandler := NewTeamHandler(teamSvc)
	tournamentHandler := NewTournamentHandler(tournamentSvc)

	limiter := NewIPRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, 5*time.Minute)
	auth := AuthMiddleware(tokens)

	r := mux.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(limiter.Middleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respond(w, http.StatusOK, nil, "ok")
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Auth
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/admin/setup", authHandler.AdminSetup).Methods(http.MethodPost)
	api.HandleFunc("/admin/login", authHandler.AdminLogin).Methods(http.MethodPost)

	// Public lookups
	api.HandleFunc("/games", tournamentHandler.ListGames).Methods(http.MethodGet)
	api.HandleFunc("/games/{id:[0-9]+}", tournamentHandler.GetGame).Methods(http.MethodGet)
	api.HandleFunc("/tournaments", tournamentHandler.ListTournaments).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/search", tournamentHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{id:[0-9]+}", tournamentHandler.GetTournament).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{id:[0-9]+}/registrations", tournamentHandler.ListRegistrations).Methods(http.MethodGet)
	api.HandleFunc("/teams/{id:[0-9]+}/members", teamHandler.ListMembers).Methods(http.MethodGet)

	// Authenticated player actions
	player := api.NewRoute().Subrouter()
	player.Use(auth)
	player.HandleFunc("/tournaments/{id:[0-9]+}/register", tournamentHandler.Register).Methods(http.MethodPost)
	player.HandleFunc("/tournaments/{id:[0-9]+}/register", tournamentHandler.Unregister).Methods(http.MethodDelete)
	player.HandleFunc("/teams/{id:[0-9]+}/join-requests", teamHandler.Apply).Methods(http.MethodPost)

	// Team management and admin actions
	admin := api.NewRoute().Subrouter()
	admin.Use(auth, RequireAdmin)
	admin.HandleFunc("/teams/{id:[0-9]+}/join-requests", teamHandler.ListJoinRequests).Methods(http.MethodGet)
	admin.HandleFunc("/teams/join-requests/resolve", teamHandler.Resolve).Methods(http.MethodPost)
	admin.HandleFunc("/tournaments/{id:[0-9]+}/registration-status", tournamentHandler.SetRegistrationStatus).Methods(http.MethodPut)
	admin.HandleFunc("/tournaments/{id:[0-9]+}", tournamentHandler.Delete).Methods(http.MethodDelete)

	return r
}
