package http

import (
	"net/http"

	"arena-backend/internal/domain"
	"arena-backend/internal/service"
)

type TournamentHandler struct {
	tournamentSvc service.TournamentService
}

func NewTournamentHandler(tournamentSvc service.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentSvc: tournamentSvc}
}

func (h *TournamentHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.tournamentSvc.ListGames(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, games, "")
}

func (h *TournamentHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	game, err := h.tournamentSvc.GetGame(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, game, "")
}

func (h *TournamentHandler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournamentSvc.ListTournaments(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, tournaments, "")
}

func (h *TournamentHandler) GetTournament(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	t, err := h.tournamentSvc.GetTournament(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, t, "")
}

func (h *TournamentHandler) Search(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournamentSvc.SearchTournaments(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, tournaments, "")
}

type registrationStatusRequest struct {
	Status string `json:"status"`
}

func (h *TournamentHandler) SetRegistrationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req registrationStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := h.tournamentSvc.SetRegistrationStatus(r.Context(), id, domain.RegistrationStatus(req.Status)); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, nil, "registration status updated")
}

func (h *TournamentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.tournamentSvc.DeleteTournament(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, nil, "tournament deleted")
}

func (h *TournamentHandler) Register(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, domain.E(domain.ErrUnauthorized, "authentication required"))
		return
	}
	reg, err := h.tournamentSvc.Register(r.Context(), id, claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, reg, "registered for tournament")
}

func (h *TournamentHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, domain.E(domain.ErrUnauthorized, "authentication required"))
		return
	}
	if err := h.tournamentSvc.Unregister(r.Context(), id, claims.UserID); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, nil, "registration cancelled")
}

func (h *TournamentHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	regs, err := h.tournamentSvc.ListRegistrations(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, regs, "")
}
