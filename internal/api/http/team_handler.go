package http

import (
	"net/http"
	"strconv"

	"arena-backend/internal/domain"
	"arena-backend/internal/service"

	"github.com/gorilla/mux"
)

type TeamHandler struct {
	teamSvc service.TeamService
}

func NewTeamHandler(teamSvc service.TeamService) *TeamHandler {
	return &TeamHandler{teamSvc: teamSvc}
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.E(domain.ErrInvalidInput, "invalid "+name)
	}
	return int32(id), nil
}

type applyRequest struct {
	Role string `json:"role"`
	Rank string `json:"rank"`
}

func (h *TeamHandler) Apply(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, domain.E(domain.ErrUnauthorized, "authentication required"))
		return
	}

	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	created, err := h.teamSvc.ApplyToJoin(r.Context(), teamID, claims.Username, req.Role, req.Rank)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, created, "join request submitted")
}

func (h *TeamHandler) ListJoinRequests(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	status := domain.JoinRequestStatus(r.URL.Query().Get("status"))
	reqs, err := h.teamSvc.ListJoinRequests(r.Context(), teamID, status)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, reqs, "")
}

type resolveRequest struct {
	RequestID int32  `json:"request_id"`
	Action    string `json:"action"`
}

// Resolve accepts the decision payload for a pending join request. The
// wire actions are the terminal status names ("accepted"/"rejected");
// they map onto the accept/reject decisions.
func (h *TeamHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.RequestID == 0 || req.Action == "" {
		respondError(w, domain.E(domain.ErrInvalidInput, "request_id and action are required"))
		return
	}

	var decision domain.Decision
	switch req.Action {
	case "accepted":
		decision = domain.DecisionAccept
	case "rejected":
		decision = domain.DecisionReject
	default:
		respondError(w, domain.E(domain.ErrInvalidInput, "action must be accepted or rejected"))
		return
	}

	resolved, err := h.teamSvc.ResolveJoinRequest(r.Context(), req.RequestID, decision)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, resolved, "join request "+string(resolved.Status))
}

func (h *TeamHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	members, err := h.teamSvc.ListMembers(r.Context(), teamID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, members, "")
}
