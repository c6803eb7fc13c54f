package service

import (
	"context"
	"database/sql"
	"errors"

	"arena-backend/internal/domain"
	"arena-backend/internal/logger"
	"arena-backend/internal/repository"
)

type teamService struct {
	teamRepo repository.TeamRepository
	reqRepo  repository.JoinRequestRepository
	userRepo repository.UserRepository
	emailSvc EmailService
}

func NewTeamService(
	teamRepo repository.TeamRepository,
	reqRepo repository.JoinRequestRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		reqRepo:  reqRepo,
		userRepo: userRepo,
		emailSvc: emailSvc,
	}
}

func (s *teamService) ApplyToJoin(ctx context.Context, teamID int32, requesterName, role, rank string) (*domain.JoinRequest, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.E(domain.ErrNotFound, "team not found")
		}
		return nil, domain.Wrap(domain.ErrInternal, "failed to load team", err)
	}

	isMember, err := s.teamRepo.MemberExists(ctx, teamID, requesterName)
	if err != nil {
		return nil, domain.Wrap(domain.ErrInternal, "failed to check membership", err)
	}
	if isMember {
		return nil, domain.E(domain.ErrDuplicateMember, "user is already a member of this team")
	}

	pending, err := s.reqRepo.HasPending(ctx, teamID, requesterName)
	if err != nil {
		return nil, domain.Wrap(domain.ErrInternal, "failed to check pending applications", err)
	}
	if pending {
		return nil, domain.E(domain.ErrConflict, "an application for this team is already pending")
	}

	req := &domain.JoinRequest{
		TeamID:        teamID,
		RequesterName: requesterName,
		Role:          role,
		Rank:          rank,
		Status:        domain.JoinRequestStatusPending,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, domain.Wrap(domain.ErrWriteFailure, "failed to create join request", err)
	}
	return req, nil
}

func (s *teamService) ListJoinRequests(ctx context.Context, teamID int32, status domain.JoinRequestStatus) ([]domain.JoinRequest, error) {
	reqs, err := s.reqRepo.ListByTeam(ctx, teamID, status)
	if err != nil {
		return nil, domain.Wrap(domain.ErrInternal, "failed to list join requests", err)
	}
	return reqs, nil
}

// ResolveJoinRequest applies a decision to a pending join request. The
// repository performs the transition and the membership insert as one
// transaction; this layer validates the decision, logs the outcome, and
// notifies the requester on success.
func (s *teamService) ResolveJoinRequest(ctx context.Context, requestID int32, decision domain.Decision) (*domain.JoinRequest, error) {
	if !decision.Valid() {
		return nil, domain.E(domain.ErrInvalidInput, "decision must be accept or reject")
	}

	req, err := s.reqRepo.Resolve(ctx, requestID, decision)
	if err != nil {
		logger.Error("join request resolution failed",
			"request_id", requestID, "decision", decision, "error", err)
		return nil, err
	}

	logger.Info("join request resolved",
		"request_id", req.ID, "team_id", req.TeamID, "requester", req.RequesterName, "status", req.Status)

	s.notifyRequester(ctx, req)
	return req, nil
}

// notifyRequester emails the requester about the decision. Delivery is
// best effort; the resolution has already committed.
func (s *teamService) notifyRequester(ctx context.Context, req *domain.JoinRequest) {
	user, err := s.userRepo.GetByUsername(ctx, req.RequesterName)
	if err != nil {
		logger.Warn("skipping decision notification, requester lookup failed",
			"request_id", req.ID, "requester", req.RequesterName, "error", err)
		return
	}
	team, err := s.teamRepo.GetByID(ctx, req.TeamID)
	if err != nil {
		logger.Warn("skipping decision notification, team lookup failed",
			"request_id", req.ID, "team_id", req.TeamID, "error", err)
		return
	}
	if err := s.emailSvc.SendJoinRequestDecision(ctx, user.Email, user.Username, team.Name, req.Status); err != nil {
		logger.Warn("failed to send decision notification",
			"request_id", req.ID, "email", user.Email, "error", err)
	}
}

func (s *teamService) ListMembers(ctx context.Context, teamID int32) ([]domain.TeamMember, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.E(domain.ErrNotFound, "team not found")
		}
		return nil, domain.Wrap(domain.ErrInternal, "failed to load team", err)
	}
	members, err := s.teamRepo.ListMembers(ctx, teamID)
	if err != nil {
		return nil, domain.Wrap(domain.ErrInternal, "failed to list team members", err)
	}
	return members, nil
}
