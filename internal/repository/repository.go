package repository

import (
	"context"
	"time"

	"arena-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	HasAdmin(ctx context.Context) (bool, error)
}

type GameRepository interface {
	List(ctx context.Context) ([]domain.Game, error)
	GetByID(ctx context.Context, id int32) (*domain.Game, error)
}

type TournamentRepository interface {
	List(ctx context.Context) ([]domain.Tournament, error)
	GetByID(ctx context.Context, id int32) (*domain.Tournament, error)
	Search(ctx context.Context, query string) ([]domain.Tournament, error)
	SetRegistrationStatus(ctx context.Context, id int32, status domain.RegistrationStatus) error
	Delete(ctx context.Context, id int32) error
	CreateRegistration(ctx context.Context, reg *domain.TournamentRegistration) error
	DeleteRegistration(ctx context.Context, tournamentID, userID int32) error
	ListRegistrations(ctx context.Context, tournamentID int32) ([]domain.TournamentRegistration, error)
	CloseOverdueRegistrations(ctx context.Context, now time.Time) (int64, error)
}

type TeamRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Team, error)
	ListMembers(ctx context.Context, teamID int32) ([]domain.TeamMember, error)
	MemberExists(ctx context.Context, teamID int32, memberName string) (bool, error)
}

type JoinRequestRepository interface {
	Create(ctx context.Context, req *domain.JoinRequest) error
	GetByID(ctx context.Context, id int32) (*domain.JoinRequest, error)
	ListByTeam(ctx context.Context, teamID int32, status domain.JoinRequestStatus) ([]domain.JoinRequest, error)
	HasPending(ctx context.Context, teamID int32, requesterName string) (bool, error)
	// Resolve atomically transitions a pending request to its terminal
	// status and, on acceptance, enrolls the requester as a team member.
	Resolve(ctx context.Context, id int32, decision domain.Decision) (*domain.JoinRequest, error)
	PurgeResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
