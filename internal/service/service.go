package service

import (
	"context"

	"arena-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	AdminLogin(ctx context.Context, email, password string) (*domain.User, string, error)
	SetupAdmin(ctx context.Context, username, email, password string) (*domain.User, error)
}

type TeamService interface {
	ApplyToJoin(ctx context.Context, teamID int32, requesterName, role, rank string) (*domain.JoinRequest, error)
	ListJoinRequests(ctx context.Context, teamID int32, status domain.JoinRequestStatus) ([]domain.JoinRequest, error)
	ResolveJoinRequest(ctx context.Context, requestID int32, decision domain.Decision) (*domain.JoinRequest, error)
	ListMembers(ctx context.Context, teamID int32) ([]domain.TeamMember, error)
}

type TournamentService interface {
	ListGames(ctx context.Context) ([]domain.Game, error)
	GetGame(ctx context.Context, id int32) (*domain.Game, error)
	ListTournaments(ctx context.Context) ([]domain.Tournament, error)
	GetTournament(ctx context.Context, id int32) (*domain.Tournament, error)
	SearchTournaments(ctx context.Context, query string) ([]domain.Tournament, error)
	SetRegistrationStatus(ctx context.Context, id int32, status domain.RegistrationStatus) error
	DeleteTournament(ctx context.Context, id int32) error
	Register(ctx context.Context, tournamentID, userID int32) (*domain.TournamentRegistration, error)
	Unregister(ctx context.Context, tournamentID, userID int32) error
	ListRegistrations(ctx context.Context, tournamentID int32) ([]domain.TournamentRegistration, error)
}

type EmailService interface {
	SendJoinRequestDecision(ctx context.Context, email, name, teamName string, status domain.JoinRequestStatus) error
}
