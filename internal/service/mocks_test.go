package service

import (
	"context"
	"time"

	"arena-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) HasAdmin(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

// MockTeamRepo
type MockTeamRepo struct {
	mock.Mock
}

func (m *MockTeamRepo) GetByID(ctx context.Context, id int32) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}
func (m *MockTeamRepo) ListMembers(ctx context.Context, teamID int32) ([]domain.TeamMember, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}
func (m *MockTeamRepo) MemberExists(ctx context.Context, teamID int32, memberName string) (bool, error) {
	args := m.Called(ctx, teamID, memberName)
	return args.Bool(0), args.Error(1)
}

// MockJoinRequestRepo
type MockJoinRequestRepo struct {
	mock.Mock
}

func (m *MockJoinRequestRepo) Create(ctx context.Context, req *domain.JoinRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) GetByID(ctx context.Context, id int32) (*domain.JoinRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) ListByTeam(ctx context.Context, teamID int32, status domain.JoinRequestStatus) ([]domain.JoinRequest, error) {
	args := m.Called(ctx, teamID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JoinRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) HasPending(ctx context.Context, teamID int32, requesterName string) (bool, error) {
	args := m.Called(ctx, teamID, requesterName)
	return args.Bool(0), args.Error(1)
}
func (m *MockJoinRequestRepo) Resolve(ctx context.Context, id int32, decision domain.Decision) (*domain.JoinRequest, error) {
	args := m.Called(ctx, id, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) PurgeResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockTournamentRepo
type MockTournamentRepo struct {
	mock.Mock
}

func (m *MockTournamentRepo) List(ctx context.Context) ([]domain.Tournament, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tournament), args.Error(1)
}
func (m *MockTournamentRepo) GetByID(ctx context.Context, id int32) (*domain.Tournament, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tournament), args.Error(1)
}
func (m *MockTournamentRepo) Search(ctx context.Context, query string) ([]domain.Tournament, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tournament), args.Error(1)
}
func (m *MockTournamentRepo) SetRegistrationStatus(ctx context.Context, id int32, status domain.RegistrationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockTournamentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTournamentRepo) CreateRegistration(ctx context.Context, reg *domain.TournamentRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}
func (m *MockTournamentRepo) DeleteRegistration(ctx context.Context, tournamentID, userID int32) error {
	args := m.Called(ctx, tournamentID, userID)
	return args.Error(0)
}
func (m *MockTournamentRepo) ListRegistrations(ctx context.Context, tournamentID int32) ([]domain.TournamentRegistration, error) {
	args := m.Called(ctx, tournamentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TournamentRegistration), args.Error(1)
}
func (m *MockTournamentRepo) CloseOverdueRegistrations(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockGameRepo
type MockGameRepo struct {
	mock.Mock
}

func (m *MockGameRepo) List(ctx context.Context) ([]domain.Game, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Game), args.Error(1)
}
func (m *MockGameRepo) GetByID(ctx context.Context, id int32) (*domain.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendJoinRequestDecision(ctx context.Context, email, name, teamName string, status domain.JoinRequestStatus) error {
	args := m.Called(ctx, email, name, teamName, status)
	return args.Error(0)
}
