package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arena-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) ApplyToJoin(ctx context.Context, teamID int32, requesterName, role, rank string) (*domain.JoinRequest, error) {
	args := m.Called(ctx, teamID, requesterName, role, rank)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}
func (m *MockTeamService) ListJoinRequests(ctx context.Context, teamID int32, status domain.JoinRequestStatus) ([]domain.JoinRequest, error) {
	args := m.Called(ctx, teamID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JoinRequest), args.Error(1)
}
func (m *MockTeamService) ResolveJoinRequest(ctx context.Context, requestID int32, decision domain.Decision) (*domain.JoinRequest, error) {
	args := m.Called(ctx, requestID, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}
func (m *MockTeamService) ListMembers(ctx context.Context, teamID int32) ([]domain.TeamMember, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

func doResolve(t *testing.T, svc *MockTeamService, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	handler := NewTeamHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/teams/join-requests/resolve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Resolve(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestTeamHandler_Resolve(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockTeamService)
		resolved := &domain.JoinRequest{ID: 42, TeamID: 7, RequesterName: "alice", Status: domain.JoinRequestStatusAccepted}
		svc.On("ResolveJoinRequest", mock.Anything, int32(42), domain.DecisionAccept).Return(resolved, nil).Once()

		rec, env := doResolve(t, svc, `{"request_id": 42, "action": "accepted"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "join request accepted", env.Message)
		svc.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := new(MockTeamService)

		rec, env := doResolve(t, svc, `{"action": "accepted"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
		svc.AssertNotCalled(t, "ResolveJoinRequest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownAction", func(t *testing.T) {
		svc := new(MockTeamService)

		rec, env := doResolve(t, svc, `{"request_id": 42, "action": "approved"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
		svc.AssertNotCalled(t, "ResolveJoinRequest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		svc := new(MockTeamService)

		rec, env := doResolve(t, svc, `{"request_id": `)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("AlreadyProcessed", func(t *testing.T) {
		svc := new(MockTeamService)
		svc.On("ResolveJoinRequest", mock.Anything, int32(43), domain.DecisionReject).
			Return(nil, domain.E(domain.ErrAlreadyProcessed, "join request not found or already processed")).Once()

		rec, env := doResolve(t, svc, `{"request_id": 43, "action": "rejected"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "join request not found or already processed", env.Message)
	})

	// Duplicate membership has always been reported as a server error,
	// not a conflict; clients depend on the classification.
	t.Run("DuplicateMemberMapsTo500", func(t *testing.T) {
		svc := new(MockTeamService)
		svc.On("ResolveJoinRequest", mock.Anything, int32(42), domain.DecisionAccept).
			Return(nil, domain.E(domain.ErrDuplicateMember, "user is already a member of this team")).Once()

		rec, env := doResolve(t, svc, `{"request_id": 42, "action": "accepted"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("WriteFailureMapsTo500", func(t *testing.T) {
		svc := new(MockTeamService)
		svc.On("ResolveJoinRequest", mock.Anything, int32(42), domain.DecisionAccept).
			Return(nil, domain.E(domain.ErrWriteFailure, "join request status update did not apply")).Once()

		rec, env := doResolve(t, svc, `{"request_id": 42, "action": "accepted"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.False(t, env.Success)
	})
}
