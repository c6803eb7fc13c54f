package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"arena-backend/internal/domain"
	"arena-backend/internal/repository"
)

type tournamentService struct {
	tournamentRepo repository.TournamentRepository
	gameRepo       repository.GameRepository
}

func NewTournamentService(tournamentRepo repository.TournamentRepository, gameRepo repository.GameRepository) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		gameRepo:       gameRepo,
	}
}

func (s *tournamentService) ListGames(ctx context.Context) ([]domain.Game, error) {
	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, domain.Wrap(domain.ErrInternal, "failed to list games", err)
	}
	return games, nil
}

func (s *tournamentService) GetGame(ctx context.Context, id int32) (*domain.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.E(domain.ErrNotFound, "game not found")
		}
		return nil, domain.Wrap(domain.ErrInternal, "failed to load game", err)
	}
	return game, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context) ([]domain.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, domain.Wrap(domain.ErrInternal, "failed to list tournaments", err)
	}
	return tournaments, nil
}

func (s *tournamentService) GetTournament(ctx context.Context, id int32) (*domain.Tournament, error) {
	t, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.E(domain.ErrNotFound, "tournament not found")
		}
		return nil, domain.Wrap(domain.ErrInternal, "failed to load tournament", err)
	}
	return t, nil
}

func (s *tournamentService) SearchTournaments(ctx context.Context, query string) ([]domain.Tournament, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.E(domain.ErrInvalidInput, "search query is required")
	}
	tournaments, err := s.tournamentRepo.Search(ctx, query)
	if err != nil {
		return nil, domain.Wrap(domain.ErrInternal, "failed to search tournaments", err)
	}
	return tournaments, nil
}

func (s *tournamentService) SetRegistrationStatus(ctx context.Context, id int32, status domain.RegistrationStatus) error {
	if status != domain.RegistrationOpen && status != domain.RegistrationClosed {
		return domain.E(domain.ErrInvalidInput, "registration status must be open or closed")
	}
	return s.tournamentRepo.SetRegistrationStatus(ctx, id, status)
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id int32) error {
	return s.tournamentRepo.Delete(ctx, id)
}

func (s *tournamentService) Register(ctx context.Context, tournamentID, userID int32) (*domain.TournamentRegistration, error) {
	t, err := s.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if t.RegistrationStatus != domain.RegistrationOpen {
		return nil, domain.E(domain.ErrConflict, "registration is closed for this tournament")
	}

	reg := &domain.TournamentRegistration{
		TournamentID: tournamentID,
		UserID:       userID,
	}
	if err := s.tournamentRepo.CreateRegistration(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *tournamentService) Unregister(ctx context.Context, tournamentID, userID int32) error {
	return s.tournamentRepo.DeleteRegistration(ctx, tournamentID, userID)
}

func (s *tournamentService) ListRegistrations(ctx context.Context, tournamentID int32) ([]domain.TournamentRegistration, error) {
	if _, err := s.GetTournament(ctx, tournamentID); err != nil {
		return nil, err
	}
	regs, err := s.tournamentRepo.ListRegistrations(ctx, tournamentID)
	if err != nil {
		return nil, domain.Wrap(domain.ErrInternal, "failed to list registrations", err)
	}
	return regs, nil
}
