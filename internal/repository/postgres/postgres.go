package postgres

import (
	"database/sql"

	"arena-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.GameRepository
	repository.TournamentRepository
	repository.TeamRepository
	repository.JoinRequestRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		GameRepository:        NewGameRepository(db),
		TournamentRepository:  NewTournamentRepository(db),
		TeamRepository:        NewTeamRepository(db),
		JoinRequestRepository: NewJoinRequestRepository(db),
	}
}
