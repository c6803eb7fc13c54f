package postgres

import (
	"context"
	"database/sql"

	"arena-backend/internal/domain"
	"arena-backend/internal/repository"
)

type gameRepository struct {
	db *sql.DB
}

func NewGameRepository(db *sql.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) List(ctx context.Context) ([]domain.Game, error) {
	query := `SELECT id, name, genre FROM games ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		var g domain.Game
		if err := rows.Scan(&g.ID, &g.Name, &g.Genre); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func (r *gameRepository) GetByID(ctx context.Context, id int32) (*domain.Game, error) {
	g := &domain.Game{}
	query := `SELECT id, name, genre FROM games WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.Genre)
	if err != nil {
		return nil, err
	}
	return g, nil
}
