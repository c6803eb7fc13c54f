package postgres

import (
	"context"
	"database/sql"
	"time"

	"arena-backend/internal/domain"
	"arena-backend/internal/repository"
)

type teamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) repository.TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) GetByID(ctx context.Context, id int32) (*domain.Team, error) {
	team := &domain.Team{}
	var createdOn time.Time
	query := `SELECT id, name, tag, created_on FROM teams WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&team.ID, &team.Name, &team.Tag, &createdOn)
	if err != nil {
		return nil, err
	}
	team.CreatedOn = createdOn.Format(time.RFC3339)
	return team, nil
}

func (r *teamRepository) ListMembers(ctx context.Context, teamID int32) ([]domain.TeamMember, error) {
	query := `SELECT team_id, member_name, role, rank, presence_status, joined_at
	          FROM team_members WHERE team_id = $1 ORDER BY joined_at`
	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.TeamID, &m.MemberName, &m.Role, &m.Rank, &m.PresenceStatus, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *teamRepository) MemberExists(ctx context.Context, teamID int32, memberName string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM team_members WHERE team_id = $1 AND member_name = $2)`
	err := r.db.QueryRowContext(ctx, query, teamID, memberName).Scan(&exists)
	return exists, err
}
