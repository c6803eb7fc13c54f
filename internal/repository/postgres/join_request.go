package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"arena-backend/internal/domain"
	"arena-backend/internal/logger"
	"arena-backend/internal/repository"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type joinRequestRepository struct {
	db *sql.DB
}

func NewJoinRequestRepository(db *sql.DB) repository.JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

func (r *joinRequestRepository) Create(ctx context.Context, req *domain.JoinRequest) error {
	query := `INSERT INTO team_join_requests (team_id, requester_name, role, rank, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, req.TeamID, req.RequesterName, req.Role, req.Rank, req.Status, time.Now()).Scan(&req.ID)
}

func scanJoinRequest(row interface{ Scan(...any) error }) (*domain.JoinRequest, error) {
	req := &domain.JoinRequest{}
	var createdOn time.Time
	var resolvedOn sql.NullTime
	err := row.Scan(&req.ID, &req.TeamID, &req.RequesterName, &req.Role, &req.Rank, &req.Status, &createdOn, &resolvedOn)
	if err != nil {
		return nil, err
	}
	req.CreatedOn = createdOn.Format(time.RFC3339)
	if resolvedOn.Valid {
		resolved := resolvedOn.Time.Format(time.RFC3339)
		req.ResolvedOn = &resolved
	}
	return req, nil
}

func (r *joinRequestRepository) GetByID(ctx context.Context, id int32) (*domain.JoinRequest, error) {
	query := `SELECT id, team_id, requester_name, role, rank, status, created_on, resolved_on
	          FROM team_join_requests WHERE id = $1`
	return scanJoinRequest(r.db.QueryRowContext(ctx, query, id))
}

func (r *joinRequestRepository) ListByTeam(ctx context.Context, teamID int32, status domain.JoinRequestStatus) ([]domain.JoinRequest, error) {
	query := `SELECT id, team_id, requester_name, role, rank, status, created_on, resolved_on
	          FROM team_join_requests WHERE team_id = $1`
	args := []any{teamID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_on`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.JoinRequest
	for rows.Next() {
		req, err := scanJoinRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

func (r *joinRequestRepository) HasPending(ctx context.Context, teamID int32, requesterName string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM team_join_requests WHERE team_id = $1 AND requester_name = $2 AND status = 'pending')`
	err := r.db.QueryRowContext(ctx, query, teamID, requesterName).Scan(&exists)
	return exists, err
}

// Resolve transitions a pending join request to the terminal status the
// decision maps to. On acceptance it also inserts the team membership
// row. The load, the membership check, the insert, and the status
// update are one transaction: the system must never observe a member
// row with the request still pending, or an accepted request with no
// member row. Every failure path rolls the whole transaction back.
//
// The in-transaction existence check is the friendly rejection; the
// UNIQUE (team_id, member_name) constraint on team_members is the real
// guard, so a unique violation at insert time reports DuplicateMember
// rather than a generic write failure.
func (r *joinRequestRepository) Resolve(ctx context.Context, id int32, decision domain.Decision) (*domain.JoinRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, domain.Wrap(domain.ErrWriteFailure, "could not start transaction", err)
	}
	defer tx.Rollback()

	req := &domain.JoinRequest{}
	var createdOn time.Time
	query := `SELECT id, team_id, requester_name, role, rank, status, created_on
	          FROM team_join_requests WHERE id = $1 AND status = 'pending' FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.TeamID, &req.RequesterName, &req.Role, &req.Rank, &req.Status, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.E(domain.ErrAlreadyProcessed, "join request not found or already processed")
	}
	if err != nil {
		return nil, domain.Wrap(domain.ErrWriteFailure, "failed to load join request", err)
	}
	req.CreatedOn = createdOn.Format(time.RFC3339)

	if decision == domain.DecisionAccept {
		var exists bool
		err = tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM team_members WHERE team_id = $1 AND member_name = $2)`,
			req.TeamID, req.RequesterName).Scan(&exists)
		if err != nil {
			return nil, domain.Wrap(domain.ErrWriteFailure, "failed to check existing membership", err)
		}
		if exists {
			logger.Warn("join request acceptance refused, membership exists",
				"request_id", id, "team_id", req.TeamID, "member_name", req.RequesterName)
			return nil, domain.E(domain.ErrDuplicateMember, "user is already a member of this team")
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO team_members (team_id, member_name, role, rank, presence_status, joined_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			req.TeamID, req.RequesterName, req.Role, req.Rank, domain.PresenceOnline, time.Now())
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
				logger.Warn("join request acceptance lost membership race",
					"request_id", id, "team_id", req.TeamID, "member_name", req.RequesterName)
				return nil, domain.E(domain.ErrDuplicateMember, "user is already a member of this team")
			}
			logger.Error("team member insert failed",
				"request_id", id, "team_id", req.TeamID, "member_name", req.RequesterName, "error", err)
			return nil, domain.Wrap(domain.ErrWriteFailure, "failed to add team member", err)
		}
	}

	status := decision.TerminalStatus()
	res, err := tx.ExecContext(ctx,
		`UPDATE team_join_requests SET status = $1, resolved_on = NOW() WHERE id = $2 AND status = 'pending'`,
		status, id)
	if err != nil {
		return nil, domain.Wrap(domain.ErrWriteFailure, "failed to update join request status", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, domain.Wrap(domain.ErrWriteFailure, "failed to update join request status", err)
	}
	if rows == 0 {
		// Lost a race to a concurrent resolver between load and update.
		logger.Error("join request status update affected no rows",
			"request_id", id, "team_id", req.TeamID, "member_name", req.RequesterName)
		return nil, domain.E(domain.ErrWriteFailure, "join request status update did not apply")
	}

	if err := tx.Commit(); err != nil {
		return nil, domain.Wrap(domain.ErrWriteFailure, "failed to commit join request resolution", err)
	}

	req.Status = status
	return req, nil
}

func (r *joinRequestRepository) PurgeResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM team_join_requests WHERE status <> 'pending' AND resolved_on < $1`
	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
