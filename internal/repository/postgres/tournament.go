package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"arena-backend/internal/domain"
	"arena-backend/internal/repository"

	"github.com/lib/pq"
)

type tournamentRepository struct {
	db *sql.DB
}

func NewTournamentRepository(db *sql.DB) repository.TournamentRepository {
	return &tournamentRepository{db: db}
}

const tournamentColumns = `t.id, t.game_id, g.name, t.name, COALESCE(t.description, ''), t.start_date, t.registration_status, t.created_on`

func scanTournament(row interface{ Scan(...any) error }) (*domain.Tournament, error) {
	t := &domain.Tournament{}
	var startDate, createdOn time.Time
	err := row.Scan(&t.ID, &t.GameID, &t.GameName, &t.Name, &t.Description, &startDate, &t.RegistrationStatus, &createdOn)
	if err != nil {
		return nil, err
	}
	t.StartDate = startDate.Format(time.RFC3339)
	t.CreatedOn = createdOn.Format(time.RFC3339)
	return t, nil
}

func (r *tournamentRepository) List(ctx context.Context) ([]domain.Tournament, error) {
	query := fmt.Sprintf(`SELECT %s FROM tournaments t JOIN games g ON g.id = t.game_id ORDER BY t.start_date`, tournamentColumns)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tournaments []domain.Tournament
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, err
		}
		tournaments = append(tournaments, *t)
	}
	return tournaments, rows.Err()
}

func (r *tournamentRepository) GetByID(ctx context.Context, id int32) (*domain.Tournament, error) {
	query := fmt.Sprintf(`SELECT %s FROM tournaments t JOIN games g ON g.id = t.game_id WHERE t.id = $1`, tournamentColumns)
	return scanTournament(r.db.QueryRowContext(ctx, query, id))
}

func (r *tournamentRepository) Search(ctx context.Context, query string) ([]domain.Tournament, error) {
	q := fmt.Sprintf(`SELECT %s FROM tournaments t JOIN games g ON g.id = t.game_id
	                  WHERE t.name ILIKE $1 OR g.name ILIKE $1 ORDER BY t.start_date`, tournamentColumns)
	rows, err := r.db.QueryContext(ctx, q, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tournaments []domain.Tournament
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, err
		}
		tournaments = append(tournaments, *t)
	}
	return tournaments, rows.Err()
}

func (r *tournamentRepository) SetRegistrationStatus(ctx context.Context, id int32, status domain.RegistrationStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tournaments SET registration_status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return domain.Wrap(domain.ErrWriteFailure, "failed to update registration status", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return domain.Wrap(domain.ErrWriteFailure, "failed to update registration status", err)
	}
	if rows == 0 {
		return domain.E(domain.ErrNotFound, "tournament not found")
	}
	return nil
}

// Delete removes a tournament together with its registrations in one
// transaction.
func (r *tournamentRepository) Delete(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Wrap(domain.ErrWriteFailure, "could not start transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tournament_registrations WHERE tournament_id = $1`, id); err != nil {
		return domain.Wrap(domain.ErrWriteFailure, "failed to delete registrations", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return domain.Wrap(domain.ErrWriteFailure, "failed to delete tournament", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return domain.Wrap(domain.ErrWriteFailure, "failed to delete tournament", err)
	}
	if rows == 0 {
		return domain.E(domain.ErrNotFound, "tournament not found")
	}

	if err := tx.Commit(); err != nil {
		return domain.Wrap(domain.ErrWriteFailure, "failed to commit tournament delete", err)
	}
	return nil
}

func (r *tournamentRepository) CreateRegistration(ctx context.Context, reg *domain.TournamentRegistration) error {
	query := `INSERT INTO tournament_registrations (tournament_id, user_id, registered_on)
	          VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, reg.TournamentID, reg.UserID, time.Now()).Scan(&reg.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.E(domain.ErrConflict, "already registered for this tournament")
		}
		return domain.Wrap(domain.ErrWriteFailure, "failed to create registration", err)
	}
	return nil
}

func (r *tournamentRepository) DeleteRegistration(ctx context.Context, tournamentID, userID int32) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tournament_registrations WHERE tournament_id = $1 AND user_id = $2`, tournamentID, userID)
	if err != nil {
		return domain.Wrap(domain.ErrWriteFailure, "failed to delete registration", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return domain.Wrap(domain.ErrWriteFailure, "failed to delete registration", err)
	}
	if rows == 0 {
		return domain.E(domain.ErrNotFound, "registration not found")
	}
	return nil
}

func (r *tournamentRepository) ListRegistrations(ctx context.Context, tournamentID int32) ([]domain.TournamentRegistration, error) {
	query := `SELECT r.id, r.tournament_id, r.user_id, u.username, r.registered_on
	          FROM tournament_registrations r JOIN users u ON u.id = r.user_id
	          WHERE r.tournament_id = $1 ORDER BY r.registered_on`
	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []domain.TournamentRegistration
	for rows.Next() {
		var reg domain.TournamentRegistration
		var registeredOn time.Time
		if err := rows.Scan(&reg.ID, &reg.TournamentID, &reg.UserID, &reg.Username, &registeredOn); err != nil {
			return nil, err
		}
		reg.RegisteredOn = registeredOn.Format(time.RFC3339)
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *tournamentRepository) CloseOverdueRegistrations(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE tournaments SET registration_status = 'closed'
	          WHERE registration_status = 'open' AND start_date < $1`
	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
