package postgres

import (
	"context"
	"testing"
	"time"

	"arena-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTournamentRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTournamentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM tournament_registrations WHERE tournament_id = \$1`).
			WithArgs(int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 8))
		mock.ExpectExec(`DELETE FROM tournaments WHERE id = \$1`).
			WithArgs(int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(ctx, 5)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM tournament_registrations WHERE tournament_id = \$1`).
			WithArgs(int32(6)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM tournaments WHERE id = \$1`).
			WithArgs(int32(6)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(ctx, 6)
		require.Error(t, err)
		assert.Equal(t, domain.ErrNotFound, domain.KindOf(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTournamentRepository_SetRegistrationStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTournamentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE tournaments SET registration_status = \$1 WHERE id = \$2`).
			WithArgs("closed", int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetRegistrationStatus(ctx, 3, domain.RegistrationClosed)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`UPDATE tournaments SET registration_status = \$1 WHERE id = \$2`).
			WithArgs("open", int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetRegistrationStatus(ctx, 99, domain.RegistrationOpen)
		require.Error(t, err)
		assert.Equal(t, domain.ErrNotFound, domain.KindOf(err))
	})
}

func TestTournamentRepository_CreateRegistration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTournamentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO tournament_registrations").
			WithArgs(int32(3), int32(9), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		reg := &domain.TournamentRegistration{TournamentID: 3, UserID: 9}
		err := repo.CreateRegistration(ctx, reg)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), reg.ID)
	})

	t.Run("Duplicate", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO tournament_registrations").
			WithArgs(int32(3), int32(9), sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})

		reg := &domain.TournamentRegistration{TournamentID: 3, UserID: 9}
		err := repo.CreateRegistration(ctx, reg)
		require.Error(t, err)
		assert.Equal(t, domain.ErrConflict, domain.KindOf(err))
	})
}

func TestTournamentRepository_CloseOverdueRegistrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTournamentRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE tournaments SET registration_status = 'closed'`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	count, err := repo.CloseOverdueRegistrations(ctx, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestTournamentRepository_Search(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTournamentRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "game_id", "g_name", "name", "description", "start_date", "registration_status", "created_on"}).
		AddRow(1, 2, "StarForge", "StarForge Open", "weekly cup",
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), "open", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery(`SELECT (.+) FROM tournaments t JOIN games g ON g.id = t.game_id`).
		WithArgs("%forge%").
		WillReturnRows(rows)

	tournaments, err := repo.Search(ctx, "forge")
	assert.NoError(t, err)
	require.Len(t, tournaments, 1)
	assert.Equal(t, "StarForge Open", tournaments[0].Name)
	assert.Equal(t, "StarForge", tournaments[0].GameName)
}
