package availability

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
)

const businessID = "7f1c2d3e-4b5a-4c6d-8e9f-0a1b2c3d4e5f"

var (
	selectWeekly  = regexp.QuoteMeta("SELECT day_index, start_time, end_time, enabled FROM business_availability WHERE business_id = $1 ORDER BY day_index ASC")
	selectBlocked = regexp.QuoteMeta("SELECT blocked_date FROM business_blocked_dates WHERE business_id = $1 ORDER BY blocked_date ASC")
)

func newMockRepository(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), wrapped, mock
}

func TestRepository_GetConfig(t *testing.T) {
	repo, _, mock := newMockRepository(t)

	mock.ExpectQuery(selectWeekly).
		WithArgs(businessID).
		WillReturnRows(sqlmock.NewRows([]string{"day_index", "start_time", "end_time", "enabled"}).
			AddRow(0, []byte("09:00:00"), []byte("17:00:00"), true).
			AddRow(6, []byte("10:00:00"), []byte("14:00:00"), false))

	mock.ExpectQuery(selectBlocked).
		WithArgs(businessID).
		WillReturnRows(sqlmock.NewRows([]string{"blocked_date"}).
			AddRow(time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)))

	cfg, err := repo.GetConfig(context.Background(), businessID)
	require.NoError(t, err)

	require.Len(t, cfg.WeeklyAvailability, 2)
	assert.Equal(t, domain.DayAvailability{DayIndex: 0, StartTime: "09:00", EndTime: "17:00", Enabled: true}, cfg.WeeklyAvailability[0])
	assert.False(t, cfg.WeeklyAvailability[1].Enabled)
	assert.Equal(t, []string{"2025-12-25"}, cfg.BlockedDates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetConfig_NothingStored(t *testing.T) {
	repo, _, mock := newMockRepository(t)

	mock.ExpectQuery(selectWeekly).WithArgs(businessID).
		WillReturnRows(sqlmock.NewRows([]string{"day_index", "start_time", "end_time", "enabled"}))
	mock.ExpectQuery(selectBlocked).WithArgs(businessID).
		WillReturnRows(sqlmock.NewRows([]string{"blocked_date"}))

	cfg, err := repo.GetConfig(context.Background(), businessID)
	require.NoError(t, err)
	assert.True(t, cfg.IsEmpty())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetConfig_QueryError(t *testing.T) {
	repo, _, mock := newMockRepository(t)

	mock.ExpectQuery(selectWeekly).WithArgs(businessID).WillReturnError(errors.New("connection reset"))

	_, err := repo.GetConfig(context.Background(), businessID)
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReplaceWeeklyAvailability_InTransaction(t *testing.T) {
	repo, db, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM business_availability WHERE business_id = $1")).
		WithArgs(businessID).
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO business_availability (business_id,day_index,start_time,end_time,enabled) VALUES ($1,$2,$3,$4,$5),($6,$7,$8,$9,$10)")).
		WithArgs(businessID, 0, "09:00", "17:00", true, businessID, 1, nil, nil, false).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	days := []domain.DayAvailability{
		{DayIndex: 0, StartTime: "09:00", EndTime: "17:00", Enabled: true},
		{DayIndex: 1, Enabled: false},
	}

	err := txmanager.NewTransactionManager(db).Do(context.Background(), func(ctx context.Context) error {
		return repo.ReplaceWeeklyAvailability(ctx, businessID, days)
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReplaceWeeklyAvailability_Empty(t *testing.T) {
	repo, _, mock := newMockRepository(t)

	mock.ExpectExec("DELETE FROM business_availability").
		WithArgs(businessID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.ReplaceWeeklyAvailability(context.Background(), businessID, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddBlockedDate(t *testing.T) {
	insert := regexp.QuoteMeta("INSERT INTO business_blocked_dates (business_id,blocked_date) VALUES ($1,$2)")

	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "ok"},
		{name: "duplicate", execErr: &pq.Error{Code: "23505"}, wantErr: ErrBlockedDateExists},
		{name: "db error", execErr: errors.New("timeout"), wantErr: ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newMockRepository(t)

			exp := mock.ExpectExec(insert).WithArgs(businessID, "2025-12-25")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.AddBlockedDate(context.Background(), businessID, "2025-12-25")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_RemoveBlockedDate(t *testing.T) {
	remove := regexp.QuoteMeta("DELETE FROM business_blocked_dates WHERE blocked_date = $1 AND business_id = $2")

	t.Run("removed", func(t *testing.T) {
		repo, _, mock := newMockRepository(t)
		mock.ExpectExec(remove).WithArgs("2025-12-25", businessID).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.RemoveBlockedDate(context.Background(), businessID, "2025-12-25"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not blocked", func(t *testing.T) {
		repo, _, mock := newMockRepository(t)
		mock.ExpectExec(remove).WithArgs("2025-12-26", businessID).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.RemoveBlockedDate(context.Background(), businessID, "2025-12-26"), ErrBlockedDateNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
