package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

const (
	weeklyTable  = "business_availability"
	blockedTable = "business_blocked_dates"

	// uniqueViolation код ошибки PostgreSQL при нарушении уникальности
	uniqueViolation = "23505"
)

// Repository репозиторий расписания и заблокированных дат бизнеса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetConfig получает недельное расписание и заблокированные даты бизнеса.
// Если ничего не сохранено, возвращает пустую конфигурацию: все дни закрыты.
func (r *Repository) GetConfig(ctx context.Context, businessID string) (*domain.BusinessAvailabilityConfig, error) {
	weekly, err := r.getWeekly(ctx, businessID)
	if err != nil {
		return nil, err
	}

	blocked, err := r.getBlockedDates(ctx, businessID)
	if err != nil {
		return nil, err
	}

	return &domain.BusinessAvailabilityConfig{
		WeeklyAvailability: weekly,
		BlockedDates:       blocked,
	}, nil
}

func (r *Repository) getWeekly(ctx context.Context, businessID string) ([]domain.DayAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"day_index",
		"start_time",
		"end_time",
		"enabled",
	).
		From(weeklyTable).
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("day_index ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - build weekly query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - execute weekly query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]domain.DayAvailability, 0, domain.DaysPerWeek)

	for rows.Next() {
		var day domain.DayAvailability
		if err := rows.Scan(&day.DayIndex, &day.StartTime, &day.EndTime, &day.Enabled); err != nil {
			return nil, fmt.Errorf("%w: GetConfig - scan weekly row: %v", ErrScanRow, err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetConfig - weekly rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

func (r *Repository) getBlockedDates(ctx context.Context, businessID string) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("blocked_date").
		From(blockedTable).
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("blocked_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - build blocked dates query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - execute blocked dates query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]string, 0)

	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: GetConfig - scan blocked date: %v", ErrScanRow, err)
		}
		// DATE приходит как полночь UTC
		dates = append(dates, date.UTC().Format(domain.DateFormat))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetConfig - blocked dates rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// ReplaceWeeklyAvailability заменяет недельное расписание бизнеса целиком.
// Должен вызываться внутри транзакции (txmanager.Do), чтобы удаление и вставка были атомарны.
func (r *Repository) ReplaceWeeklyAvailability(ctx context.Context, businessID string, days []domain.DayAvailability) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// 1. Удаляем текущее расписание
	query, args, err := psqlbuilder.Delete(weeklyTable).
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyAvailability - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyAvailability - execute delete: %v", ErrExecQuery, err)
	}

	if len(days) == 0 {
		return nil
	}

	// 2. Вставляем новое расписание одним запросом
	insertBuilder := psqlbuilder.Insert(weeklyTable).
		Columns("business_id", "day_index", "start_time", "end_time", "enabled")

	for _, day := range days {
		insertBuilder = insertBuilder.Values(businessID, day.DayIndex, day.StartTime, day.EndTime, day.Enabled)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyAvailability - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyAvailability - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// AddBlockedDate блокирует дату (формат YYYY-MM-DD)
func (r *Repository) AddBlockedDate(ctx context.Context, businessID string, date string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(blockedTable).
		Columns("business_id", "blocked_date").
		Values(businessID, date).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddBlockedDate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrBlockedDateExists
		}
		return fmt.Errorf("%w: AddBlockedDate - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// RemoveBlockedDate снимает блокировку с даты
func (r *Repository) RemoveBlockedDate(ctx context.Context, businessID string, date string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(blockedTable).
		Where(squirrel.Eq{"business_id": businessID, "blocked_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedDateNotFound
	}

	return nil
}
