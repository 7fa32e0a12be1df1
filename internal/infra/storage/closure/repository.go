package closure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
	"github.com/dmkaz/RSC-BookingService/pkg/dbmetrics"
	"github.com/dmkaz/RSC-BookingService/pkg/psqlbuilder"
	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникальности
const pgUniqueViolation = "23505"

// DBExecutor интерфейс исполнителя SQL запросов
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с закрытиями записи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория закрытий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует закрытие
// Уникальность пары (date, time-or-null) обеспечивается индексом:
// повторная регистрация возвращает ErrDuplicateClosure
func (r *Repository) Create(ctx context.Context, c *domain.Closure) (*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("closures").
		Columns("date", "time").
		Values(c.Date.Format(domain.DateFormat), c.Time).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateClosure
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	return c, nil
}

// Delete удаляет закрытие по точной паре (date, time-or-null)
func (r *Repository) Delete(ctx context.Context, date time.Time, slot *types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteBuilder := psqlbuilder.Delete("closures").
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)})

	if slot == nil {
		deleteBuilder = deleteBuilder.Where("time IS NULL")
	} else {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"time": *slot})
	}

	query, args, err := deleteBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClosureNotFound
	}

	return nil
}

// List получает все закрытия в порядке регистрации
func (r *Repository) List(ctx context.Context) ([]*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "date", "time", "created_at").
		From("closures").
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanClosures(rows)
}

// GetByDate получает все закрытия, затрагивающие указанную дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "date", "time", "created_at").
		From("closures").
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanClosures(rows)
}

// IsClosed возвращает true, если дата закрыта целиком или закрыт
// конкретный слот на эту дату
func (r *Repository) IsClosed(ctx context.Context, date time.Time, slot types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("closures").
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		Where(squirrel.Or{
			squirrel.Expr("time IS NULL"),
			squirrel.Eq{"time": slot},
		}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsClosed - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: IsClosed - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// scanClosures сканирует результаты запроса в слайс закрытий
func scanClosures(rows *sql.Rows) ([]*domain.Closure, error) {
	closures := make([]*domain.Closure, 0)

	for rows.Next() {
		var c domain.Closure
		var slot sql.NullString
		var createdAt sql.NullTime

		if err := rows.Scan(&c.ID, &c.Date, &slot, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scanClosures - scan row: %v", ErrScanRow, err)
		}

		if slot.Valid {
			ts := types.TimeString(slot.String)
			c.Time = &ts
		}
		c.CreatedAt = createdAt.Time

		closures = append(closures, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanClosures - rows error: %v", ErrScanRow, err)
	}

	return closures, nil
}
