package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const uniqueViolation = "23505"

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись клиента
// Если в контексте передана активная транзакция, использует её.
// Нарушение уникального индекса (master_code, date, time) транслируется
// в ErrSlotTaken
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"client_name",
			"phone",
			"master_code",
			"service_code",
			"date",
			"time",
		).
		Values(
			booking.ClientName,
			booking.Phone,
			booking.MasterCode,
			booking.ServiceCode,
			booking.Date,
			booking.Time,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// ExistsAt проверяет, занят ли слот (master_code, date, time)
// Внутри транзакции блокирует найденную строку (FOR UPDATE), чтобы параллельное
// создание записи на тот же слот дождалось завершения текущей транзакции
func (r *Repository) ExistsAt(ctx context.Context, masterCode string, date time.Time, slot types.TimeString) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{
			"master_code": masterCode,
			"date":        date,
			"time":        slot,
		}).
		Limit(1)

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAt - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAt - scan id: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetWithFilter получает записи мастера с гибкой фильтрацией
// Поддерживает фильтрацию по конкретной дате и по периоду (FromDate/ToDate),
// ограничение количества и сортировку от новых к старым для истории
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.MasterBookingsFilter) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"client_name",
		"phone",
		"master_code",
		"service_code",
		"date",
		"time",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"master_code": filter.MasterCode})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *filter.Date})
	}
	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"date": *filter.ToDate})
	}

	if filter.NewestFirst {
		selectBuilder = selectBuilder.OrderBy("date DESC, time DESC")
	} else {
		selectBuilder = selectBuilder.OrderBy("date ASC, time ASC")
	}

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByMaster получает все записи мастера за всю историю
// Используется проверкой отзывов для сверки телефона и имени клиента
func (r *Repository) GetByMaster(ctx context.Context, masterCode string) ([]*domain.Booking, error) {
	return r.GetWithFilter(ctx, domain.MasterBookingsFilter{MasterCode: masterCode})
}

// CountByMaster подсчитывает записи мастера: предстоящие (от today включительно),
// прошедшие и общее количество. Используется в админ-панели
func (r *Repository) CountByMaster(ctx context.Context, masterCode string, today time.Time) (upcoming, past, total int64, err error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE date >= ?)", today)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE date < ?)", today)).
		Column("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"master_code": masterCode}).
		ToSql()

	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: CountByMaster - build select query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&upcoming, &past, &total)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: CountByMaster - scan counts: %v", ErrScanRow, err)
	}

	return upcoming, past, total, nil
}

// scanBookings сканирует результаты запроса в слайс записей
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ClientName,
			&booking.Phone,
			&booking.MasterCode,
			&booking.ServiceCode,
			&booking.Date,
			&booking.Time,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
