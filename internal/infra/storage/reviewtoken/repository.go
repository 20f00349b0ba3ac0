package reviewtoken

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

// Repository репозиторий одноразовых токенов для отзывов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория токенов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый токен
func (r *Repository) Create(ctx context.Context, token *domain.ReviewToken) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("review_tokens").
		Columns(
			"token",
			"phone",
			"client_name",
			"master_code",
			"booking_id",
			"created_at",
			"expires_at",
			"used",
		).
		Values(
			token.Token,
			token.Phone,
			token.ClientName,
			token.MasterCode,
			token.BookingID,
			token.CreatedAt,
			token.ExpiresAt,
			false,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByToken получает токен по значению
func (r *Repository) GetByToken(ctx context.Context, tokenValue string) (*domain.ReviewToken, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"token",
		"phone",
		"client_name",
		"master_code",
		"booking_id",
		"created_at",
		"expires_at",
		"used",
		"used_at",
	).
		From("review_tokens").
		Where(squirrel.Eq{"token": tokenValue}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	var token domain.ReviewToken
	var usedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&token.Token,
		&token.Phone,
		&token.ClientName,
		&token.MasterCode,
		&token.BookingID,
		&token.CreatedAt,
		&token.ExpiresAt,
		&token.Used,
		&usedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan token: %v", ErrScanRow, err)
	}

	if usedAt.Valid {
		token.UsedAt = &usedAt.Time
	}

	return &token, nil
}

// MarkUsed атомарно гасит токен. Условие used = false в UPDATE гарантирует,
// что токен погасится ровно один раз даже при параллельных запросах:
// второй запрос получит ErrTokenAlreadyUsed
func (r *Repository) MarkUsed(ctx context.Context, tokenValue string, usedAt time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("review_tokens").
		Set("used", true).
		Set("used_at", usedAt).
		Where(squirrel.Eq{
			"token": tokenValue,
			"used":  false,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkUsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - rows affected: %v", ErrExecQuery, err)
	}

	if affected == 0 {
		// Либо токена нет, либо он уже погашен
		existing, getErr := r.GetByToken(ctx, tokenValue)
		if getErr != nil {
			return getErr
		}
		if existing.Used {
			return ErrTokenAlreadyUsed
		}
		return ErrTokenNotFound
	}

	return nil
}
