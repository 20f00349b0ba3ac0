package review

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

// Repository репозиторий отзывов клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый отзыв
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns(
			"master_code",
			"client_name",
			"phone",
			"stars",
			"text",
			"is_published",
			"is_verified",
		).
		Values(
			review.MasterCode,
			review.ClientName,
			review.Phone,
			review.Stars,
			review.Text,
			review.IsPublished,
			review.IsVerified,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&review.ID,
		&review.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return review, nil
}

// ListPublished получает опубликованные отзывы от новых к старым
// При limit = 0 возвращает все
func (r *Repository) ListPublished(ctx context.Context, limit uint64) ([]*domain.Review, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"master_code",
		"client_name",
		"phone",
		"stars",
		"text",
		"created_at",
		"is_published",
		"is_verified",
	).
		From("reviews").
		Where(squirrel.Eq{"is_published": true}).
		OrderBy("created_at DESC")

	if limit > 0 {
		selectBuilder = selectBuilder.Limit(limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPublished - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPublished - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReviews(rows)
}

// ListByMaster получает опубликованные отзывы конкретного мастера
func (r *Repository) ListByMaster(ctx context.Context, masterCode string) ([]*domain.Review, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"master_code",
		"client_name",
		"phone",
		"stars",
		"text",
		"created_at",
		"is_published",
		"is_verified",
	).
		From("reviews").
		Where(squirrel.Eq{
			"master_code":  masterCode,
			"is_published": true,
		}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByMaster - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByMaster - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReviews(rows)
}

// Ratings считает средний балл и количество отзывов по мастерам
// Учитываются все отзывы, включая неопубликованные
func (r *Repository) Ratings(ctx context.Context) ([]*domain.MasterRating, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"master_code",
		"AVG(stars)",
		"COUNT(*)",
	).
		From("reviews").
		GroupBy("master_code").
		OrderBy("master_code").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Ratings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Ratings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ratings := make([]*domain.MasterRating, 0)
	for rows.Next() {
		var rating domain.MasterRating
		if err := rows.Scan(&rating.MasterCode, &rating.AverageStars, &rating.ReviewsCount); err != nil {
			return nil, fmt.Errorf("%w: Ratings - scan row: %v", ErrScanRow, err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Ratings - rows error: %v", ErrScanRow, err)
	}

	return ratings, nil
}

// scanReviews сканирует результаты запроса в слайс отзывов
func (r *Repository) scanReviews(rows *sql.Rows) ([]*domain.Review, error) {
	reviews := make([]*domain.Review, 0)

	for rows.Next() {
		var review domain.Review

		err := rows.Scan(
			&review.ID,
			&review.MasterCode,
			&review.ClientName,
			&review.Phone,
			&review.Stars,
			&review.Text,
			&review.CreatedAt,
			&review.IsPublished,
			&review.IsVerified,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReviews - scan row: %v", ErrScanRow, err)
		}

		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReviews - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}
