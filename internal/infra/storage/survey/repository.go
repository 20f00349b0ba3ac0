package survey

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

// Repository репозиторий анкет: консультации по стилю и опросы о качестве
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория анкет
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateConsultation сохраняет заявку на консультацию по стилю
func (r *Repository) CreateConsultation(ctx context.Context, consultation *domain.StyleConsultation) (*domain.StyleConsultation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("style_consultations").
		Columns(
			"name",
			"phone",
			"preferences",
		).
		Values(
			consultation.Name,
			consultation.Phone,
			consultation.Preferences,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateConsultation - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&consultation.ID,
		&consultation.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateConsultation - execute insert: %v", ErrExecQuery, err)
	}

	return consultation, nil
}

// CreateFeedback сохраняет анонимный опрос о качестве обслуживания
func (r *Repository) CreateFeedback(ctx context.Context, feedback *domain.ServiceFeedback) (*domain.ServiceFeedback, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("service_feedbacks").
		Columns(
			"master_choice",
			"service_type",
			"cleanliness_rating",
			"staff_friendliness",
			"master_skill",
			"service_speed",
			"price_quality",
			"waiting_time_minutes",
			"would_recommend",
			"comment",
		).
		Values(
			feedback.MasterChoice,
			feedback.ServiceType,
			feedback.CleanlinessRating,
			feedback.StaffFriendliness,
			feedback.MasterSkill,
			feedback.ServiceSpeed,
			feedback.PriceQuality,
			feedback.WaitingTimeMinutes,
			feedback.WouldRecommend,
			feedback.Comment,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateFeedback - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&feedback.ID,
		&feedback.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateFeedback - execute insert: %v", ErrExecQuery, err)
	}

	return feedback, nil
}

// FeedbackStats считает агрегированную статистику по опросам о качестве
// Средние оценки, средняя оценка по всем критериям, среднее время ожидания
// и доля рекомендующих. Распределения по мастерам и услугам считаются
// отдельными запросами
func (r *Repository) FeedbackStats(ctx context.Context) (*domain.FeedbackStats, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COALESCE(AVG(cleanliness_rating), 0)",
		"COALESCE(AVG(staff_friendliness), 0)",
		"COALESCE(AVG(master_skill), 0)",
		"COALESCE(AVG(service_speed), 0)",
		"COALESCE(AVG(price_quality), 0)",
		"COALESCE(AVG(waiting_time_minutes), 0)",
		"COALESCE(AVG(CASE WHEN would_recommend THEN 100.0 ELSE 0.0 END), 0)",
	).
		From("service_feedbacks").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FeedbackStats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.FeedbackStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalFeedbacks,
		&stats.AvgCleanliness,
		&stats.AvgStaff,
		&stats.AvgMaster,
		&stats.AvgSpeed,
		&stats.AvgPrice,
		&stats.AvgWaitingTime,
		&stats.RecommendationRate,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: FeedbackStats - scan stats: %v", ErrScanRow, err)
	}

	if stats.TotalFeedbacks > 0 {
		stats.OverallAverage = (stats.AvgCleanliness + stats.AvgStaff + stats.AvgMaster + stats.AvgSpeed + stats.AvgPrice) / 5
	}

	mastersDist, err := r.distribution(ctx, "master_choice")
	if err != nil {
		return nil, err
	}
	stats.MastersDistribution = mastersDist

	servicesDist, err := r.distribution(ctx, "service_type")
	if err != nil {
		return nil, err
	}
	stats.ServicesDistribution = servicesDist

	return &stats, nil
}

// distribution считает распределение непустых ответов по значению колонки
func (r *Repository) distribution(ctx context.Context, column string) ([]domain.DistributionItem, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		column,
		"COUNT(*)",
	).
		From("service_feedbacks").
		Where(fmt.Sprintf("%s <> ''", column)).
		GroupBy(column).
		OrderBy("COUNT(*) DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: distribution - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: distribution - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.DistributionItem, 0)
	for rows.Next() {
		var item domain.DistributionItem
		if err := rows.Scan(&item.Code, &item.Count); err != nil {
			return nil, fmt.Errorf("%w: distribution - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: distribution - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}
