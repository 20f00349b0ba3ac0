package reviews

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/service/reviews/models"
)

// Service сервис чтения опубликованных отзывов и рейтингов мастеров
type Service struct {
	reviewRepo ReviewRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, logger Logger) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// ListPublished получает опубликованные отзывы от новых к старым
// При limit = 0 возвращает все
func (s *Service) ListPublished(ctx context.Context, limit uint64) (*models.ReviewListResponse, error) {
	reviews, err := s.reviewRepo.ListPublished(ctx, limit)
	if err != nil {
		s.logger.Error("ListPublished: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPublished - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListPublished: fetched %d reviews", len(reviews))
	return models.FromDomainReviewList(reviews), nil
}

// MasterRatings считает рейтинги мастеров по всем отзывам,
// включая ещё не опубликованные
func (s *Service) MasterRatings(ctx context.Context) (*models.MasterRatingListResponse, error) {
	ratings, err := s.reviewRepo.Ratings(ctx)
	if err != nil {
		s.logger.Error("MasterRatings: repository error: %v", err)
		return nil, fmt.Errorf("%w: MasterRatings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MasterRatings: fetched ratings for %d masters", len(ratings))
	return models.FromDomainRatings(ratings), nil
}
