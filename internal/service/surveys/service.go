package surveys

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/surveys/models"
	"github.com/m04kA/SMC-SalonService/pkg/phone"
)

// Service сервис анкет: консультации по стилю и опросы о качестве
type Service struct {
	surveyRepo SurveyRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса анкет
func NewService(surveyRepo SurveyRepository, logger Logger) *Service {
	return &Service{
		surveyRepo: surveyRepo,
		logger:     logger,
	}
}

// CreateConsultation сохраняет заявку на консультацию по стилю
// Телефон нормализуется перед сохранением
func (s *Service) CreateConsultation(ctx context.Context, req *models.CreateConsultationRequest) (*models.ConsultationResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	consultation := &domain.StyleConsultation{
		Name:        name,
		Phone:       phone.Normalize(req.Phone),
		Preferences: strings.TrimSpace(req.Preferences),
	}

	created, err := s.surveyRepo.CreateConsultation(ctx, consultation)
	if err != nil {
		s.logger.Error("CreateConsultation: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateConsultation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateConsultation: created consultation id=%d", created.ID)
	return &models.ConsultationResponse{
		ID:        created.ID,
		Name:      created.Name,
		CreatedAt: created.CreatedAt.Format("2006-01-02 15:04"),
	}, nil
}

// CreateFeedback сохраняет анонимный опрос о качестве обслуживания
// Все пять оценок обязательны и должны быть в диапазоне 1-5
func (s *Service) CreateFeedback(ctx context.Context, req *models.CreateFeedbackRequest) (*models.FeedbackResponse, error) {
	if err := s.validateFeedback(req); err != nil {
		s.logger.Warn("CreateFeedback: validation failed: %v", err)
		return nil, err
	}

	feedback := &domain.ServiceFeedback{
		MasterChoice:       req.MasterChoice,
		ServiceType:        req.ServiceType,
		CleanlinessRating:  req.CleanlinessRating,
		StaffFriendliness:  req.StaffFriendliness,
		MasterSkill:        req.MasterSkill,
		ServiceSpeed:       req.ServiceSpeed,
		PriceQuality:       req.PriceQuality,
		WaitingTimeMinutes: req.WaitingTimeMinutes,
		WouldRecommend:     req.WouldRecommend,
		Comment:            strings.TrimSpace(req.Comment),
	}

	created, err := s.surveyRepo.CreateFeedback(ctx, feedback)
	if err != nil {
		s.logger.Error("CreateFeedback: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateFeedback - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateFeedback: created feedback id=%d", created.ID)
	return &models.FeedbackResponse{
		ID:        created.ID,
		CreatedAt: created.CreatedAt.Format("2006-01-02 15:04"),
	}, nil
}

// FeedbackStats считает агрегированную статистику по опросам
func (s *Service) FeedbackStats(ctx context.Context) (*models.FeedbackStatsResponse, error) {
	stats, err := s.surveyRepo.FeedbackStats(ctx)
	if err != nil {
		s.logger.Error("FeedbackStats: repository error: %v", err)
		return nil, fmt.Errorf("%w: FeedbackStats - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("FeedbackStats: calculated stats over %d feedbacks", stats.TotalFeedbacks)
	return models.FromDomainStats(stats), nil
}

// validateFeedback проверяет обязательные оценки и необязательные коды
func (s *Service) validateFeedback(req *models.CreateFeedbackRequest) error {
	ratings := map[string]int{
		"cleanlinessRating": req.CleanlinessRating,
		"staffFriendliness": req.StaffFriendliness,
		"masterSkill":       req.MasterSkill,
		"serviceSpeed":      req.ServiceSpeed,
		"priceQuality":      req.PriceQuality,
	}

	for field, value := range ratings {
		if value < domain.MinStars || value > domain.MaxStars {
			return fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidInput, field, domain.MinStars, domain.MaxStars)
		}
	}

	if req.WaitingTimeMinutes < 0 {
		return fmt.Errorf("%w: waitingTimeMinutes must not be negative", ErrInvalidInput)
	}

	if req.MasterChoice != "" && !domain.IsKnownMaster(req.MasterChoice) {
		return fmt.Errorf("%w: unknown master code %q", ErrInvalidInput, req.MasterChoice)
	}
	if req.ServiceType != "" && !domain.IsKnownService(req.ServiceType) {
		return fmt.Errorf("%w: unknown service code %q", ErrInvalidInput, req.ServiceType)
	}

	return nil
}
