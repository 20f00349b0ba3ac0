package surveys

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/surveys/models"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeSurveyRepo struct {
	consultations []*domain.StyleConsultation
	feedbacks     []*domain.ServiceFeedback
	stats         *domain.FeedbackStats
}

func (r *fakeSurveyRepo) CreateConsultation(_ context.Context, consultation *domain.StyleConsultation) (*domain.StyleConsultation, error) {
	consultation.ID = int64(len(r.consultations) + 1)
	consultation.CreatedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	r.consultations = append(r.consultations, consultation)
	return consultation, nil
}

func (r *fakeSurveyRepo) CreateFeedback(_ context.Context, feedback *domain.ServiceFeedback) (*domain.ServiceFeedback, error) {
	feedback.ID = int64(len(r.feedbacks) + 1)
	feedback.CreatedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	r.feedbacks = append(r.feedbacks, feedback)
	return feedback, nil
}

func (r *fakeSurveyRepo) FeedbackStats(context.Context) (*domain.FeedbackStats, error) {
	return r.stats, nil
}

func validFeedback() *models.CreateFeedbackRequest {
	return &models.CreateFeedbackRequest{
		MasterChoice:       domain.MasterAlexander,
		ServiceType:        "male_haircut",
		CleanlinessRating:  5,
		StaffFriendliness:  5,
		MasterSkill:        5,
		ServiceSpeed:       4,
		PriceQuality:       4,
		WaitingTimeMinutes: 10,
		WouldRecommend:     true,
		Comment:            "Все понравилось",
	}
}

func TestCreateConsultation(t *testing.T) {
	repo := &fakeSurveyRepo{}
	svc := NewService(repo, fakeLogger{})

	resp, err := svc.CreateConsultation(context.Background(), &models.CreateConsultationRequest{
		Name:        "  Иван  ",
		Phone:       "8 (999) 123-45-67",
		Preferences: "короткая стрижка",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Иван", resp.Name)
	require.Len(t, repo.consultations, 1)
	assert.Equal(t, "+79991234567", repo.consultations[0].Phone)
}

func TestCreateConsultation_RequiredFields(t *testing.T) {
	svc := NewService(&fakeSurveyRepo{}, fakeLogger{})

	_, err := svc.CreateConsultation(context.Background(), &models.CreateConsultationRequest{
		Name:  "",
		Phone: "+79991234567",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateConsultation(context.Background(), &models.CreateConsultationRequest{
		Name:  "Иван",
		Phone: "   ",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateFeedback(t *testing.T) {
	repo := &fakeSurveyRepo{}
	svc := NewService(repo, fakeLogger{})

	resp, err := svc.CreateFeedback(context.Background(), validFeedback())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	require.Len(t, repo.feedbacks, 1)
	assert.True(t, repo.feedbacks[0].WouldRecommend)
}

func TestCreateFeedback_Validation(t *testing.T) {
	svc := NewService(&fakeSurveyRepo{}, fakeLogger{})

	outOfRange := validFeedback()
	outOfRange.MasterSkill = 6
	_, err := svc.CreateFeedback(context.Background(), outOfRange)
	assert.ErrorIs(t, err, ErrInvalidInput)

	missing := validFeedback()
	missing.CleanlinessRating = 0
	_, err = svc.CreateFeedback(context.Background(), missing)
	assert.ErrorIs(t, err, ErrInvalidInput)

	negativeWaiting := validFeedback()
	negativeWaiting.WaitingTimeMinutes = -1
	_, err = svc.CreateFeedback(context.Background(), negativeWaiting)
	assert.ErrorIs(t, err, ErrInvalidInput)

	unknownMaster := validFeedback()
	unknownMaster.MasterChoice = "unknown"
	_, err = svc.CreateFeedback(context.Background(), unknownMaster)
	assert.ErrorIs(t, err, ErrInvalidInput)

	unknownService := validFeedback()
	unknownService.ServiceType = "unknown"
	_, err = svc.CreateFeedback(context.Background(), unknownService)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateFeedback_OptionalCodesMayBeEmpty(t *testing.T) {
	svc := NewService(&fakeSurveyRepo{}, fakeLogger{})

	req := validFeedback()
	req.MasterChoice = ""
	req.ServiceType = ""

	_, err := svc.CreateFeedback(context.Background(), req)
	assert.NoError(t, err)
}

func TestFeedbackStats(t *testing.T) {
	repo := &fakeSurveyRepo{stats: &domain.FeedbackStats{
		TotalFeedbacks:     4,
		AvgCleanliness:     4.5,
		AvgStaff:           4.0,
		AvgMaster:          5.0,
		AvgSpeed:           4.0,
		AvgPrice:           3.5,
		OverallAverage:     4.2,
		AvgWaitingTime:     12.5,
		RecommendationRate: 75.0,
		MastersDistribution: []domain.DistributionItem{
			{Code: domain.MasterAlexander, Count: 3},
		},
		ServicesDistribution: []domain.DistributionItem{
			{Code: "male_haircut", Count: 2},
		},
	}}
	svc := NewService(repo, fakeLogger{})

	resp, err := svc.FeedbackStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, resp.TotalFeedbacks)
	assert.Equal(t, 4.2, resp.OverallAverage)
	assert.Equal(t, 75.0, resp.RecommendationRate)

	// Коды распределений дополняются отображаемыми именами
	require.Len(t, resp.MastersDistribution, 1)
	assert.Equal(t, "Александр Петров", resp.MastersDistribution[0].Name)
	require.Len(t, resp.ServicesDistribution, 1)
	assert.Equal(t, "Мужская стрижка", resp.ServicesDistribution[0].Name)
}
