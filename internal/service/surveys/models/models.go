package models

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// CreateConsultationRequest заявка на консультацию по стилю
type CreateConsultationRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Preferences string `json:"preferences"`
}

// ConsultationResponse созданная заявка на консультацию
type ConsultationResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// CreateFeedbackRequest анонимный опрос о качестве обслуживания
type CreateFeedbackRequest struct {
	MasterChoice       string `json:"masterChoice,omitempty"`
	ServiceType        string `json:"serviceType,omitempty"`
	CleanlinessRating  int    `json:"cleanlinessRating"`
	StaffFriendliness  int    `json:"staffFriendliness"`
	MasterSkill        int    `json:"masterSkill"`
	ServiceSpeed       int    `json:"serviceSpeed"`
	PriceQuality       int    `json:"priceQuality"`
	WaitingTimeMinutes int    `json:"waitingTimeMinutes"`
	WouldRecommend     bool   `json:"wouldRecommend"`
	Comment            string `json:"comment,omitempty"`
}

// FeedbackResponse созданный опрос
type FeedbackResponse struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// DistributionItemResponse элемент распределения ответов
type DistributionItemResponse struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FeedbackStatsResponse агрегированная статистика по опросам
type FeedbackStatsResponse struct {
	TotalFeedbacks       int                        `json:"totalFeedbacks"`
	AvgCleanliness       float64                    `json:"avgCleanliness"`
	AvgStaff             float64                    `json:"avgStaff"`
	AvgMaster            float64                    `json:"avgMaster"`
	AvgSpeed             float64                    `json:"avgSpeed"`
	AvgPrice             float64                    `json:"avgPrice"`
	OverallAverage       float64                    `json:"overallAverage"`
	AvgWaitingTime       float64                    `json:"avgWaitingTime"`
	RecommendationRate   float64                    `json:"recommendationRate"`
	MastersDistribution  []DistributionItemResponse `json:"mastersDistribution"`
	ServicesDistribution []DistributionItemResponse `json:"servicesDistribution"`
}

// FromDomainStats конвертирует доменную статистику в response
func FromDomainStats(stats *domain.FeedbackStats) *FeedbackStatsResponse {
	return &FeedbackStatsResponse{
		TotalFeedbacks:       stats.TotalFeedbacks,
		AvgCleanliness:       stats.AvgCleanliness,
		AvgStaff:             stats.AvgStaff,
		AvgMaster:            stats.AvgMaster,
		AvgSpeed:             stats.AvgSpeed,
		AvgPrice:             stats.AvgPrice,
		OverallAverage:       stats.OverallAverage,
		AvgWaitingTime:       stats.AvgWaitingTime,
		RecommendationRate:   stats.RecommendationRate,
		MastersDistribution:  fromDomainDistribution(stats.MastersDistribution, domain.MasterNames),
		ServicesDistribution: fromDomainDistribution(stats.ServicesDistribution, domain.ServiceNames),
	}
}

func fromDomainDistribution(items []domain.DistributionItem, names map[string]string) []DistributionItemResponse {
	result := make([]DistributionItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, DistributionItemResponse{
			Code:  item.Code,
			Name:  names[item.Code],
			Count: item.Count,
		})
	}
	return result
}
