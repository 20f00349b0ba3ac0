package domain

import "time"

// StyleConsultation анкета на консультацию по стилю
type StyleConsultation struct {
	ID          int64
	Name        string
	Phone       string
	Preferences string
	CreatedAt   time.Time
}

// ServiceFeedback анонимный опрос о качестве обслуживания
// Все оценки по шкале 1-5
type ServiceFeedback struct {
	ID                 int64
	MasterChoice       string // Код мастера (опционально)
	ServiceType        string // Код услуги (опционально)
	CleanlinessRating  int
	StaffFriendliness  int
	MasterSkill        int
	ServiceSpeed       int
	PriceQuality       int
	WaitingTimeMinutes int
	WouldRecommend     bool
	Comment            string
	CreatedAt          time.Time
}

// FeedbackStats агрегированная статистика по опросам о качестве
type FeedbackStats struct {
	TotalFeedbacks       int
	AvgCleanliness       float64
	AvgStaff             float64
	AvgMaster            float64
	AvgSpeed             float64
	AvgPrice             float64
	OverallAverage       float64
	AvgWaitingTime       float64
	RecommendationRate   float64 // Доля рекомендующих в процентах (0-100)
	MastersDistribution  []DistributionItem
	ServicesDistribution []DistributionItem
}

// DistributionItem элемент распределения ответов по мастерам/услугам
type DistributionItem struct {
	Code  string
	Count int
}
