package models

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ReviewResponse опубликованный отзыв
type ReviewResponse struct {
	ID         int64  `json:"id"`
	MasterCode string `json:"masterCode"`
	MasterName string `json:"masterName"`
	ClientName string `json:"clientName"`
	Stars      int    `json:"stars"`
	Text       string `json:"text"`
	CreatedAt  string `json:"createdAt"`
	IsVerified bool   `json:"isVerified"`
}

// ReviewListResponse список опубликованных отзывов
type ReviewListResponse struct {
	Reviews []*ReviewResponse `json:"reviews"`
	Total   int               `json:"total"`
}

// MasterRatingResponse рейтинг мастера по всем его отзывам
type MasterRatingResponse struct {
	MasterCode   string  `json:"masterCode"`
	MasterName   string  `json:"masterName"`
	AverageStars float64 `json:"averageStars"`
	ReviewsCount int64   `json:"reviewsCount"`
}

// MasterRatingListResponse рейтинги всех мастеров
type MasterRatingListResponse struct {
	Ratings []*MasterRatingResponse `json:"ratings"`
}

// FromDomainReview конвертирует доменный отзыв в response
// Телефон клиента наружу не отдаем
func FromDomainReview(review *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         review.ID,
		MasterCode: review.MasterCode,
		MasterName: domain.MasterNames[review.MasterCode],
		ClientName: review.ClientName,
		Stars:      review.Stars,
		Text:       review.Text,
		CreatedAt:  review.CreatedAt.Format("2006-01-02 15:04"),
		IsVerified: review.IsVerified,
	}
}

// FromDomainReviewList конвертирует список отзывов в response
func FromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	result := make([]*ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, FromDomainReview(review))
	}
	return &ReviewListResponse{
		Reviews: result,
		Total:   len(result),
	}
}

// FromDomainRatings конвертирует рейтинги мастеров в response
func FromDomainRatings(ratings []*domain.MasterRating) *MasterRatingListResponse {
	result := make([]*MasterRatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		result = append(result, &MasterRatingResponse{
			MasterCode:   rating.MasterCode,
			MasterName:   domain.MasterNames[rating.MasterCode],
			AverageStars: rating.AverageStars,
			ReviewsCount: rating.ReviewsCount,
		})
	}
	return &MasterRatingListResponse{Ratings: result}
}
