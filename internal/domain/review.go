package domain

import "time"

// Review отзыв клиента о мастере
// Проверенные отзывы приходят либо по одноразовому токену (публикуются сразу),
// либо через ручную сверку телефона и имени с историей записей
// (проверены, но ждут модерации)
type Review struct {
	ID          int64
	MasterCode  string
	ClientName  string
	Phone       string
	Stars       int // Оценка 1-5
	Text        string
	CreatedAt   time.Time
	IsPublished bool
	IsVerified  bool
}

// MasterRating агрегированный рейтинг мастера
// Средняя оценка считается по ВСЕМ отзывам, включая неопубликованные
type MasterRating struct {
	MasterCode   string
	AverageStars float64
	ReviewsCount int64
}
