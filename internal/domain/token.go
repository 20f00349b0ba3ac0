package domain

import "time"

// ReviewToken одноразовый токен для отправки отзыва по ссылке
// Выдаётся при создании записи и действует ограниченное время.
// Токен валиден, только если не истёк и ещё не использован; после первого
// использования становится недействительным навсегда
type ReviewToken struct {
	Token      string
	Phone      string // Нормализованный номер (+7XXXXXXXXXX)
	ClientName string
	MasterCode string
	BookingID  int64
	CreatedAt  time.Time
	ExpiresAt  time.Time
	Used       bool
	UsedAt     *time.Time
}

// IsExpired возвращает true, если срок действия токена истёк
func (t *ReviewToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
