package submit_review

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("submit_review: validation failed")

	// ErrTokenNotFound возвращается, когда одноразовая ссылка не существует
	ErrTokenNotFound = errors.New("submit_review: token not found")

	// ErrTokenExpired возвращается, когда срок действия ссылки истек
	ErrTokenExpired = errors.New("submit_review: token expired")

	// ErrTokenUsed возвращается, когда ссылка уже была использована
	ErrTokenUsed = errors.New("submit_review: token already used")

	// ErrBookingNotConfirmed возвращается, когда клиент без ссылки
	// не найден в истории записей мастера
	ErrBookingNotConfirmed = errors.New("submit_review: booking not confirmed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_review: internal error")
)
