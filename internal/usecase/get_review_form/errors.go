package get_review_form

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_review_form: invalid input data")

	// ErrTokenNotFound возвращается, когда одноразовая ссылка не существует
	ErrTokenNotFound = errors.New("get_review_form: token not found")

	// ErrTokenExpired возвращается, когда срок действия ссылки истек
	ErrTokenExpired = errors.New("get_review_form: token expired")

	// ErrTokenUsed возвращается, когда ссылка уже была использована
	ErrTokenUsed = errors.New("get_review_form: token already used")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_review_form: internal error")
)
