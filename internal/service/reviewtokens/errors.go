package reviewtokens

import "errors"

var (
	// ErrTokenNotFound возвращается, когда токен не существует
	ErrTokenNotFound = errors.New("review token not found")

	// ErrTokenExpired возвращается, когда срок действия токена истек
	ErrTokenExpired = errors.New("review token expired")

	// ErrTokenUsed возвращается, когда токен уже был использован
	ErrTokenUsed = errors.New("review token already used")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reviewtokens service: internal error")
)
