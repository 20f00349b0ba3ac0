package surveys

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid survey input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("surveys service: internal error")
)
