package masters

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountInactive возвращается для деактивированной учетной записи
	ErrAccountInactive = errors.New("account is inactive")

	// ErrAccessDenied возвращается при попытке открыть чужой кабинет
	ErrAccessDenied = errors.New("access denied")

	// ErrMasterNotFound возвращается для неизвестного кода мастера
	ErrMasterNotFound = errors.New("master not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("masters service: internal error")
)
