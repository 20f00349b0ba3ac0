package reviewtoken

import "errors"

var (
	// ErrTokenNotFound возвращается, когда токен не найден
	ErrTokenNotFound = errors.New("reviewtoken.repository: token not found")

	// ErrTokenAlreadyUsed возвращается при попытке повторно погасить токен
	ErrTokenAlreadyUsed = errors.New("reviewtoken.repository: token already used")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reviewtoken.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reviewtoken.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reviewtoken.repository: failed to scan row")
)
