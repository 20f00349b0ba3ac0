package masteraccount

import "errors"

var (
	// ErrAccountNotFound возвращается, когда аккаунт не найден
	ErrAccountNotFound = errors.New("masteraccount.repository: account not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("masteraccount.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("masteraccount.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("masteraccount.repository: failed to scan row")
)
