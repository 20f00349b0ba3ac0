package check_phone

import "context"

// Verifier интерфейс проверки клиента по истории записей
type Verifier interface {
	HadBooking(ctx context.Context, masterCode, phoneNumber, clientName string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
