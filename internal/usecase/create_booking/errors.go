package create_booking

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	// Детали накапливаются в ValidationErrors
	ErrValidation = errors.New("create_booking: validation failed")

	// ErrSlotTaken возвращается, когда выбранный слот уже занят
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
