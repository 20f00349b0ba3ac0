package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// phonePattern допустимый формат телефона после удаления пробелов, скобок и дефисов:
// +7XXXXXXXXXX, 7XXXXXXXXXX или 8XXXXXXXXXX
var phonePattern = regexp.MustCompile(`^\+?[78]\d{10}$`)

// validateRequest валидирует входные данные запроса
// Ошибки накапливаются по полям, а не возвращаются по одной
func validateRequest(req *Request, now time.Time, schedule domain.MasterSchedule) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(req.ClientName) == "" {
		errs["clientName"] = "имя обязательно"
	}

	if strings.TrimSpace(req.Phone) == "" {
		errs["phone"] = "телефон обязателен"
	} else if !phonePattern.MatchString(cleanPhone(req.Phone)) {
		errs["phone"] = "некорректный формат телефона"
	}

	if req.MasterCode == "" {
		errs["masterCode"] = "мастер обязателен"
	} else if !domain.IsKnownMaster(req.MasterCode) {
		errs["masterCode"] = "неизвестный мастер"
	}

	if req.ServiceCode == "" {
		errs["serviceCode"] = "услуга обязательна"
	} else if !domain.IsKnownService(req.ServiceCode) {
		errs["serviceCode"] = "неизвестная услуга"
	}

	validateDate(req, now, errs)
	validateSlot(req, now, schedule, errs)

	return errs
}

// validateDate проверяет, что дата указана и не находится в прошлом
func validateDate(req *Request, now time.Time, errs ValidationErrors) {
	if req.Date.IsZero() {
		errs["date"] = "дата обязательна"
		return
	}

	if isDateInPast(req.Date, now) {
		errs["date"] = "дата не может быть в прошлом"
	}
}

// validateSlot проверяет время слота: формат, полчасовая сетка,
// попадание в график мастера и перерыв, время не в прошлом для сегодняшней даты
func validateSlot(req *Request, now time.Time, schedule domain.MasterSchedule, errs ValidationErrors) {
	if req.Time.IsZero() {
		errs["time"] = "время обязательно"
		return
	}

	if err := req.Time.Validate(); err != nil {
		errs["time"] = "некорректный формат времени"
		return
	}

	minutes, err := req.Time.Minutes()
	if err != nil {
		errs["time"] = "некорректный формат времени"
		return
	}

	if minutes%domain.SlotStepMinutes != 0 {
		errs["time"] = fmt.Sprintf("время должно быть кратно %d минутам", domain.SlotStepMinutes)
		return
	}

	fractional, err := req.Time.FractionalHours()
	if err != nil {
		errs["time"] = "некорректный формат времени"
		return
	}

	if fractional < float64(schedule.StartHour) || fractional >= float64(schedule.EndHour) {
		errs["time"] = "время вне графика работы мастера"
		return
	}

	if schedule.Break != nil && schedule.Break.Contains(fractional) {
		errs["time"] = "время попадает на перерыв мастера"
		return
	}

	// Для записи на сегодня слот должен быть в будущем
	if !req.Date.IsZero() && isSameDay(req.Date, now) {
		currentMinutes := now.Hour()*60 + now.Minute()
		if minutes <= currentMinutes {
			errs["time"] = "время уже прошло"
		}
	}
}

// cleanPhone удаляет из номера пробелы, скобки и дефисы, сохраняя ведущий '+'
func cleanPhone(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
