package phone

import "strings"

// matchDigits количество последних цифр, по которым сравниваются номера
// Клиенты вводят номер то с кодом страны, то без, поэтому для поиска записи
// сравниваются ровно 10 последних цифр. Меньшее количество совпадающих цифр
// совпадением не считается
const matchDigits = 10

// Normalize приводит номер телефона к каноничному виду +7XXXXXXXXXX
// Правила:
//   - удаляются все символы, кроме цифр и ведущего '+'
//   - "8XXXXXXXXXX" -> "+7XXXXXXXXXX"
//   - ровно 10 цифр -> добавляется префикс "+7"
//   - "7XXXXXXXXXX" (11 цифр без '+') -> добавляется '+'
func Normalize(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	switch {
	case strings.HasPrefix(cleaned, "8"):
		cleaned = "+7" + cleaned[1:]
	case len(cleaned) == matchDigits:
		cleaned = "+7" + cleaned
	case strings.HasPrefix(cleaned, "7") && len(cleaned) == 11:
		cleaned = "+" + cleaned
	}

	return cleaned
}

// Digits возвращает только цифры номера
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Match сравнивает два номера по последним 10 цифрам
// Номера короче 10 цифр не совпадают ни с чем: частичное совпадение хвоста
// означало бы ложные срабатывания на номерах с разными кодами стран
func Match(a, b string) bool {
	da := Digits(a)
	db := Digits(b)
	if len(da) < matchDigits || len(db) < matchDigits {
		return false
	}
	return da[len(da)-matchDigits:] == db[len(db)-matchDigits:]
}
