package submit_review

import (
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Ошибки накапливаются по полям. Для запроса с токеном мастер и телефон
// берутся из токена, поэтому не проверяются
func validateRequest(req *Request) ValidationErrors {
	errs := make(ValidationErrors)

	withToken := req.Token != ""

	if !withToken {
		if req.MasterCode == "" {
			errs["masterCode"] = "мастер обязателен"
		} else if !domain.IsKnownMaster(req.MasterCode) {
			errs["masterCode"] = "неизвестный мастер"
		}

		if strings.TrimSpace(req.Phone) == "" {
			errs["phone"] = "телефон обязателен"
		}
	}

	if strings.TrimSpace(req.ClientName) == "" {
		errs["clientName"] = "имя обязательно"
	}

	if req.Stars < domain.MinStars || req.Stars > domain.MaxStars {
		errs["stars"] = "оценка должна быть от 1 до 5"
	}

	if strings.TrimSpace(req.Text) == "" {
		errs["text"] = "текст отзыва обязателен"
	}

	return errs
}
