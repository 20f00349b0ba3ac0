package get_review_form

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/reviewtokens"
)

// UseCase use case для получения формы отзыва по одноразовой ссылке
// Проверяет токен и возвращает данные для предзаполнения формы
type UseCase struct {
	tokenService TokenService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(tokenService TokenService, logger Logger) *UseCase {
	return &UseCase{
		tokenService: tokenService,
		logger:       logger,
	}
}

// Execute выполняет use case проверки ссылки
// Токен при этом не гасится: он расходуется только при отправке отзыва
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Token == "" {
		return nil, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	token, err := uc.tokenService.Validate(ctx, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, reviewtokens.ErrTokenNotFound):
			return nil, ErrTokenNotFound
		case errors.Is(err, reviewtokens.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, reviewtokens.ErrTokenUsed):
			return nil, ErrTokenUsed
		default:
			uc.logger.Error("GetReviewForm: token service error: %v", err)
			return nil, fmt.Errorf("%w: token service error: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("GetReviewForm: token valid for master=%s, booking=%d", token.MasterCode, token.BookingID)

	return &Response{
		Token:      token.Token,
		ClientName: token.ClientName,
		MasterCode: token.MasterCode,
		MasterName: domain.MasterNames[token.MasterCode],
		ExpiresAt:  token.ExpiresAt.Format(time.RFC3339),
	}, nil
}
