package submit_review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/reviewtokens"
	"github.com/m04kA/SMC-SalonService/pkg/phone"
)

// UseCase use case для публикации отзыва
type UseCase struct {
	reviewRepo   ReviewRepository
	tokenService TokenService
	verifier     Verifier
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reviewRepo ReviewRepository,
	tokenService TokenService,
	verifier Verifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reviewRepo:   reviewRepo,
		tokenService: tokenService,
		verifier:     verifier,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case публикации отзыва
// Отзыв по одноразовой ссылке публикуется сразу: владение ссылкой
// подтверждает визит. Отзыв без ссылки проходит проверку по истории
// записей и попадает на ручную модерацию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных с накоплением ошибок по полям
	if errs := validateRequest(req); len(errs) > 0 {
		uc.logger.Warn("SubmitReview: validation failed: %v", map[string]string(errs))
		return nil, errs
	}

	if req.Token != "" {
		return uc.executeWithToken(ctx, req)
	}
	return uc.executeWithPhoneCheck(ctx, req)
}

// executeWithToken публикует отзыв по одноразовой ссылке
// Создание отзыва и гашение токена выполняются в одной транзакции:
// либо происходит и то и другое, либо ничего
func (uc *UseCase) executeWithToken(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitReview: token flow")

	token, err := uc.tokenService.Validate(ctx, req.Token)
	if err != nil {
		return nil, uc.mapTokenError(err)
	}

	var result *domain.Review

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		review := &domain.Review{
			MasterCode:  token.MasterCode,
			ClientName:  strings.TrimSpace(req.ClientName),
			Phone:       token.Phone,
			Stars:       req.Stars,
			Text:        strings.TrimSpace(req.Text),
			IsPublished: true,
			IsVerified:  true,
		}

		created, err := uc.reviewRepo.Create(txCtx, review)
		if err != nil {
			uc.logger.Error("SubmitReview: failed to create review: %v", err)
			return fmt.Errorf("%w: failed to create review: %v", ErrInternal, err)
		}

		if err := uc.tokenService.Consume(txCtx, req.Token); err != nil {
			uc.logger.Error("SubmitReview: failed to consume token: %v", err)
			return uc.mapTokenError(err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitReview: published review id=%d for master=%s via token", result.ID, result.MasterCode)
	return uc.toResponse(result), nil
}

// executeWithPhoneCheck принимает отзыв без ссылки
// Клиент подтверждается по истории записей мастера. Подтвержденный отзыв
// сохраняется непубликованным до ручной модерации
func (uc *UseCase) executeWithPhoneCheck(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitReview: phone check flow for master=%s", req.MasterCode)

	confirmed, err := uc.verifier.HadBooking(ctx, req.MasterCode, req.Phone, req.ClientName)
	if err != nil {
		uc.logger.Error("SubmitReview: verification failed: %v", err)
		return nil, fmt.Errorf("%w: verification failed: %v", ErrInternal, err)
	}

	if !confirmed {
		uc.logger.Warn("SubmitReview: booking not confirmed for master=%s", req.MasterCode)
		return nil, ErrBookingNotConfirmed
	}

	review := &domain.Review{
		MasterCode:  req.MasterCode,
		ClientName:  strings.TrimSpace(req.ClientName),
		Phone:       phone.Normalize(req.Phone),
		Stars:       req.Stars,
		Text:        strings.TrimSpace(req.Text),
		IsPublished: false,
		IsVerified:  true,
	}

	created, err := uc.reviewRepo.Create(ctx, review)
	if err != nil {
		uc.logger.Error("SubmitReview: failed to create review: %v", err)
		return nil, fmt.Errorf("%w: failed to create review: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitReview: accepted review id=%d for master=%s, pending moderation", created.ID, created.MasterCode)
	return uc.toResponse(created), nil
}

// mapTokenError транслирует ошибки сервиса токенов в ошибки usecase
func (uc *UseCase) mapTokenError(err error) error {
	switch {
	case errors.Is(err, reviewtokens.ErrTokenNotFound):
		return ErrTokenNotFound
	case errors.Is(err, reviewtokens.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, reviewtokens.ErrTokenUsed):
		return ErrTokenUsed
	default:
		return fmt.Errorf("%w: token service error: %v", ErrInternal, err)
	}
}

// toResponse конвертирует доменный отзыв в response
func (uc *UseCase) toResponse(review *domain.Review) *Response {
	return &Response{
		ID:          review.ID,
		MasterCode:  review.MasterCode,
		MasterName:  domain.MasterNames[review.MasterCode],
		ClientName:  review.ClientName,
		Stars:       review.Stars,
		Text:        review.Text,
		IsPublished: review.IsPublished,
		IsVerified:  review.IsVerified,
		CreatedAt:   review.CreatedAt.Format("2006-01-02 15:04"),
	}
}
