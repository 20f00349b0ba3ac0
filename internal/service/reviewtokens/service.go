package reviewtokens

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	tokenRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/reviewtoken"
	"github.com/m04kA/SMC-SalonService/pkg/phone"
)

// Service сервис одноразовых токенов для отзывов
// Токен выдается клиенту после создания записи и позволяет оставить отзыв
// без дополнительной проверки телефона
type Service struct {
	tokenRepo    TokenRepository
	lifetime     time.Duration
	logger       Logger
	timeProvider TimeProvider
}

// NewService создает новый экземпляр сервиса токенов
func NewService(tokenRepo TokenRepository, lifetimeHours int, logger Logger, timeProvider TimeProvider) *Service {
	return &Service{
		tokenRepo:    tokenRepo,
		lifetime:     time.Duration(lifetimeHours) * time.Hour,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Generate выпускает новый токен для клиента
// Значение токена - первые 20 hex-символов SHA-256 от нормализованного телефона,
// случайной соли и текущего времени в наносекундах
func (s *Service) Generate(ctx context.Context, phoneNumber, clientName, masterCode string, bookingID int64) (*domain.ReviewToken, error) {
	now := s.timeProvider.Now()
	normalizedPhone := phone.Normalize(phoneNumber)

	value, err := s.tokenValue(normalizedPhone, now)
	if err != nil {
		s.logger.Error("Generate: failed to build token value: %v", err)
		return nil, fmt.Errorf("%w: Generate - build token value: %v", ErrInternal, err)
	}

	token := &domain.ReviewToken{
		Token:      value,
		Phone:      normalizedPhone,
		ClientName: clientName,
		MasterCode: masterCode,
		BookingID:  bookingID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.lifetime),
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		s.logger.Error("Generate: failed to store token for booking=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Generate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Generate: issued review token for booking=%d, master=%s, expires=%s",
		bookingID, masterCode, token.ExpiresAt.Format(time.RFC3339))
	return token, nil
}

// Validate проверяет токен: существование, срок действия и однократность
// Возвращает данные токена для предзаполнения формы отзыва
func (s *Service) Validate(ctx context.Context, tokenValue string) (*domain.ReviewToken, error) {
	token, err := s.tokenRepo.GetByToken(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, tokenRepo.ErrTokenNotFound) {
			s.logger.Warn("Validate: token not found")
			return nil, ErrTokenNotFound
		}
		s.logger.Error("Validate: repository error: %v", err)
		return nil, fmt.Errorf("%w: Validate - repository error: %v", ErrInternal, err)
	}

	if token.Used {
		s.logger.Warn("Validate: token for booking=%d already used", token.BookingID)
		return nil, ErrTokenUsed
	}

	if token.IsExpired(s.timeProvider.Now()) {
		s.logger.Warn("Validate: token for booking=%d expired at %s", token.BookingID, token.ExpiresAt.Format(time.RFC3339))
		return nil, ErrTokenExpired
	}

	return token, nil
}

// Consume гасит токен после использования
// Повторное гашение возвращает ErrTokenUsed
func (s *Service) Consume(ctx context.Context, tokenValue string) error {
	err := s.tokenRepo.MarkUsed(ctx, tokenValue, s.timeProvider.Now())
	if err != nil {
		if errors.Is(err, tokenRepo.ErrTokenNotFound) {
			return ErrTokenNotFound
		}
		if errors.Is(err, tokenRepo.ErrTokenAlreadyUsed) {
			return ErrTokenUsed
		}
		s.logger.Error("Consume: repository error: %v", err)
		return fmt.Errorf("%w: Consume - repository error: %v", ErrInternal, err)
	}

	return nil
}

// tokenValue строит значение токена
func (s *Service) tokenValue(normalizedPhone string, now time.Time) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := sha256.New()
	hash.Write([]byte(normalizedPhone))
	hash.Write(salt)
	hash.Write([]byte(fmt.Sprintf("%d", now.UnixNano())))

	return hex.EncodeToString(hash.Sum(nil))[:domain.TokenHexLength], nil
}
