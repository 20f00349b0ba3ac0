package reviewtokens

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	tokenRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/reviewtoken"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type fakeTokenRepo struct {
	tokens map[string]*domain.ReviewToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*domain.ReviewToken)}
}

func (r *fakeTokenRepo) Create(_ context.Context, token *domain.ReviewToken) error {
	copied := *token
	r.tokens[token.Token] = &copied
	return nil
}

func (r *fakeTokenRepo) GetByToken(_ context.Context, tokenValue string) (*domain.ReviewToken, error) {
	token, ok := r.tokens[tokenValue]
	if !ok {
		return nil, tokenRepo.ErrTokenNotFound
	}
	copied := *token
	return &copied, nil
}

func (r *fakeTokenRepo) MarkUsed(_ context.Context, tokenValue string, usedAt time.Time) error {
	token, ok := r.tokens[tokenValue]
	if !ok {
		return tokenRepo.ErrTokenNotFound
	}
	if token.Used {
		return tokenRepo.ErrTokenAlreadyUsed
	}
	token.Used = true
	token.UsedAt = &usedAt
	return nil
}

func newTestService(repo *fakeTokenRepo, now time.Time) (*Service, *fakeTimeProvider) {
	provider := &fakeTimeProvider{now: now}
	return NewService(repo, 168, fakeLogger{}, provider), provider
}

func TestGenerate(t *testing.T) {
	repo := newFakeTokenRepo()
	now := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)
	svc, _ := newTestService(repo, now)

	token, err := svc.Generate(context.Background(), "8 (999) 123-45-67", "Иван", domain.MasterAlexander, 7)
	require.NoError(t, err)

	assert.Len(t, token.Token, domain.TokenHexLength)
	assert.Equal(t, "+79991234567", token.Phone)
	assert.Equal(t, int64(7), token.BookingID)
	assert.Equal(t, now, token.CreatedAt)
	assert.Equal(t, now.Add(168*time.Hour), token.ExpiresAt)
	assert.Contains(t, repo.tokens, token.Token)
}

func TestGenerate_UniqueValues(t *testing.T) {
	repo := newFakeTokenRepo()
	svc, _ := newTestService(repo, time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC))

	// Один и тот же телефон в один и тот же момент времени:
	// соль обеспечивает уникальность каждого токена
	const generations = 10000
	for i := 0; i < generations; i++ {
		_, err := svc.Generate(context.Background(), "+79991234567", "Иван", domain.MasterAlexander, int64(i))
		require.NoError(t, err)
	}

	assert.Len(t, repo.tokens, generations)
}

func TestValidate(t *testing.T) {
	repo := newFakeTokenRepo()
	now := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)
	svc, provider := newTestService(repo, now)

	issued, err := svc.Generate(context.Background(), "+79991234567", "Иван", domain.MasterMikhail, 3)
	require.NoError(t, err)

	token, err := svc.Validate(context.Background(), issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "Иван", token.ClientName)
	assert.Equal(t, domain.MasterMikhail, token.MasterCode)

	// Через 168 часов токен истекает
	provider.now = now.Add(168*time.Hour + time.Minute)
	_, err = svc.Validate(context.Background(), issued.Token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidate_NotFound(t *testing.T) {
	svc, _ := newTestService(newFakeTokenRepo(), time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC))

	_, err := svc.Validate(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestConsume_SingleUse(t *testing.T) {
	repo := newFakeTokenRepo()
	now := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)
	svc, provider := newTestService(repo, now)

	issued, err := svc.Generate(context.Background(), "+79991234567", "Иван", domain.MasterDmitry, 5)
	require.NoError(t, err)

	require.NoError(t, svc.Consume(context.Background(), issued.Token))

	// Повторное гашение отклоняется
	assert.ErrorIs(t, svc.Consume(context.Background(), issued.Token), ErrTokenUsed)

	// Использованный токен не проходит валидацию даже до истечения срока
	provider.now = now.Add(time.Hour)
	_, err = svc.Validate(context.Background(), issued.Token)
	assert.ErrorIs(t, err, ErrTokenUsed)
}

func TestConsume_NotFound(t *testing.T) {
	svc, _ := newTestService(newFakeTokenRepo(), time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, svc.Consume(context.Background(), "missing"), ErrTokenNotFound)
}
