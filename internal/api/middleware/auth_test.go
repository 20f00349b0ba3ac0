package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/auth"
)

type fakeLogger struct{}

func (fakeLogger) Warn(string, ...interface{}) {}

type fakeParser struct {
	claims *auth.Claims
	err    error
}

func (p *fakeParser) Parse(string) (*auth.Claims, error) {
	return p.claims, p.err
}

func protected(t *testing.T, parser TokenParser) (http.Handler, *bool) {
	t.Helper()
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		require.NotNil(t, claims)
		w.WriteHeader(http.StatusOK)
	})
	return Auth(parser, fakeLogger{})(next), &called
}

func TestAuth_MissingHeader(t *testing.T) {
	handler, called := protected(t, &fakeParser{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/masters/alexander/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuth_WrongScheme(t *testing.T) {
	handler, called := protected(t, &fakeParser{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/masters/alexander/dashboard", nil)
	req.Header.Set("Authorization", "Basic abc123")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuth_InvalidToken(t *testing.T) {
	handler, called := protected(t, &fakeParser{err: auth.ErrInvalidToken})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/masters/alexander/dashboard", nil)
	req.Header.Set("Authorization", "Bearer bad-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuth_ValidToken(t *testing.T) {
	parser := &fakeParser{claims: &auth.Claims{Username: "alexander", MasterCode: "alexander"}}
	handler, called := protected(t, parser)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/masters/alexander/dashboard", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}
