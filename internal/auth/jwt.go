package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken возвращается, когда токен не прошел проверку подписи или истек
	ErrInvalidToken = errors.New("auth: invalid token")
)

// Claims полезная нагрузка JWT для сессий мастеров
type Claims struct {
	Username   string `json:"username"`
	MasterCode string `json:"master_code"`
	IsAdmin    bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// JWTManager выпускает и проверяет JWT-токены сессий мастеров
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager создает новый менеджер JWT
func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue выпускает подписанный токен для аккаунта мастера
func (m *JWTManager) Issue(username, masterCode string, isAdmin bool, now time.Time) (string, error) {
	claims := Claims{
		Username:   username,
		MasterCode: masterCode,
		IsAdmin:    isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse проверяет подпись и срок действия токена и возвращает claims
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
