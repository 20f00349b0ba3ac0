package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword хеширует пароль через bcrypt
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("auth: empty password")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword сверяет пароль с bcrypt-хешем
func ComparePassword(hash, password string) error {
	if hash == "" || password == "" {
		return errors.New("auth: missing hash or password")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
