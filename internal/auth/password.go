package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultBcryptCost стандартная сложность bcrypt
	DefaultBcryptCost = 12
)

var (
	ErrInvalidPassword = errors.New("invalid password")
)

// PasswordService сервис для проверки админских учетных данных
type PasswordService struct {
	cost int
}

// NewPasswordService создает новый сервис для работы с паролями
func NewPasswordService() *PasswordService {
	return &PasswordService{
		cost: DefaultBcryptCost,
	}
}

// HashPassword хеширует пароль с использованием bcrypt
func (s *PasswordService) HashPassword(password string) (string, error) {
	if len(password) == 0 {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// VerifyPassword проверяет соответствие пароля и bcrypt-хеша
func (s *PasswordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// VerifyCredential сверяет предъявленный пароль с настроенными учетными
// данными: bcrypt-хеш имеет приоритет, иначе сравнение с открытым
// паролем за константное время
func (s *PasswordService) VerifyCredential(configuredHash, configuredPlain, presented string) error {
	if configuredHash != "" {
		return s.VerifyPassword(configuredHash, presented)
	}
	if configuredPlain == "" {
		return ErrInvalidPassword
	}
	if subtle.ConstantTimeCompare([]byte(configuredPlain), []byte(presented)) != 1 {
		return ErrInvalidPassword
	}
	return nil
}
