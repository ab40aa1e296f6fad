package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// ServiceName имя записи приложения в OS keyring
const ServiceName = "smc-barber-booker"

var (
	// ErrNotFound возвращается, если токен для сервера не сохранен
	ErrNotFound = errors.New("token not found in keyring")
	// ErrKeyringUnavailable возвращается, если OS keyring недоступен
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Store хранит bearer токены в OS keyring
// Ключ записи - адрес сервиса расписания, чтобы токены разных серверов не смешивались
type Store struct {
	service string
}

// NewStore создает хранилище токенов
func NewStore() *Store {
	return &Store{service: ServiceName}
}

// GetToken получает токен для сервера
func (s *Store) GetToken(server string) (string, error) {
	token, err := keyring.Get(s.service, server)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

// SetToken сохраняет токен для сервера
func (s *Store) SetToken(server, token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if err := keyring.Set(s.service, server, token); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	return nil
}

// DeleteToken удаляет токен сервера
func (s *Store) DeleteToken(server string) error {
	if err := keyring.Delete(s.service, server); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete token from keyring: %w", err)
	}
	return nil
}
