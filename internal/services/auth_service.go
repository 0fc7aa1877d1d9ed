package services

import (
	"errors"
	"fmt"
	"time"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// Errors returned by AuthService. Handlers map these to HTTP statuses.
var (
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// AuthService handles business logic for registration and login.
type AuthService struct {
	userRepo repositories.UserRepository
	creds    CredentialChecker
}

// NewAuthService creates a new AuthService. A nil checker defaults to
// plain-text storage, matching the original backend's behavior.
func NewAuthService(userRepo repositories.UserRepository, creds CredentialChecker) *AuthService {
	if creds == nil {
		creds = PlainChecker{}
	}
	return &AuthService{
		userRepo: userRepo,
		creds:    creds,
	}
}

// Register creates a new user record with the current wall-clock time.
func (s *AuthService) Register(username, password, email string) (*models.User, error) {
	stored, err := s.creds.Store(password)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare credentials: %w", err)
	}

	user := &models.User{
		Username:  username,
		Email:     email,
		Password:  stored,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login checks the supplied credentials against the stored record. It issues
// no token or session; the caller only learns whether the pair matched.
func (s *AuthService) Login(username, password string) error {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.creds.Compare(user.Password, password); err != nil {
		return ErrInvalidPassword
	}
	return nil
}

// Validate reports whether username belongs to a registered user. This is a
// presence check only, not an authentication proof.
func (s *AuthService) Validate(username string) bool {
	_, err := s.userRepo.GetByUsername(username)
	return err == nil
}
