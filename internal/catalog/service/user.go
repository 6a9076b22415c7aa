package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/prepdeck/prepdeck/internal/catalog/domain"
	"github.com/prepdeck/prepdeck/internal/catalog/store"
	"github.com/prepdeck/prepdeck/pkg/cryptox"
	"github.com/prepdeck/prepdeck/pkg/idx"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

type UserService struct {
	Store  store.Store
	Tokens *TokenService
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// Register validates the signup input, hashes the password and creates the
// user. Uniqueness violations surface as a store.DuplicateError naming the
// conflicting field.
func (s *UserService) Register(ctx context.Context, phone, email, password, repassword string) (domain.User, error) {
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)

	if !phonePattern.MatchString(phone) {
		return domain.User{}, validationErr("phone must be exactly 10 digits")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, validationErr("invalid email address")
	}
	if password == "" {
		return domain.User{}, validationErr("password must not be empty")
	}
	if password != repassword {
		return domain.User{}, validationErr("passwords do not match")
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Phone:        phone,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// Login verifies the credentials for an identifier that may be a phone number
// or an email address, and issues a session token on success. Unknown
// identifier and wrong password both come back as ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, identifier, password string) (domain.User, string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return domain.User{}, "", ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}
