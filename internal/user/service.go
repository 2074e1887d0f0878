package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glisicmilica/barberline-backend/internal/auth"
	"github.com/glisicmilica/barberline-backend/internal/pkg/phone"
)

// Service defines business logic related to users.
type Service interface {
	Register(ctx context.Context, email, password, fullName, phoneNumber string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*User, error)
	Verify(ctx context.Context, id string) (*User, error)
}

// UpdateRequest carries the admin-editable account fields.
type UpdateRequest struct {
	FullName *string
	Phone    *string
	Verified *bool
	Disabled *bool
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher

	minPasswordLength int
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		minPasswordLength: 8,
	}
}

func (s *service) Register(ctx context.Context, email, password, fullName, phoneNumber string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" {
		return nil, ErrEmailRequired
	}

	if len(password) < s.minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if strings.TrimSpace(fullName) == "" {
		return nil, ErrFullNameRequired
	}

	var phonePtr *string
	if strings.TrimSpace(phoneNumber) != "" {
		normalized := phone.Normalize(phoneNumber)
		if !phone.IsValidSerbian(normalized) {
			return nil, ErrInvalidPhone
		}
		phonePtr = &normalized
	}

	// Check if email is already used.
	_, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err == nil {
		return nil, ErrEmailAlreadyUsed
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	name := strings.TrimSpace(fullName)

	u := &User{
		Email:        cleanEmail,
		PasswordHash: hash,
		FullName:     &name,
		Phone:        phonePtr,
		// Accounts wait for admin verification before they can book.
		Verified: false,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}

	if u.Disabled {
		return nil, ErrDisabledUser
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Update last_login_at (best effort; do not fail login if update fails).
	now := time.Now().UTC()
	_ = s.repo.UpdateLastLogin(ctx, u.ID, now)

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			return nil, ErrFullNameRequired
		}
		u.FullName = &name
	}
	if req.Phone != nil {
		if strings.TrimSpace(*req.Phone) == "" {
			u.Phone = nil
		} else {
			normalized := phone.Normalize(*req.Phone)
			if !phone.IsValidSerbian(normalized) {
				return nil, ErrInvalidPhone
			}
			u.Phone = &normalized
		}
	}
	if req.Verified != nil {
		u.Verified = *req.Verified
	}
	if req.Disabled != nil {
		u.Disabled = *req.Disabled
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Verify(ctx context.Context, id string) (*User, error) {
	verified := true
	return s.Update(ctx, id, UpdateRequest{Verified: &verified})
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
