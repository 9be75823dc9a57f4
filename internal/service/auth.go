package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant/internal/models"
	"github.com/Skotchmaster/restaurant/internal/repo"
	"github.com/Skotchmaster/restaurant/internal/transport"
	"github.com/Skotchmaster/restaurant/pkg/events"
	"github.com/Skotchmaster/restaurant/pkg/hash"
	"github.com/Skotchmaster/restaurant/pkg/logging"
)

type AuthService struct {
	Repo *repo.GormRepo
	Notifier
}

func (s *AuthService) Signup(ctx context.Context, req transport.SignupRequest) (*models.Customer, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		l.Warn("signup_failed", "status", 400, "reason", "email and password are required")
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("signup_failed", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	c := &models.Customer{
		Email:        email,
		Username:     email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateCustomerIfNotExists(ctx, c); err != nil {
		if errors.Is(err, repo.ErrCustomerExists) {
			l.Warn("signup_failed", "status", 422, "reason", "customer already exists")
		}
		return nil, storeErr(err)
	}

	s.publish(ctx, events.TopicCustomer, c.ID, map[string]any{
		"type":        "customer_signed_up",
		"customer_id": c.ID,
		"email":       c.Email,
	})
	return c, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Customer, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	c, err := s.Repo.GetCustomerByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "unknown email")
			return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
		}
		return nil, err
	}
	if !hash.CheckPassword(c.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "wrong password", "customer_id", c.ID)
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	s.publish(ctx, events.TopicCustomer, c.ID, map[string]any{
		"type":        "customer_logged_in",
		"customer_id": c.ID,
	})
	return c, nil
}

// SessionCustomer resolves the customer id held by a session. A customer
// that no longer exists is treated the same as no session at all.
func (s *AuthService) SessionCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	c, err := s.Repo.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no active session", ErrUnauthorized)
		}
		return nil, err
	}
	return c, nil
}

func (s *AuthService) CustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	c, err := s.Repo.GetCustomerByEmail(ctx, email)
	if err != nil {
		return nil, storeErr(err)
	}
	return c, nil
}
