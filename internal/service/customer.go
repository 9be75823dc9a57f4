package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Skotchmaster/restaurant/internal/models"
	"github.com/Skotchmaster/restaurant/internal/repo"
	"github.com/Skotchmaster/restaurant/internal/transport"
	"github.com/Skotchmaster/restaurant/pkg/events"
	"github.com/Skotchmaster/restaurant/pkg/hash"
	"github.com/Skotchmaster/restaurant/pkg/logging"
)

type CustomerService struct {
	Repo *repo.GormRepo
	Notifier
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.Repo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, fmt.Errorf("%w: no customers", ErrNotFound)
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, id uint) (*models.Customer, error) {
	c, err := s.Repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return c, nil
}

func (s *CustomerService) Create(ctx context.Context, req transport.CreateCustomerRequest) (*models.Customer, error) {
	l := logging.FromContext(ctx).With("svc", "customer.create")

	if missing := missingFields(map[string]bool{
		"first_name":     req.FirstName != nil,
		"last_name":      req.LastName != nil,
		"email":          req.Email != nil,
		"phone_number":   req.PhoneNumber != nil,
		"_password_hash": req.Password != nil,
		"address":        req.Address != nil,
	}); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}

	pwHash, err := hash.HashPassword(*req.Password)
	if err != nil {
		l.Error("create_failed", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	c := &models.Customer{
		FirstName:    *req.FirstName,
		LastName:     *req.LastName,
		Email:        *req.Email,
		Username:     *req.Email,
		PhoneNumber:  *req.PhoneNumber,
		Address:      *req.Address,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateCustomerIfNotExists(ctx, c); err != nil {
		return nil, storeErr(err)
	}

	s.publish(ctx, events.TopicCustomer, c.ID, map[string]any{
		"type":        "customer_created",
		"customer_id": c.ID,
		"email":       c.Email,
	})
	return c, nil
}

// Patch applies only the allow-listed profile fields. The password hash
// cannot be changed here.
func (s *CustomerService) Patch(ctx context.Context, id uint, req transport.PatchCustomerRequest) (*models.Customer, error) {
	c, err := s.Repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}

	if req.FirstName != nil {
		c.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		c.LastName = *req.LastName
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		c.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		c.Address = *req.Address
	}

	if err := s.Repo.SaveCustomer(ctx, c); err != nil {
		return nil, storeErr(err)
	}

	s.publish(ctx, events.TopicCustomer, c.ID, map[string]any{
		"type":        "customer_updated",
		"customer_id": c.ID,
	})
	return c, nil
}

func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteCustomer(ctx, id); err != nil {
		return storeErr(err)
	}
	s.publish(ctx, events.TopicCustomer, id, map[string]any{
		"type":        "customer_deleted",
		"customer_id": id,
	})
	return nil
}

// missingFields returns the names whose presence flag is false, sorted so
// error messages are stable.
func missingFields(present map[string]bool) []string {
	var out []string
	for name, ok := range present {
		if !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
