package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant/internal/models"
)

func (r *GormRepo) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *GormRepo) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.DB.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormRepo) GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var c models.Customer
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCustomerIfNotExists inserts c keyed by email. c.ID is the id the
// insert itself produced.
func (r *GormRepo) CreateCustomerIfNotExists(ctx context.Context, c *models.Customer) error {
	var existing models.Customer
	tx := r.DB.WithContext(ctx).Where("email = ?", c.Email).Limit(1).Find(&existing)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected > 0 {
		return ErrCustomerExists
	}

	if err := r.DB.WithContext(ctx).Create(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCustomerExists
		}
		return err
	}
	return nil
}

func (r *GormRepo) SaveCustomer(ctx context.Context, c *models.Customer) error {
	if err := r.DB.WithContext(ctx).Save(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCustomerExists
		}
		return err
	}
	return nil
}

func (r *GormRepo) DeleteCustomer(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.DB, &models.Customer{}, id)
}
