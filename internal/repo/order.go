package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant/internal/models"
)

func (r *GormRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	if err := r.DB.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormRepo) CreateOrder(ctx context.Context, o *models.Order) (*models.Order, error) {
	if err := r.DB.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

func (r *GormRepo) DeleteOrder(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.DB, &models.Order{}, id)
}

// LatestOrder returns the most recently created order, i.e. the highest id.
func (r *GormRepo) LatestOrder(ctx context.Context) (*models.Order, error) {
	var o models.Order
	if err := r.DB.WithContext(ctx).Order("id DESC").First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// CancelLatestOrder deletes the most recent order and all of its items in
// one transaction. It returns the deleted order and how many items went with it.
func (r *GormRepo) CancelLatestOrder(ctx context.Context) (*models.Order, int64, error) {
	var (
		order   models.Order
		deleted int64
	)

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("id DESC").First(&order).Error; err != nil {
			return err
		}

		res := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected

		return tx.Delete(&models.Order{}, order.ID).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return &order, deleted, nil
}

func (r *GormRepo) ListOrderItems(ctx context.Context) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) ListOrderItemsByOrder(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.DB.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetOrderItem(ctx context.Context, id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) CreateOrderItem(ctx context.Context, item *models.OrderItem) (*models.OrderItem, error) {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *GormRepo) DeleteOrderItem(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.DB, &models.OrderItem{}, id)
}
