package repo

import (
	"context"
	"strings"

	"github.com/Skotchmaster/restaurant/internal/models"
)

func (r *GormRepo) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) DeleteMenuItem(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.DB, &models.MenuItem{}, id)
}

// EnsureMenuItem inserts item unless a menu item with the same name exists.
// It reports whether a row was created.
func (r *GormRepo) EnsureMenuItem(ctx context.Context, item *models.MenuItem) (bool, error) {
	tx := r.DB.WithContext(ctx).Where("name = ?", item.Name).FirstOrCreate(item)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *GormRepo) SearchMenuItems(ctx context.Context, q string, limit int) (int64, []models.MenuItem, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(q)) + "%"
	where := "LOWER(name) LIKE ? OR LOWER(description) LIKE ?"

	var total int64
	if err := r.DB.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where(where, pattern, pattern).
		Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.MenuItem, 0, limit)
	if err := r.DB.WithContext(ctx).
		Where(where, pattern, pattern).
		Order("id ASC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}
