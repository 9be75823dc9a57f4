package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Skotchmaster/restaurant/internal/models"
	"github.com/Skotchmaster/restaurant/internal/repo"
	"github.com/Skotchmaster/restaurant/pkg/events"
	"github.com/Skotchmaster/restaurant/pkg/logging"
)

const (
	DefaultSearchSize = 20
	MaxSearchSize     = 100
)

// MenuSearcher is a full text index over menu items.
type MenuSearcher interface {
	Search(ctx context.Context, q string, size int) (int64, []models.MenuItem, error)
	Delete(ctx context.Context, id uint) error
}

type MenuService struct {
	Repo  *repo.GormRepo
	Index MenuSearcher
	Notifier
}

func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.Repo.ListMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no menu items", ErrNotFound)
	}
	return items, nil
}

func (s *MenuService) Get(ctx context.Context, id uint) (*models.MenuItem, error) {
	item, err := s.Repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "menu.delete", "menu_item_id", id)

	if err := s.Repo.DeleteMenuItem(ctx, id); err != nil {
		return storeErr(err)
	}

	if s.Index != nil {
		if err := s.Index.Delete(ctx, id); err != nil {
			l.Warn("index_delete_failed", "error", err)
		}
	}

	s.publish(ctx, events.TopicMenu, id, map[string]any{
		"type":         "menu_item_deleted",
		"menu_item_id": id,
	})
	return nil
}

// Search queries the index when one is configured and falls back to the
// database when there is none or it fails.
func (s *MenuService) Search(ctx context.Context, q string, size int) (int64, []models.MenuItem, error) {
	l := logging.FromContext(ctx).With("svc", "menu.search")

	q = strings.TrimSpace(q)
	if q == "" {
		return 0, nil, fmt.Errorf("%w: query is required", ErrValidation)
	}
	if size <= 0 {
		size = DefaultSearchSize
	}
	if size > MaxSearchSize {
		size = MaxSearchSize
	}

	if s.Index != nil {
		total, items, err := s.Index.Search(ctx, q, size)
		if err == nil {
			return total, items, nil
		}
		l.Warn("index_search_failed", "reason", "falling back to database", "error", err)
	}

	return s.Repo.SearchMenuItems(ctx, q, size)
}
