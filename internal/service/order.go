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
	"github.com/Skotchmaster/restaurant/pkg/logging"
)

type OrderService struct {
	Repo *repo.GormRepo
	Notifier
}

type CancelResult struct {
	Order        *models.Order
	ItemsDeleted int64
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.Repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("%w: no orders", ErrNotFound)
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	o, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return o, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if missing := missingFields(map[string]bool{
		"total":       req.Total != nil,
		"notes":       req.Notes != nil,
		"customer_id": req.CustomerID != nil,
	}); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}

	o, err := s.Repo.CreateOrder(ctx, &models.Order{
		Total:      *req.Total,
		Notes:      *req.Notes,
		CustomerID: *req.CustomerID,
	})
	if err != nil {
		return nil, createErr(err, "customer")
	}

	s.Metrics.OrderCreated()
	s.publish(ctx, events.TopicOrder, o.ID, map[string]any{
		"type":        "order_created",
		"order_id":    o.ID,
		"customer_id": o.CustomerID,
		"total":       o.Total,
	})
	return o, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteOrder(ctx, id); err != nil {
		return storeErr(err)
	}
	s.publish(ctx, events.TopicOrder, id, map[string]any{
		"type":     "order_deleted",
		"order_id": id,
	})
	return nil
}

// CancelLatest removes the most recent order together with its items. Any
// failure leaves both untouched.
func (s *OrderService) CancelLatest(ctx context.Context) (*CancelResult, error) {
	l := logging.FromContext(ctx).With("svc", "order.cancel")

	o, n, err := s.Repo.CancelLatestOrder(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no orders", ErrNotFound)
		}
		l.Error("cancel_failed", "status", 500, "reason", "transaction rolled back", "error", err)
		return nil, err
	}

	s.Metrics.OrderCancelled()
	s.publish(ctx, events.TopicOrder, o.ID, map[string]any{
		"type":          "order_cancelled",
		"order_id":      o.ID,
		"customer_id":   o.CustomerID,
		"items_deleted": n,
	})
	return &CancelResult{Order: o, ItemsDeleted: n}, nil
}

func (s *OrderService) ListItems(ctx context.Context) ([]models.OrderItem, error) {
	items, err := s.Repo.ListOrderItems(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no order items", ErrNotFound)
	}
	return items, nil
}

func (s *OrderService) GetItem(ctx context.Context, id uint) (*models.OrderItem, error) {
	item, err := s.Repo.GetOrderItem(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return item, nil
}

func (s *OrderService) CreateItem(ctx context.Context, req transport.CreateOrderItemRequest) (*models.OrderItem, error) {
	if missing := missingFields(map[string]bool{
		"order_id":     req.OrderID != nil,
		"menu_item_id": req.MenuItemID != nil,
		"quantity":     req.Quantity != nil,
	}); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}

	item, err := s.Repo.CreateOrderItem(ctx, &models.OrderItem{
		OrderID:    *req.OrderID,
		MenuItemID: *req.MenuItemID,
		Quantity:   *req.Quantity,
	})
	if err != nil {
		return nil, createErr(err, "order or menu item")
	}

	s.publish(ctx, events.TopicOrder, item.OrderID, map[string]any{
		"type":          "order_item_created",
		"order_item_id": item.ID,
		"order_id":      item.OrderID,
		"menu_item_id":  item.MenuItemID,
		"quantity":      item.Quantity,
	})
	return item, nil
}

func (s *OrderService) DeleteItem(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteOrderItem(ctx, id); err != nil {
		return storeErr(err)
	}
	s.publish(ctx, events.TopicOrder, id, map[string]any{
		"type":          "order_item_deleted",
		"order_item_id": id,
	})
	return nil
}

// createErr turns a rejected reference on insert into a validation error.
func createErr(err error, ref string) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: unknown %s", ErrValidation, ref)
	}
	return storeErr(err)
}
