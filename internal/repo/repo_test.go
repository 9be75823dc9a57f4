package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant/internal/models"
	pkgdb "github.com/Skotchmaster/restaurant/pkg/db"
)

func InitTestRepo(t *testing.T) *GormRepo {
	t.Helper()
	db, err := pkgdb.Open(context.Background(), pkgdb.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = pkgdb.Close(db) })

	r := &GormRepo{DB: db}
	require.NoError(t, r.Migrate(context.Background()))
	return r
}

func TestCreateCustomerIfNotExists(t *testing.T) {
	ctx := context.Background()
	r := InitTestRepo(t)

	c := &models.Customer{Email: "a@example.com", Username: "a@example.com", PasswordHash: "x"}
	require.NoError(t, r.CreateCustomerIfNotExists(ctx, c))
	require.NotZero(t, c.ID)

	dup := &models.Customer{Email: "a@example.com", PasswordHash: "y"}
	require.ErrorIs(t, r.CreateCustomerIfNotExists(ctx, dup), ErrCustomerExists)

	all, err := r.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	got, err := r.GetCustomerByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.Equal(t, c.ID, got.ID)
}

func TestDeleteMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	r := InitTestRepo(t)

	require.ErrorIs(t, r.DeleteMenuItem(ctx, 42), gorm.ErrRecordNotFound)
	require.ErrorIs(t, r.DeleteCustomer(ctx, 42), gorm.ErrRecordNotFound)
	require.ErrorIs(t, r.DeleteOrder(ctx, 42), gorm.ErrRecordNotFound)
	require.ErrorIs(t, r.DeleteOrderItem(ctx, 42), gorm.ErrRecordNotFound)

	item := &models.MenuItem{Name: "Soup", Price: 4.5}
	created, err := r.EnsureMenuItem(ctx, item)
	require.NoError(t, err)
	require.True(t, created)

	require.NoError(t, r.DeleteMenuItem(ctx, item.ID))
	require.ErrorIs(t, r.DeleteMenuItem(ctx, item.ID), gorm.ErrRecordNotFound)
}

func TestEnsureMenuItemIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := InitTestRepo(t)

	created, err := r.EnsureMenuItem(ctx, &models.MenuItem{Name: "Burger", Price: 9})
	require.NoError(t, err)
	require.True(t, created)

	created, err = r.EnsureMenuItem(ctx, &models.MenuItem{Name: "Burger", Price: 11})
	require.NoError(t, err)
	require.False(t, created)

	items, err := r.ListMenuItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 9.0, items[0].Price)
}

func TestSearchMenuItems(t *testing.T) {
	ctx := context.Background()
	r := InitTestRepo(t)

	for _, it := range []models.MenuItem{
		{Name: "Margherita Pizza", Description: "tomato, mozzarella", Price: 10},
		{Name: "Caesar Salad", Description: "romaine, parmesan", Price: 8},
		{Name: "Pepperoni", Description: "a spicy PIZZA", Price: 12},
	} {
		it := it
		_, err := r.EnsureMenuItem(ctx, &it)
		require.NoError(t, err)
	}

	total, items, err := r.SearchMenuItems(ctx, "pizza", 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	require.Equal(t, "Margherita Pizza", items[0].Name)

	total, items, err = r.SearchMenuItems(ctx, "pizza", 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, items, 1)

	total, _, err = r.SearchMenuItems(ctx, "sushi", 10)
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestCancelLatestOrder(t *testing.T) {
	ctx := context.Background()
	r := InitTestRepo(t)

	c := &models.Customer{Email: "c@example.com", PasswordHash: "x"}
	require.NoError(t, r.CreateCustomerIfNotExists(ctx, c))
	menu := &models.MenuItem{Name: "Tea", Price: 2}
	_, err := r.EnsureMenuItem(ctx, menu)
	require.NoError(t, err)

	first, err := r.CreateOrder(ctx, &models.Order{Total: 2, CustomerID: c.ID})
	require.NoError(t, err)
	second, err := r.CreateOrder(ctx, &models.Order{Total: 4, CustomerID: c.ID})
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)

	_, err = r.CreateOrderItem(ctx, &models.OrderItem{OrderID: first.ID, MenuItemID: menu.ID, Quantity: 1})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = r.CreateOrderItem(ctx, &models.OrderItem{OrderID: second.ID, MenuItemID: menu.ID, Quantity: 1})
		require.NoError(t, err)
	}

	latest, err := r.LatestOrder(ctx)
	require.NoError(t, err)
	require.Equal(t, second.ID, latest.ID)

	cancelled, n, err := r.CancelLatestOrder(ctx)
	require.NoError(t, err)
	require.Equal(t, second.ID, cancelled.ID)
	require.Equal(t, int64(2), n)

	_, err = r.GetOrder(ctx, second.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	left, err := r.ListOrderItems(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	require.Equal(t, first.ID, left[0].OrderID)

	_, _, err = r.CancelLatestOrder(ctx)
	require.NoError(t, err)
	_, _, err = r.CancelLatestOrder(ctx)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
