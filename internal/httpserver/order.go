package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant/internal/service"
	"github.com/Skotchmaster/restaurant/internal/transport"
	"github.com/Skotchmaster/restaurant/pkg/logging"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	orders, err := h.Svc.ListOrders(ctx)
	if err != nil {
		return fail(l, "list_orders", err, "No orders found")
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "create_order", err)
	}

	order, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		return fail(l, "create_order", err, "Order not found")
	}

	l.Info("create_order_success", "order_id", order.ID)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	order, err := h.Svc.GetOrder(ctx, id)
	if err != nil {
		return fail(l, "get_order", err, "Order not found")
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) Patch(c echo.Context) error {
	return echo.NewHTTPError(http.StatusMethodNotAllowed, "Orders cannot be modified")
}

func (h *OrderHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteOrder(ctx, id); err != nil {
		return fail(l, "delete_order", err, "Order not found")
	}

	l.Info("delete_order_success", "order_id", id)
	return c.JSON(http.StatusOK, transport.SuccessResponse{Success: "Order deleted"})
}

func (h *OrderHTTP) Cancel(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.cancel")

	res, err := h.Svc.CancelLatest(ctx)
	if err != nil {
		return fail(l, "cancel_order", err, "No order to cancel")
	}

	l.Info("cancel_order_success", "order_id", res.Order.ID, "items_deleted", res.ItemsDeleted)
	return c.JSON(http.StatusOK, transport.CancelOrderResponse{
		Success:      "Order cancelled",
		OrderID:      res.Order.ID,
		ItemsDeleted: int(res.ItemsDeleted),
	})
}

func (h *OrderHTTP) ListItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orderitem.list")

	items, err := h.Svc.ListItems(ctx)
	if err != nil {
		return fail(l, "list_order_items", err, "No order items found")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *OrderHTTP) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orderitem.create")

	var req transport.CreateOrderItemRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "create_order_item", err)
	}

	item, err := h.Svc.CreateItem(ctx, req)
	if err != nil {
		return fail(l, "create_order_item", err, "Order item not found")
	}

	l.Info("create_order_item_success", "order_item_id", item.ID)
	return c.JSON(http.StatusCreated, item)
}

func (h *OrderHTTP) GetItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orderitem.get")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	item, err := h.Svc.GetItem(ctx, id)
	if err != nil {
		return fail(l, "get_order_item", err, "Order item not found")
	}

	return c.JSON(http.StatusOK, item)
}

func (h *OrderHTTP) DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orderitem.delete")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteItem(ctx, id); err != nil {
		return fail(l, "delete_order_item", err, "Order item not found")
	}

	l.Info("delete_order_item_success", "order_item_id", id)
	return c.JSON(http.StatusOK, transport.SuccessResponse{Success: "Order item deleted"})
}
