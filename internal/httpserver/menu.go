package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant/internal/service"
	"github.com/Skotchmaster/restaurant/internal/transport"
	"github.com/Skotchmaster/restaurant/pkg/logging"
)

type MenuHTTP struct {
	Svc *service.MenuService
}

func (h *MenuHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.list")

	items, err := h.Svc.List(ctx)
	if err != nil {
		return fail(l, "list_menu", err, "No menu items found")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *MenuHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.get")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	item, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(l, "get_menu_item", err, "Menu item not found")
	}

	return c.JSON(http.StatusOK, item)
}

func (h *MenuHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.delete")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(l, "delete_menu_item", err, "Menu item not found")
	}

	l.Info("delete_menu_item_success", "menu_item_id", id)
	return c.JSON(http.StatusOK, transport.SuccessResponse{Success: "Menu item deleted"})
}

func (h *MenuHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.search")

	size := service.DefaultSearchSize
	if v := c.QueryParam("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "size must be an integer")
		}
		size = n
	}

	total, items, err := h.Svc.Search(ctx, c.QueryParam("q"), size)
	if err != nil {
		return fail(l, "search_menu", err, "No menu items found")
	}

	return c.JSON(http.StatusOK, transport.MenuSearchResponse{Total: total, Items: items})
}
