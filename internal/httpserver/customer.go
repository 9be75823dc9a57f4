package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant/internal/service"
	"github.com/Skotchmaster/restaurant/internal/transport"
	"github.com/Skotchmaster/restaurant/pkg/logging"
)

type CustomerHTTP struct {
	Svc *service.CustomerService
}

func (h *CustomerHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.list")

	customers, err := h.Svc.List(ctx)
	if err != nil {
		return fail(l, "list_customers", err, "No customers found")
	}

	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.create")

	var req transport.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "create_customer", err)
	}

	cust, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(l, "create_customer", err, "Customer not found")
	}

	setIdentityCookies(c, cust)
	l.Info("create_customer_success", "customer_id", cust.ID)
	return c.JSON(http.StatusCreated, cust)
}

func (h *CustomerHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.get")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	cust, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(l, "get_customer", err, "Customer not found")
	}

	return c.JSON(http.StatusOK, cust)
}

func (h *CustomerHTTP) Patch(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.patch")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.PatchCustomerRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "patch_customer", err)
	}

	cust, err := h.Svc.Patch(ctx, id, req)
	if err != nil {
		return fail(l, "patch_customer", err, "Customer not found")
	}

	expireRequestCookies(c, CookieCustomerName, CookieCustomerEmail)
	setIdentityCookies(c, cust)

	l.Info("patch_customer_success", "customer_id", cust.ID)
	return c.JSON(http.StatusOK, cust)
}

func (h *CustomerHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.delete")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(l, "delete_customer", err, "Customer not found")
	}

	l.Info("delete_customer_success", "customer_id", id)
	return c.JSON(http.StatusOK, transport.SuccessResponse{Success: "Customer deleted"})
}
