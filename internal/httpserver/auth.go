package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant/internal/service"
	"github.com/Skotchmaster/restaurant/internal/session"
	"github.com/Skotchmaster/restaurant/internal/transport"
	"github.com/Skotchmaster/restaurant/pkg/logging"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.signup")

	var req transport.SignupRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "signup", err)
	}

	cust, err := h.Svc.Signup(ctx, req)
	if err != nil {
		return fail(l, "signup", err, "Customer not found")
	}

	session.FromContext(ctx).SetCustomerID(cust.ID)

	l.Info("signup_success", "customer_id", cust.ID)
	return c.JSON(http.StatusCreated, cust)
}

func (h *AuthHTTP) CheckSession(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.check_session")

	id, ok := session.FromContext(ctx).CustomerID()
	if !ok {
		l.Warn("check_session_failed", "status", http.StatusUnauthorized, "reason", "no session")
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	cust, err := h.Svc.SessionCustomer(ctx, id)
	if err != nil {
		return fail(l, "check_session", err, "Unauthorized")
	}

	return c.JSON(http.StatusOK, cust)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "login", err)
	}

	cust, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
		}
		return fail(l, "login", err, "Customer not found")
	}

	session.FromContext(ctx).SetCustomerID(cust.ID)
	setIdentityCookies(c, cust)

	l.Info("login_success", "customer_id", cust.ID)
	return c.JSON(http.StatusOK, cust)
}

// Logout clears the client's cookies. The server side session record is
// left as is and simply stops being presented.
func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.logout")

	expireRequestCookies(c)

	l.Info("logout_success")
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Logged out"})
}

func (h *AuthHTTP) Cookies(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.cookies")

	ck, err := c.Cookie(CookieCustomerEmail)
	if err != nil || ck.Value == "" {
		l.Warn("cookies_failed", "status", http.StatusNotFound, "reason", "no customer_email cookie")
		return echo.NewHTTPError(http.StatusNotFound, "No customer cookie found")
	}

	cust, err := h.Svc.CustomerByEmail(ctx, ck.Value)
	if err != nil {
		return fail(l, "cookies", err, fmt.Sprintf("No customer with email %s", ck.Value))
	}

	return c.JSON(http.StatusOK, cust)
}
