package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant/internal/session"
	pkgdb "github.com/Skotchmaster/restaurant/pkg/db"
	"github.com/Skotchmaster/restaurant/pkg/metrics"
	loggingmw "github.com/Skotchmaster/restaurant/pkg/middleware/logging"
)

type Deps struct {
	DB      *gorm.DB
	Metrics *metrics.Metrics

	Menu      *MenuHTTP
	Customers *CustomerHTTP
	Orders    *OrderHTTP
	Auth      *AuthHTTP
}

type Options struct {
	Logger      *slog.Logger
	Sessions    session.Store
	CORSOrigins []string
}

// New builds the echo instance with the full middleware chain and routes.
func New(opts Options, d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(opts.Logger))
	if d.Metrics != nil {
		e.Use(d.Metrics.Middleware())
	}
	if len(opts.CORSOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAccept},
			AllowCredentials: true,
		}))
	}
	e.Use(session.Middleware(opts.Sessions))

	Register(e, d)
	return e
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if err := pkgdb.Ping(c.Request().Context(), d.DB); err != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
		}
		return c.NoContent(http.StatusOK)
	})
	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))
	}

	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "") })

	e.GET("/menu", d.Menu.List)
	e.GET("/menu/search", d.Menu.Search)
	e.GET("/menu/:id", d.Menu.Get)
	e.DELETE("/menu/:id", d.Menu.Delete)

	e.GET("/customers", d.Customers.List)
	e.POST("/customers", d.Customers.Create)
	e.GET("/customers/:id", d.Customers.Get)
	e.PATCH("/customers/:id", d.Customers.Patch)
	e.DELETE("/customers/:id", d.Customers.Delete)

	e.GET("/orders", d.Orders.List)
	e.POST("/orders", d.Orders.Create)
	e.GET("/orders/:id", d.Orders.Get)
	e.PATCH("/orders/:id", d.Orders.Patch)
	e.DELETE("/orders/:id", d.Orders.Delete)
	e.DELETE("/cancel_order", d.Orders.Cancel)

	e.GET("/orderitems", d.Orders.ListItems)
	e.POST("/orderitems", d.Orders.CreateItem)
	e.GET("/orderitems/:id", d.Orders.GetItem)
	e.DELETE("/orderitems/:id", d.Orders.DeleteItem)

	e.POST("/signup", d.Auth.Signup)
	e.GET("/check_session", d.Auth.CheckSession)
	e.POST("/login", d.Auth.Login)
	e.DELETE("/logout", d.Auth.Logout)
	e.GET("/cookies", d.Auth.Cookies)
}
