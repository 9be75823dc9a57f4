package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRouteAndStatus(t *testing.T) {
	m := New("restaurant_test")

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/menu/:id", func(c echo.Context) error {
		if c.Param("id") == "0" {
			return echo.NewHTTPError(http.StatusNotFound, "missing")
		}
		return c.NoContent(http.StatusOK)
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	for _, id := range []string{"1", "2", "0"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu/"+id, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestTotal.WithLabelValues("GET", "/menu/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestTotal.WithLabelValues("GET", "/menu/:id", "404")))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "restaurant_test_http_requests_total"))
}

func TestNilMetricsHelpersAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.OrderCreated()
		m.OrderCancelled()
		m.EventFailed("order_events")
	})

	live := New("restaurant_test")
	live.OrderCreated()
	live.OrderCancelled()
	live.OrderCancelled()
	assert.Equal(t, 1.0, testutil.ToFloat64(live.OrdersCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(live.OrdersCancelled))
}
