package session

import (
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant/pkg/logging"
)

// Middleware loads the session before the handler runs and writes it back
// just before the response headers go out, only when the handler changed it.
func Middleware(store Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := req.Context()
			l := logging.FromContext(ctx)

			sess, err := store.Load(ctx, req)
			if err != nil {
				l.Warn("session_load_failed", "error", err)
				sess = &Session{}
			}
			c.SetRequest(req.WithContext(IntoContext(ctx, sess)))

			c.Response().Before(func() {
				if !sess.Changed() {
					return
				}
				if err := store.Save(ctx, c.Response(), sess); err != nil {
					l.Error("session_save_failed", "error", err)
				}
			})

			return next(c)
		}
	}
}
