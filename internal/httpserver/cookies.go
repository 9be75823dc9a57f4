package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant/internal/models"
)

const (
	CookieCustomerName  = "customer_name"
	CookieCustomerEmail = "customer_email"
)

func CreateCookie(name, value, path string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		SameSite: http.SameSiteLaxMode,
	}
}

func DeleteCookie(name, path string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	}
}

func setIdentityCookies(c echo.Context, cust *models.Customer) {
	c.SetCookie(CreateCookie(CookieCustomerName, cust.FirstName, "/"))
	c.SetCookie(CreateCookie(CookieCustomerEmail, cust.Email, "/"))
}

// expireRequestCookies expires every cookie the client sent, except the
// names in keep.
func expireRequestCookies(c echo.Context, keep ...string) {
	seen := map[string]bool{}
	for _, k := range keep {
		seen[k] = true
	}
	for _, ck := range c.Cookies() {
		if seen[ck.Name] {
			continue
		}
		seen[ck.Name] = true
		c.SetCookie(DeleteCookie(ck.Name, "/"))
	}
}
