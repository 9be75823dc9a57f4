package session

import (
	"context"
	"net/http"
)

const CookieName = "session"

// Session is the per-request view of a client's server side state.
type Session struct {
	ID string

	customerID uint
	hasID      bool
	changed    bool
}

func (s *Session) CustomerID() (uint, bool) {
	return s.customerID, s.hasID
}

func (s *Session) SetCustomerID(id uint) {
	if s.hasID && s.customerID == id {
		return
	}
	s.customerID, s.hasID = id, true
	s.changed = true
}

func (s *Session) Clear() {
	if !s.hasID {
		return
	}
	s.customerID, s.hasID = 0, false
	s.changed = true
}

func (s *Session) Changed() bool { return s.changed }

type Store interface {
	Load(ctx context.Context, r *http.Request) (*Session, error)
	Save(ctx context.Context, w http.ResponseWriter, s *Session) error
}

type ctxKey struct{}

func IntoContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the request's session. Without the middleware it
// returns a fresh session that is never persisted.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(ctxKey{}).(*Session); ok && s != nil {
		return s
	}
	return &Session{}
}

func expire(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func write(w http.ResponseWriter, value string, maxAge int, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
