package session

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieStore keeps the session inside an HS256 signed token, so nothing is
// stored server side.
type CookieStore struct {
	Secret []byte
	TTL    time.Duration
	Secure bool
}

func NewCookieStore(secret []byte, ttl time.Duration) (*CookieStore, error) {
	if len(secret) == 0 {
		return nil, errors.New("session secret is empty")
	}
	return &CookieStore{Secret: secret, TTL: ttl}, nil
}

func (s *CookieStore) Load(_ context.Context, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return &Session{}, nil
	}

	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return &Session{}, nil
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return &Session{}, nil
	}
	return &Session{ID: claims.ID, customerID: uint(id), hasID: true}, nil
}

func (s *CookieStore) Save(_ context.Context, w http.ResponseWriter, sess *Session) error {
	id, ok := sess.CustomerID()
	if !ok {
		expire(w, s.Secure)
		return nil
	}

	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(id), 10),
		ID:        sess.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return err
	}

	write(w, signed, int(s.TTL.Seconds()), s.Secure)
	return nil
}
