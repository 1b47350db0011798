// internal/httpserver/token.go
//
// Session tokens. POST /game/new returns an HS256 JWT whose subject is the
// game ID; every other /game route requires it, either as
// "Authorization: Bearer <token>" or in the wordle_game cookie.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer = "wordle-engine"
	cookieName  = "wordle_game"
)

var errBadToken = errors.New("invalid session token")

type tokenSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func newTokenSigner(secret string, ttl time.Duration) *tokenSigner {
	return &tokenSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// sign issues a token for the given game ID.
func (t *tokenSigner) sign(gameID string) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   gameID,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := tok.SignedString(t.secret)
	return ss, exp, err
}

// verify returns the game ID carried by a valid token.
func (t *tokenSigner) verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !tok.Valid {
		return "", errBadToken
	}
	if claims.Subject == "" {
		return "", errBadToken
	}
	return claims.Subject, nil
}

// setCookie mirrors the token into an HttpOnly cookie for browser clients.
func setCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a token from the Authorization header or cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

// ctxGameKey is the context key type for the authenticated game ID.
type ctxGameKey struct{}

// requireSession enforces a valid session token and injects the game ID
// into the request context.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerOrCookie(r)
		if raw == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		id, err := s.tokens.verify(raw)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		ctx := context.WithValue(r.Context(), ctxGameKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func gameID(ctx context.Context) string {
	id, _ := ctx.Value(ctxGameKey{}).(string)
	return id
}
