package httpinterface

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	RoleOperator    = "operator"
	RoleParticipant = "participant"

	// AccountHeader carries the caller identity when auth is disabled.
	AccountHeader = "X-Pooling-Account"
	// tokenQueryParam is used by websocket clients that can't set headers.
	tokenQueryParam = "token"
)

var (
	ErrMissingToken   = errors.New("missing bearer token")
	ErrInvalidToken   = errors.New("invalid bearer token")
	ErrMissingCaller  = errors.New("missing caller account")
	ErrOperatorOnly   = errors.New("operation restricted to operators")
	ErrInvalidRole    = errors.New("role must be either operator or participant")
	ErrMissingSecret  = errors.New("missing auth secret")
	ErrMissingSubject = errors.New("missing token subject")
)

// Claims of the bearer tokens accepted by the REST interface. The subject is
// the account of the caller.
type Claims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

type callerCtxKey struct{}

type caller struct {
	account string
	role    string
}

// GenerateToken returns an HS256 token for the given account and role, signed
// with secret. A zero ttl means the token never expires.
func GenerateToken(secret, account, role string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}
	if account == "" {
		return "", ErrMissingSubject
	}
	if role != RoleOperator && role != RoleParticipant {
		return "", ErrInvalidRole
	}

	now := time.Now()
	claims := Claims{
		Role: role,
		StandardClaims: jwt.StandardClaims{
			Subject:  account,
			IssuedAt: now.Unix(),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = now.Add(ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseToken(secret, tokenString string) (*caller, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		},
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != RoleOperator && claims.Role != RoleParticipant {
		return nil, ErrInvalidRole
	}
	return &caller{claims.Subject, claims.Role}, nil
}

func authenticate(noAuth bool, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if noAuth {
				c := &caller{r.Header.Get(AccountHeader), RoleOperator}
				next.ServeHTTP(w, r.WithContext(withCaller(r.Context(), c)))
				return
			}

			tokenString := bearerToken(r)
			if tokenString == "" {
				writeError(w, http.StatusUnauthorized, ErrMissingToken)
				return
			}
			c, err := parseToken(secret, tokenString)
			if err != nil {
				writeError(w, http.StatusUnauthorized, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(withCaller(r.Context(), c)))
		})
	}
}

func operatorOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := callerFromContext(r.Context())
		if c == nil || c.role != RoleOperator {
			writeError(w, http.StatusForbidden, ErrOperatorOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return r.URL.Query().Get(tokenQueryParam)
}

func withCaller(ctx context.Context, c *caller) context.Context {
	return context.WithValue(ctx, callerCtxKey{}, c)
}

func callerFromContext(ctx context.Context) *caller {
	c, _ := ctx.Value(callerCtxKey{}).(*caller)
	return c
}
