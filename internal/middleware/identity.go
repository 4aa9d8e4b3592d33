package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mealmetrics/meal-metrics-backend/internal/auth"
	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// IdentityFrom extracts the authenticated identity set by IdentityMiddleware.
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	return id, ok
}

// GenerateToken signs a short-lived HS256 token carrying the same identity
// the key headers would have produced.
func GenerateToken(identity domain.Identity, secret string) (string, error) {
	claims := jwt.MapClaims{
		"userId": identity.UserID,
		"role":   identity.Role,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
		"iat":    time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// IdentityMiddleware authenticates every request on the protected subrouter.
// A bearer token (when a JWT secret is configured) or the X-API-Key /
// X-User-Id header pair both resolve to the same identity shape.
func IdentityMiddleware(gate *auth.Gate, jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if header := r.Header.Get("Authorization"); header != "" && jwtSecret != "" {
				tokenStr := strings.TrimPrefix(header, "Bearer ")
				if tokenStr == header {
					unauthorized(w, "invalid authorization format")
					return
				}
				identity, ok := parseToken(tokenStr, jwtSecret)
				if !ok {
					unauthorized(w, "invalid or expired token")
					return
				}
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
				return
			}

			identity, err := gate.Authenticate(r.Header.Get("X-API-Key"), r.Header.Get("X-User-Id"))
			if err != nil {
				unauthorized(w, err.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
		})
	}
}

func parseToken(tokenStr, secret string) (domain.Identity, bool) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return domain.Identity{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Identity{}, false
	}
	userID, _ := claims["userId"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || (role != domain.RoleAdmin && role != domain.RoleUser) {
		return domain.Identity{}, false
	}
	return domain.Identity{UserID: userID, Role: role}, true
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}
