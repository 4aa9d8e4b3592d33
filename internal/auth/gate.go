package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
)

// Gate implements the two-key access scheme: one static key grants the admin
// role, the other the user role. User-role callers must also claim a user id.
type Gate struct {
	adminKey string
	userKey  string
}

func NewGate(adminKey, userKey string) *Gate {
	return &Gate{adminKey: adminKey, userKey: userKey}
}

// Authenticate maps a presented key (and optional claimed user id) to an
// identity. Admin callers without a claimed id act as "admin".
func (g *Gate) Authenticate(presentedKey, claimedUserID string) (domain.Identity, error) {
	if presentedKey == "" {
		return domain.Identity{}, fmt.Errorf("%w: API key required", domain.ErrUnauthorized)
	}

	if keyEqual(presentedKey, g.adminKey) {
		id := claimedUserID
		if id == "" {
			id = domain.RoleAdmin
		}
		return domain.Identity{UserID: id, Role: domain.RoleAdmin}, nil
	}

	if keyEqual(presentedKey, g.userKey) {
		if claimedUserID == "" {
			return domain.Identity{}, fmt.Errorf("%w: user ID required for non-admin access", domain.ErrUnauthorized)
		}
		return domain.Identity{UserID: claimedUserID, Role: domain.RoleUser}, nil
	}

	return domain.Identity{}, fmt.Errorf("%w: invalid API key", domain.ErrUnauthorized)
}

// Authorize reports whether the identity may act on the target user: always
// for admins, only on itself for regular users.
func (g *Gate) Authorize(identity domain.Identity, targetUserID string) bool {
	if identity.Role == domain.RoleAdmin {
		return true
	}
	return identity.UserID == targetUserID
}

func keyEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
