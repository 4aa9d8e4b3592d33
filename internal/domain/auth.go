package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Identity is the authenticated caller: the user id it may act as, and its
// role. Admin identities may act on any user.
type Identity struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

type TokenRequest struct {
	UserID string `json:"userId,omitempty"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
