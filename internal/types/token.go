package types

// TokenClaims is the authenticated identity carried by a JWT and stored
// in the request context by the auth middleware.
type TokenClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}
