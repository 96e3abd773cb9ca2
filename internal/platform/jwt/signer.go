package jwt

import (
	"time"
)

// Claims represents the JWT claims that are processed for authentication.
// CompanyID and CompanyRole are empty for users without a company membership.
type Claims struct {
	UserID      string
	Username    string
	Role        string
	CompanyID   int64
	CompanyRole string
}

// Signer defines methods for signing and verifying JWT tokens.
type Signer interface {
	Sign(claims Claims, duration time.Duration) (token string, err error)
	Verify(tokenString string) (*Claims, error)
}
