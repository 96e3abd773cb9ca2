package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/peaceoutommy/DMA-API/internal/config"
	"github.com/peaceoutommy/DMA-API/internal/pkg/security"
)

var ErrMissingSubject = errors.New("token has no subject")

// CustomClaims carries the user's identity and company membership.
type CustomClaims struct {
	Username    string `json:"username,omitempty"`
	Role        string `json:"role,omitempty"`
	Company     int64  `json:"company,omitempty"`
	CompanyRole string `json:"company_role,omitempty"`
	jwt.RegisteredClaims
}

// golangJWTSigner implements the Signer interface using the golang-jwt library.
type golangJWTSigner struct {
	method jwt.SigningMethod
	key    []byte
	jtiLen uint32
	issuer string
}

var _ Signer = (*golangJWTSigner)(nil)

// NewGolangJWTSigner creates an HS256 signer with the provided JWT config and signing key.
func NewGolangJWTSigner(key string, cfg *config.JWTOptions) Signer {
	return &golangJWTSigner{
		method: jwt.SigningMethodHS256,
		key:    []byte(key),
		jtiLen: cfg.JTILength,
		issuer: cfg.Issuer,
	}
}

func (s *golangJWTSigner) Sign(claims Claims, duration time.Duration) (string, error) {
	jti, err := security.GenerateRandomBytesURLEncoded(s.jtiLen)
	if err != nil {
		return "", fmt.Errorf("generate jti with length %d: %w", s.jtiLen, err)
	}

	now := time.Now()
	custom := &CustomClaims{
		Username:    claims.Username,
		Role:        claims.Role,
		Company:     claims.CompanyID,
		CompanyRole: claims.CompanyRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			ID:        jti,
		},
	}

	token := jwt.NewWithClaims(s.method, custom)
	signedToken, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signedToken, nil
}

func (s *golangJWTSigner) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("parse with claims: %w", err)
	}

	custom, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, fmt.Errorf("unknown claims type: %T", token.Claims)
	}

	if custom.Subject == "" {
		return nil, ErrMissingSubject
	}

	return &Claims{
		UserID:      custom.Subject,
		Username:    custom.Username,
		Role:        custom.Role,
		CompanyID:   custom.Company,
		CompanyRole: custom.CompanyRole,
	}, nil
}
