// Package principal carries the authenticated caller through a request.
package principal

import (
	"context"
	"errors"
	"slices"
)

const (
	RoleDonor          = "DONOR"
	RoleCompanyAccount = "COMPANY_ACCOUNT"
	RoleAdmin          = "ADMIN"
)

var ErrMissing = errors.New("no principal in context")

// Principal is the caller resolved from a bearer token and the database.
// CompanyID is zero when the user has no company membership.
type Principal struct {
	UserID        int64
	Username      string
	Role          string
	CompanyID     int64
	CompanyRoleID int64
	CompanyRole   string
	Permissions   []string
}

func (p *Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// HasPermission reports whether the principal's company role grants name.
// Admins hold every permission.
func (p *Principal) HasPermission(name string) bool {
	return p.IsAdmin() || slices.Contains(p.Permissions, name)
}

// CanActFor reports whether the principal may act on behalf of companyID.
func (p *Principal) CanActFor(companyID int64) bool {
	return p.IsAdmin() || (p.CompanyID != 0 && p.CompanyID == companyID)
}

type ctxKey int

const principalCtxKey ctxKey = iota + 1

//nolint:ireturn // returning context.Context is intentional
func NewContext(baseCtx context.Context, p *Principal) context.Context {
	return context.WithValue(baseCtx, principalCtxKey, p)
}

func FromContext(ctx context.Context) (*Principal, error) {
	p, ok := ctx.Value(principalCtxKey).(*Principal)
	if !ok || p == nil {
		return nil, ErrMissing
	}
	return p, nil
}
