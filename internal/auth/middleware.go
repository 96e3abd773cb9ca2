package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/peaceoutommy/DMA-API/internal/pkg/message"
	"github.com/peaceoutommy/DMA-API/internal/pkg/security"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
	"github.com/peaceoutommy/DMA-API/internal/platform/jwt"
	"github.com/peaceoutommy/DMA-API/internal/principal"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	errMissingRole      = errors.New("principal lacks the required role")
	errMissingPermission = errors.New("principal lacks the required permission")
)

type PrincipalLoader interface {
	Principal(ctx context.Context, userID int64) (*principal.Principal, error)
}

// RequireToken verifies the bearer token and loads the principal it names.
// Role and membership are read from the database so that changes apply
// without waiting for the token to expire.
func RequireToken(signer jwt.Signer, loader PrincipalLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Info("Verifying access token...")

			token, err := security.ExtractBearerToken(r)
			if err != nil {
				web.RespondUnauthorized(w, err, message.Unauthorized, nil)
				return
			}

			claims, err := signer.Verify(token)
			if err != nil {
				web.RespondUnauthorized(w, err, message.Unauthorized, nil)
				return
			}

			userID, err := strconv.ParseInt(claims.UserID, 10, 64)
			if err != nil {
				web.RespondUnauthorized(w, fmt.Errorf("%w: subject %q", ErrInvalidToken, claims.UserID), message.Unauthorized, nil)
				return
			}

			p, err := loader.Principal(r.Context(), userID)
			if err != nil {
				if errors.Is(err, ErrUnknownPrincipal) {
					web.RespondUnauthorized(w, err, message.Unauthorized, nil)
					return
				}
				web.RespondInternalServerError(w, err)
				return
			}

			ctx := principal.NewContext(r.Context(), p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole allows principals holding one of roles. It must run after RequireToken.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := principal.FromContext(r.Context())
			if err != nil {
				web.RespondUnauthorized(w, err, message.Unauthorized, nil)
				return
			}

			if !slices.Contains(roles, p.Role) {
				web.RespondForbidden(w, fmt.Errorf("%w: %s", errMissingRole, p.Role), message.Forbidden, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission allows principals whose company role grants name.
// Whether the target company is the principal's own is checked by the service.
func RequirePermission(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := principal.FromContext(r.Context())
			if err != nil {
				web.RespondUnauthorized(w, err, message.Unauthorized, nil)
				return
			}

			if !p.HasPermission(name) {
				web.RespondForbidden(w, fmt.Errorf("%w: %s", errMissingPermission, name), message.Forbidden, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
