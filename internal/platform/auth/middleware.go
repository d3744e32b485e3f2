package auth

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/errs"
)

type contextKey string

const (
	subjectKey contextKey = "auth_subject"
	roleKey    contextKey = "auth_role"
)

// Skipper reports whether a request bypasses token verification.
type Skipper func(c echo.Context) bool

// JWT verifies the Bearer token on each request and stores the subject and
// role on the request context. Requests matched by skip pass through
// unauthenticated.
func JWT(issuer *TokenIssuer, skip Skipper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skip != nil && skip(c) {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return errs.Unauthorized("missing authorization header")
			}
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return errs.Unauthorized("authorization header must use Bearer scheme")
			}

			claims, err := issuer.Verify(tokenString)
			if err != nil {
				return errs.Unauthorized("invalid or expired token")
			}

			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, subjectKey, claims.Subject)
			ctx = context.WithValue(ctx, roleKey, claims.Role)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// SubjectFromContext returns the authenticated subject id, if any.
func SubjectFromContext(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey).(string)
	return s
}

// RoleFromContext returns the authenticated role, if any.
func RoleFromContext(ctx context.Context) string {
	r, _ := ctx.Value(roleKey).(string)
	return r
}

// RequireRole rejects requests whose token does not carry one of the given
// roles. Admin passes every check.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := RoleFromContext(c.Request().Context())
			if role == RoleAdmin {
				return next(c)
			}
			for _, required := range roles {
				if role == required {
					return next(c)
				}
			}
			return errs.Forbidden("required role: " + strings.Join(roles, " or "))
		}
	}
}
