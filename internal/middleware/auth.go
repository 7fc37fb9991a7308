package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/domain"
	"github.com/Shohjahon77877/e-shop-florify/internal/account/service"
	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	"github.com/Shohjahon77877/e-shop-florify/internal/respond"
)

// Locals keys set by Auth and read by the role/self guards.
const (
	LocalAccountID   = "accountID"
	LocalAccountRole = "accountRole"
)

// AccessVerifier validates an access token and returns its claims.
type AccessVerifier interface {
	VerifyAccess(tokenString string) (*service.JWTCustomClaims, error)
}

// Auth requires a valid Bearer access token and stores its claims in the
// request locals.
func Auth(verifier AccessVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if auth == "" {
			return respond.Error(c, apperr.Unauthorized("Authorization error"))
		}

		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" {
			return respond.Error(c, apperr.Unauthorized("Token error"))
		}

		claims, err := verifier.VerifyAccess(token)
		if err != nil {
			return respond.Error(c, apperr.Unauthorized("Unauthorized"))
		}

		c.Locals(LocalAccountID, claims.AccountID)
		c.Locals(LocalAccountRole, claims.Role)

		return c.Next()
	}
}

// Roles allows the request through only when the authenticated account's
// role claim is in the given list.
func Roles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalAccountRole).(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		return respond.Error(c, apperr.ErrForbidden)
	}
}

// Self allows superadmins through unconditionally and everyone else only
// when operating on their own record.
func Self() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalAccountRole).(string)
		if role == domain.RoleSuperadmin {
			return c.Next()
		}

		id, _ := c.Locals(LocalAccountID).(string)
		if id != "" && id == c.Params("id") {
			return c.Next()
		}

		return respond.Error(c, apperr.ErrForbidden)
	}
}
