package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/domain"
	"github.com/Shohjahon77877/e-shop-florify/internal/account/service"
	"github.com/Shohjahon77877/e-shop-florify/internal/middleware"
)

func newTokens() *service.TokenService {
	return service.NewTokenService("access-secret", "refresh-secret", 15, 43200)
}

func TestAuth(t *testing.T) {
	tokens := newTokens()

	app := fiber.New()
	app.Get("/protected", middleware.Auth(tokens), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":   c.Locals(middleware.LocalAccountID),
			"role": c.Locals(middleware.LocalAccountRole),
		})
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing bearer prefix", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token passes claims through", func(t *testing.T) {
		token, err := tokens.IssueAccess("account-1", domain.RoleAdmin)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestRoles(t *testing.T) {
	tokens := newTokens()

	app := fiber.New()
	app.Get("/admin-only",
		middleware.Auth(tokens),
		middleware.Roles(domain.RoleSuperadmin, domain.RoleAdmin),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	t.Run("allowed role", func(t *testing.T) {
		token, err := tokens.IssueAccess("account-1", domain.RoleAdmin)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("role claim absent", func(t *testing.T) {
		token, err := tokens.IssueAccess("account-1", "")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestSelf(t *testing.T) {
	tokens := newTokens()

	app := fiber.New()
	app.Get("/accounts/:id",
		middleware.Auth(tokens),
		middleware.Self(),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	t.Run("own record", func(t *testing.T) {
		token, err := tokens.IssueAccess("account-1", "")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/accounts/account-1", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("someone else's record", func(t *testing.T) {
		token, err := tokens.IssueAccess("account-1", "")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/accounts/account-2", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("superadmin bypasses the check", func(t *testing.T) {
		token, err := tokens.IssueAccess("the-superadmin", domain.RoleSuperadmin)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/accounts/account-2", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
