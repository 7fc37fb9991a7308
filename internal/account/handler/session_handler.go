package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/dto"
	"github.com/Shohjahon77877/e-shop-florify/internal/account/service"
	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	"github.com/Shohjahon77877/e-shop-florify/internal/respond"
)

// SessionHandler exposes the sign-in lifecycle for one role. The refresh
// token travels exclusively in a role-scoped http-only cookie; the access
// token only ever appears in the response body.
type SessionHandler struct {
	sessions   *service.SessionService
	cookieName string
	refreshTTL time.Duration
}

func NewSessionHandler(sessions *service.SessionService, cookieName string, refreshTTL time.Duration) *SessionHandler {
	return &SessionHandler{
		sessions:   sessions,
		cookieName: cookieName,
		refreshTTL: refreshTTL,
	}
}

func (h *SessionHandler) SignIn(c *fiber.Ctx) error {
	var input dto.SignInInput
	if err := c.BodyParser(&input); err != nil {
		return respond.Error(c, apperr.BadRequest("Invalid input"))
	}
	if err := input.Validate(); err != nil {
		return respond.Error(c, err)
	}

	if err := h.sessions.SignIn(c.Context(), input.Email, input.Password); err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, fiber.Map{
		"message": "OTP sent successfully",
	})
}

func (h *SessionHandler) ConfirmSignIn(c *fiber.Ctx) error {
	var input dto.ConfirmSignInInput
	if err := c.BodyParser(&input); err != nil {
		return respond.Error(c, apperr.BadRequest("Invalid input"))
	}
	if err := input.Validate(); err != nil {
		return respond.Error(c, err)
	}

	account, pair, err := h.sessions.ConfirmSignIn(c.Context(), input.Email, input.OTP)
	if err != nil {
		return respond.Error(c, err)
	}

	h.setRefreshCookie(c, pair.RefreshToken)

	return respond.Success(c, fiber.Map{
		"account": account,
		"token":   pair.AccessToken,
	})
}

func (h *SessionHandler) Refresh(c *fiber.Ctx) error {
	accessToken, err := h.sessions.Refresh(c.Context(), c.Cookies(h.cookieName))
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, fiber.Map{
		"token": accessToken,
	})
}

func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c.Context(), c.Cookies(h.cookieName)); err != nil {
		return respond.Error(c, err)
	}

	h.clearRefreshCookie(c)

	return respond.Success(c, fiber.Map{})
}

func (h *SessionHandler) setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  time.Now().Add(h.refreshTTL),
		HTTPOnly: true,
		Secure:   true,
	})
}

func (h *SessionHandler) clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
	})
}
