package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/dto"
	"github.com/Shohjahon77877/e-shop-florify/internal/account/service"
	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	"github.com/Shohjahon77877/e-shop-florify/internal/respond"
)

type ClientHandler struct {
	clients  *service.ClientService
	sessions *SessionHandler
}

func NewClientHandler(clients *service.ClientService, sessions *SessionHandler) *ClientHandler {
	return &ClientHandler{clients: clients, sessions: sessions}
}

// SignUp registers a client and immediately issues a token pair — the one
// flow that skips the OTP challenge.
func (h *ClientHandler) SignUp(c *fiber.Ctx) error {
	var input dto.ClientSignUpInput
	if err := c.BodyParser(&input); err != nil {
		return respond.Error(c, apperr.BadRequest("Invalid input"))
	}
	if err := input.Validate(); err != nil {
		return respond.Error(c, err)
	}

	client, err := h.clients.SignUp(c.Context(), input)
	if err != nil {
		return respond.Error(c, err)
	}

	pair, err := h.sessions.sessions.IssueTokens(client)
	if err != nil {
		return respond.Error(c, err)
	}

	h.sessions.setRefreshCookie(c, pair.RefreshToken)

	return respond.Success(c, fiber.Map{
		"account": client,
		"token":   pair.AccessToken,
	}, fiber.StatusCreated)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateClientInput
	if err := c.BodyParser(&input); err != nil {
		return respond.Error(c, apperr.BadRequest("Invalid input"))
	}
	if err := input.Validate(); err != nil {
		return respond.Error(c, err)
	}

	client, err := h.clients.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, client)
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.clients.Delete(c.Context(), c.Params("id")); err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, fiber.Map{
		"message": "Client successfully deleted",
	})
}
