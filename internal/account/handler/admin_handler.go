package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/dto"
	"github.com/Shohjahon77877/e-shop-florify/internal/account/service"
	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	"github.com/Shohjahon77877/e-shop-florify/internal/respond"
)

type AdminHandler struct {
	admins *service.AdminService
}

func NewAdminHandler(admins *service.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateAdminInput
	if err := c.BodyParser(&input); err != nil {
		return respond.Error(c, apperr.BadRequest("Invalid input"))
	}
	if err := input.Validate(); err != nil {
		return respond.Error(c, err)
	}

	admin, err := h.admins.Create(c.Context(), input)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, admin, fiber.StatusCreated)
}

func (h *AdminHandler) List(c *fiber.Ctx) error {
	admins, err := h.admins.List(c.Context())
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, admins)
}

func (h *AdminHandler) GetByID(c *fiber.Ctx) error {
	admin, err := h.admins.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, admin)
}

func (h *AdminHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateAdminInput
	if err := c.BodyParser(&input); err != nil {
		return respond.Error(c, apperr.BadRequest("Invalid input"))
	}
	if err := input.Validate(); err != nil {
		return respond.Error(c, err)
	}

	admin, err := h.admins.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, admin)
}

func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	if err := h.admins.Delete(c.Context(), c.Params("id")); err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, fiber.Map{
		"message": "Admin successfully deleted",
	})
}
