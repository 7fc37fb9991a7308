package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/dto"
	"github.com/Shohjahon77877/e-shop-florify/internal/account/service"
	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	"github.com/Shohjahon77877/e-shop-florify/internal/respond"
)

type SalesmanHandler struct {
	salesmen *service.SalesmanService
}

func NewSalesmanHandler(salesmen *service.SalesmanService) *SalesmanHandler {
	return &SalesmanHandler{salesmen: salesmen}
}

func (h *SalesmanHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateSalesmanInput
	if err := c.BodyParser(&input); err != nil {
		return respond.Error(c, apperr.BadRequest("Invalid input"))
	}
	if err := input.Validate(); err != nil {
		return respond.Error(c, err)
	}

	salesman, err := h.salesmen.Create(c.Context(), input)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, salesman, fiber.StatusCreated)
}

func (h *SalesmanHandler) List(c *fiber.Ctx) error {
	salesmen, err := h.salesmen.List(c.Context())
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, salesmen)
}

func (h *SalesmanHandler) GetByID(c *fiber.Ctx) error {
	salesman, err := h.salesmen.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, salesman)
}

func (h *SalesmanHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateSalesmanInput
	if err := c.BodyParser(&input); err != nil {
		return respond.Error(c, apperr.BadRequest("Invalid input"))
	}
	if err := input.Validate(); err != nil {
		return respond.Error(c, err)
	}

	salesman, err := h.salesmen.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, salesman)
}

func (h *SalesmanHandler) Delete(c *fiber.Ctx) error {
	if err := h.salesmen.Delete(c.Context(), c.Params("id")); err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, fiber.Map{
		"message": "Salesman successfully deleted",
	})
}
