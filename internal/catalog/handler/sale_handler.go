package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/dto"
	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/service"
	"github.com/Shohjahon77877/e-shop-florify/internal/respond"
)

type SaleHandler struct {
	sales *service.SaleService
}

func NewSaleHandler(sales *service.SaleService) *SaleHandler {
	return &SaleHandler{sales: sales}
}

func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateSoldProductInput
	if err := c.BodyParser(&input); err != nil {
		return respond.Error(c, apperr.BadRequest("Invalid input"))
	}
	if err := input.Validate(); err != nil {
		return respond.Error(c, err)
	}

	sale, err := h.sales.Create(c.Context(), input)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, sale, fiber.StatusCreated)
}

func (h *SaleHandler) List(c *fiber.Ctx) error {
	sales, err := h.sales.List(c.Context())
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, sales)
}

func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.sales.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, sale)
}

func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateSoldProductInput
	if err := c.BodyParser(&input); err != nil {
		return respond.Error(c, apperr.BadRequest("Invalid input"))
	}
	if err := input.Validate(); err != nil {
		return respond.Error(c, err)
	}

	sale, err := h.sales.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, sale)
}

func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.sales.Delete(c.Context(), c.Params("id")); err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, fiber.Map{
		"message": "SoldProduct successfully deleted",
	})
}
