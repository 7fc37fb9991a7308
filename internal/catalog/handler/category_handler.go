package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/dto"
	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/service"
	"github.com/Shohjahon77877/e-shop-florify/internal/respond"
)

type CategoryHandler struct {
	categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateCategoryInput
	if err := c.BodyParser(&input); err != nil {
		return respond.Error(c, apperr.BadRequest("Invalid input"))
	}
	if err := input.Validate(); err != nil {
		return respond.Error(c, err)
	}

	category, err := h.categories.Create(c.Context(), input)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, category, fiber.StatusCreated)
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.Context())
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, categories)
}

func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	category, err := h.categories.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateCategoryInput
	if err := c.BodyParser(&input); err != nil {
		return respond.Error(c, apperr.BadRequest("Invalid input"))
	}

	category, err := h.categories.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, category)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.categories.Delete(c.Context(), c.Params("id")); err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, fiber.Map{
		"message": "Category successfully deleted",
	})
}
