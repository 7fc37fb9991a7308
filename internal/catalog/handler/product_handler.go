package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/dto"
	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/service"
	"github.com/Shohjahon77877/e-shop-florify/internal/respond"
)

type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return respond.Error(c, apperr.BadRequest("Invalid input"))
	}
	if err := input.Validate(); err != nil {
		return respond.Error(c, err)
	}

	product, err := h.products.Create(c.Context(), input)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, product, fiber.StatusCreated)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.products.List(c.Context())
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, products)
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.products.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return respond.Error(c, apperr.BadRequest("Invalid input"))
	}
	if err := input.Validate(); err != nil {
		return respond.Error(c, err)
	}

	product, err := h.products.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.products.Delete(c.Context(), c.Params("id")); err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, fiber.Map{
		"message": "Product successfully deleted",
	})
}
