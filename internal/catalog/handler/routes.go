package handler

import (
	"github.com/gofiber/fiber/v2"

	accountdomain "github.com/Shohjahon77877/e-shop-florify/internal/account/domain"
	"github.com/Shohjahon77877/e-shop-florify/internal/middleware"
)

type Routes struct {
	Categories *CategoryHandler
	Products   *ProductHandler
	Sales      *SaleHandler
	Verifier   middleware.AccessVerifier
}

func RegisterRoutes(app *fiber.App, r Routes) {
	auth := middleware.Auth(r.Verifier)
	adminRoles := middleware.Roles(accountdomain.RoleSuperadmin, accountdomain.RoleAdmin)

	category := app.Group("/category")
	category.Post("/", auth, adminRoles, r.Categories.Create)
	category.Get("/", r.Categories.List)
	category.Get("/:id", r.Categories.GetByID)
	category.Patch("/:id", auth, adminRoles, r.Categories.Update)
	category.Delete("/:id", auth, adminRoles, r.Categories.Delete)

	product := app.Group("/product")
	product.Post("/", auth, adminRoles, r.Products.Create)
	product.Get("/", r.Products.List)
	product.Get("/:id", r.Products.GetByID)
	product.Patch("/:id", auth, adminRoles, r.Products.Update)
	product.Delete("/:id", auth, adminRoles, r.Products.Delete)

	sale := app.Group("/soldproduct")
	sale.Post("/", auth, adminRoles, r.Sales.Create)
	sale.Get("/", auth, adminRoles, r.Sales.List)
	sale.Get("/:id", auth, adminRoles, r.Sales.GetByID)
	sale.Patch("/:id", auth, adminRoles, r.Sales.Update)
	sale.Delete("/:id", auth, adminRoles, r.Sales.Delete)
}
