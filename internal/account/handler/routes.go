package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/domain"
	"github.com/Shohjahon77877/e-shop-florify/internal/middleware"
)

// Routes bundles everything the account area mounts on the app.
type Routes struct {
	AdminSessions    *SessionHandler
	SalesmanSessions *SessionHandler
	ClientSessions   *SessionHandler
	Admins           *AdminHandler
	Salesmen         *SalesmanHandler
	Clients          *ClientHandler
	Verifier         middleware.AccessVerifier
}

func RegisterRoutes(app *fiber.App, r Routes) {
	auth := middleware.Auth(r.Verifier)
	superadminOnly := middleware.Roles(domain.RoleSuperadmin)
	adminRoles := middleware.Roles(domain.RoleSuperadmin, domain.RoleAdmin)

	admin := app.Group("/admin")
	admin.Post("/signin", r.AdminSessions.SignIn)
	admin.Post("/confirmsignin", r.AdminSessions.ConfirmSignIn)
	admin.Post("/token", r.AdminSessions.Refresh)
	admin.Post("/logout", r.AdminSessions.Logout)
	admin.Post("/", auth, superadminOnly, r.Admins.Create)
	admin.Get("/", auth, superadminOnly, r.Admins.List)
	admin.Get("/:id", auth, middleware.Self(), r.Admins.GetByID)
	admin.Patch("/:id", auth, middleware.Self(), r.Admins.Update)
	admin.Delete("/:id", auth, superadminOnly, r.Admins.Delete)

	salesman := app.Group("/salesman")
	salesman.Post("/signin", r.SalesmanSessions.SignIn)
	salesman.Post("/confirmsignin", r.SalesmanSessions.ConfirmSignIn)
	salesman.Post("/token", r.SalesmanSessions.Refresh)
	salesman.Post("/logout", r.SalesmanSessions.Logout)
	salesman.Post("/", auth, adminRoles, r.Salesmen.Create)
	salesman.Get("/", r.Salesmen.List)
	salesman.Get("/:id", r.Salesmen.GetByID)
	salesman.Patch("/:id", auth, adminRoles, r.Salesmen.Update)
	salesman.Delete("/:id", auth, adminRoles, r.Salesmen.Delete)

	client := app.Group("/client")
	client.Post("/signup", r.Clients.SignUp)
	client.Post("/signin", r.ClientSessions.SignIn)
	client.Post("/confirmsignin", r.ClientSessions.ConfirmSignIn)
	client.Post("/token", r.ClientSessions.Refresh)
	client.Post("/logout", r.ClientSessions.Logout)
	client.Patch("/:id", auth, middleware.Self(), r.Clients.Update)
	client.Delete("/:id", auth, middleware.Self(), r.Clients.Delete)
}
