package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/domain"
	"github.com/Shohjahon77877/e-shop-florify/internal/account/handler"
	"github.com/Shohjahon77877/e-shop-florify/internal/account/service"
	"github.com/Shohjahon77877/e-shop-florify/internal/mocks"
)

type routesFixture struct {
	app      *fiber.App
	tokens   *service.TokenService
	admins   *mocks.MockAdminStore
	salesmen *mocks.MockSalesmanStore
	clients  *mocks.MockClientStore
	notifier *mocks.MockNotifier
}

func newRoutesFixture(t *testing.T, ctrl *gomock.Controller) *routesFixture {
	t.Helper()

	mockAdmins := mocks.NewMockAdminStore(ctrl)
	mockSalesmen := mocks.NewMockSalesmanStore(ctrl)
	mockClients := mocks.NewMockClientStore(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)

	tokens := service.NewTokenService("access-secret", "refresh-secret", 15, 43200)
	cache := service.NewChallengeCache()
	ttl := 2 * time.Minute

	adminSessions := service.NewSessionService(
		service.AdminLookup(mockAdmins), tokens, cache, mockNotifier, "Admin", true, ttl)
	salesmanSessions := service.NewSessionService(
		service.SalesmanLookup(mockSalesmen), tokens, cache, mockNotifier, "Salesman", false, ttl)
	clientSessions := service.NewSessionService(
		service.ClientLookup(mockClients), tokens, cache, mockNotifier, "Client", false, ttl)

	refreshTTL := 30 * 24 * time.Hour
	clientSessionHandler := handler.NewSessionHandler(clientSessions, "refreshTokenClient", refreshTTL)

	app := fiber.New()
	handler.RegisterRoutes(app, handler.Routes{
		AdminSessions:    handler.NewSessionHandler(adminSessions, "refreshTokenAdmin", refreshTTL),
		SalesmanSessions: handler.NewSessionHandler(salesmanSessions, "refreshTokenSalesman", refreshTTL),
		ClientSessions:   clientSessionHandler,
		Admins:           handler.NewAdminHandler(service.NewAdminService(mockAdmins)),
		Salesmen:         handler.NewSalesmanHandler(service.NewSalesmanService(mockSalesmen)),
		Clients:          handler.NewClientHandler(service.NewClientService(mockClients), clientSessionHandler),
		Verifier:         tokens,
	})

	return &routesFixture{
		app:      app,
		tokens:   tokens,
		admins:   mockAdmins,
		salesmen: mockSalesmen,
		clients:  mockClients,
		notifier: mockNotifier,
	}
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) int {
	t.Helper()

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		assert.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp.StatusCode
}

func TestRoutes_AdminGuards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRoutesFixture(t, ctrl)

	createInput := fiber.Map{
		"username": "new-admin",
		"email":    "new-admin@example.com",
		"phone":    "+998901234567",
		"password": "Sup3r$ecret",
	}

	t.Run("create requires a token", func(t *testing.T) {
		status := doRequest(t, f.app, "POST", "/admin/", "", createInput)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("create rejects plain admins", func(t *testing.T) {
		token, err := f.tokens.IssueAccess("some-admin", domain.RoleAdmin)
		assert.NoError(t, err)

		status := doRequest(t, f.app, "POST", "/admin/", token, createInput)
		assert.Equal(t, fiber.StatusForbidden, status)
	})

	t.Run("create allows superadmins", func(t *testing.T) {
		token, err := f.tokens.IssueAccess("the-superadmin", domain.RoleSuperadmin)
		assert.NoError(t, err)

		f.admins.EXPECT().GetByUsername(gomock.Any(), "new-admin").Return(nil, nil)
		f.admins.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		status := doRequest(t, f.app, "POST", "/admin/", token, createInput)
		assert.Equal(t, fiber.StatusCreated, status)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		status := doRequest(t, f.app, "POST", "/admin/", "garbage", createInput)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})
}

func TestRoutes_SelfGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRoutesFixture(t, ctrl)

	id := "a7f3b2c1-0000-4000-8000-000000000001"
	otherID := "a7f3b2c1-0000-4000-8000-000000000002"

	t.Run("admin reads own record", func(t *testing.T) {
		token, err := f.tokens.IssueAccess(id, domain.RoleAdmin)
		assert.NoError(t, err)

		f.admins.EXPECT().GetByID(gomock.Any(), id).
			Return(&domain.Admin{ID: id, Username: "admin", Role: domain.RoleAdmin}, nil)

		status := doRequest(t, f.app, "GET", "/admin/"+id, token, nil)
		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("admin cannot read another admin", func(t *testing.T) {
		token, err := f.tokens.IssueAccess(id, domain.RoleAdmin)
		assert.NoError(t, err)

		status := doRequest(t, f.app, "GET", "/admin/"+otherID, token, nil)
		assert.Equal(t, fiber.StatusForbidden, status)
	})

	t.Run("superadmin reads anyone", func(t *testing.T) {
		token, err := f.tokens.IssueAccess("the-superadmin", domain.RoleSuperadmin)
		assert.NoError(t, err)

		f.admins.EXPECT().GetByID(gomock.Any(), otherID).
			Return(&domain.Admin{ID: otherID, Username: "other", Role: domain.RoleAdmin}, nil)

		status := doRequest(t, f.app, "GET", "/admin/"+otherID, token, nil)
		assert.Equal(t, fiber.StatusOK, status)
	})
}

func TestRoutes_SalesmanReadsAreOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRoutesFixture(t, ctrl)

	f.salesmen.EXPECT().ListWithProducts(gomock.Any()).
		Return([]domain.SalesmanWithProducts{}, nil)

	status := doRequest(t, f.app, "GET", "/salesman/", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRoutes_SalesmanMutationsNeedAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRoutesFixture(t, ctrl)

	input := fiber.Map{
		"username":  "new-salesman",
		"full_name": "New Salesman",
		"phone":     "+998901234567",
		"address":   "Tashkent",
		"email":     "salesman@example.com",
		"password":  "Sup3r$ecret",
	}

	t.Run("anonymous rejected", func(t *testing.T) {
		status := doRequest(t, f.app, "POST", "/salesman/", "", input)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("admin allowed", func(t *testing.T) {
		token, err := f.tokens.IssueAccess("some-admin", domain.RoleAdmin)
		assert.NoError(t, err)

		f.salesmen.EXPECT().GetByUsername(gomock.Any(), "new-salesman").Return(nil, nil)
		f.salesmen.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		status := doRequest(t, f.app, "POST", "/salesman/", token, input)
		assert.Equal(t, fiber.StatusCreated, status)
	})
}
