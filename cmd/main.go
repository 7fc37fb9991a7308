package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Shohjahon77877/e-shop-florify/config"
	"github.com/Shohjahon77877/e-shop-florify/db"
	accounthandler "github.com/Shohjahon77877/e-shop-florify/internal/account/handler"
	accountrepo "github.com/Shohjahon77877/e-shop-florify/internal/account/repository/postgres"
	accountservice "github.com/Shohjahon77877/e-shop-florify/internal/account/service"
	cataloghandler "github.com/Shohjahon77877/e-shop-florify/internal/catalog/handler"
	catalogrepo "github.com/Shohjahon77877/e-shop-florify/internal/catalog/repository/postgres"
	catalogservice "github.com/Shohjahon77877/e-shop-florify/internal/catalog/service"
	"github.com/Shohjahon77877/e-shop-florify/internal/logs"
	"github.com/Shohjahon77877/e-shop-florify/internal/mailer"
)

const (
	adminCookie    = "refreshTokenAdmin"
	salesmanCookie = "refreshTokenSalesman"
	clientCookie   = "refreshTokenClient"
)

func main() {
	cfg := config.Load()
	logs.Init(logs.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	if err := db.Migrate(ctx, cfg.DBURL); err != nil {
		logs.Logger.WithError(err).Fatal("failed to run migrations")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logs.Logger.WithError(err).Fatal("failed to connect to database")
	}
	defer pool.Close()

	adminRepo := accountrepo.NewAdminRepository(pool)
	salesmanRepo := accountrepo.NewSalesmanRepository(pool)
	clientRepo := accountrepo.NewClientRepository(pool)
	categoryRepo := catalogrepo.NewCategoryRepository(pool)
	productRepo := catalogrepo.NewProductRepository(pool)
	saleRepo := catalogrepo.NewSaleRepository(pool)

	notifier, err := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.MailUser, cfg.MailPassword)
	if err != nil {
		logs.Logger.WithError(err).Fatal("failed to build smtp client")
	}

	tokenService := accountservice.NewTokenService(
		cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)

	challenges := accountservice.NewChallengeCache()
	stopSweeper := challenges.StartSweeper(time.Minute)
	defer stopSweeper()

	otpTTL := time.Duration(cfg.OTPTTLSeconds) * time.Second
	refreshTTL := time.Duration(cfg.RefreshExpiryMin) * time.Minute

	adminSessions := accountservice.NewSessionService(
		accountservice.AdminLookup(adminRepo), tokenService, challenges, notifier, "Admin", true, otpTTL)
	salesmanSessions := accountservice.NewSessionService(
		accountservice.SalesmanLookup(salesmanRepo), tokenService, challenges, notifier, "Salesman", false, otpTTL)
	clientSessions := accountservice.NewSessionService(
		accountservice.ClientLookup(clientRepo), tokenService, challenges, notifier, "Client", false, otpTTL)

	adminService := accountservice.NewAdminService(adminRepo)
	salesmanService := accountservice.NewSalesmanService(salesmanRepo)
	clientService := accountservice.NewClientService(clientRepo)

	if err := adminService.Bootstrap(ctx, cfg.SuperadminUsername, cfg.SuperadminPassword); err != nil {
		logs.Logger.WithError(err).Error("error on creating superadmin")
	}

	categoryService := catalogservice.NewCategoryService(categoryRepo)
	productService := catalogservice.NewProductService(productRepo)
	saleService := catalogservice.NewSaleService(saleRepo, productRepo, clientRepo)

	clientSessionHandler := accounthandler.NewSessionHandler(clientSessions, clientCookie, refreshTTL)

	app := fiber.New()

	accounthandler.RegisterRoutes(app, accounthandler.Routes{
		AdminSessions:    accounthandler.NewSessionHandler(adminSessions, adminCookie, refreshTTL),
		SalesmanSessions: accounthandler.NewSessionHandler(salesmanSessions, salesmanCookie, refreshTTL),
		ClientSessions:   clientSessionHandler,
		Admins:           accounthandler.NewAdminHandler(adminService),
		Salesmen:         accounthandler.NewSalesmanHandler(salesmanService),
		Clients:          accounthandler.NewClientHandler(clientService, clientSessionHandler),
		Verifier:         tokenService,
	})

	cataloghandler.RegisterRoutes(app, cataloghandler.Routes{
		Categories: cataloghandler.NewCategoryHandler(categoryService),
		Products:   cataloghandler.NewProductHandler(productService),
		Sales:      cataloghandler.NewSaleHandler(saleService),
		Verifier:   tokenService,
	})

	logs.Logger.WithField("port", cfg.Port).Info("server is running")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logs.Logger.WithError(err).Fatal("server stopped")
	}
}
