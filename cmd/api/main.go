package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/WallyssonSousa/seller-backoffice/internal/application/analytics"
	"github.com/WallyssonSousa/seller-backoffice/internal/application/session"
	"github.com/WallyssonSousa/seller-backoffice/internal/application/usecase"
	"github.com/WallyssonSousa/seller-backoffice/internal/infrastructure/salesapi"
	httpRouter "github.com/WallyssonSousa/seller-backoffice/internal/interfaces/http"
	"github.com/WallyssonSousa/seller-backoffice/pkg/config"
	"github.com/WallyssonSousa/seller-backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("sales_api", cfg.SalesAPI.BaseURL).
		Msg("iniciando aplicação")

	tokenStore := salesapi.NewFileTokenStore(cfg.SalesAPI.TokenFile)
	client := salesapi.NewClient(salesapi.Config{
		BaseURL: cfg.SalesAPI.BaseURL,
		Timeout: cfg.SalesAPI.Timeout(),
	}, tokenStore)

	sess := session.NewManager(client, log)
	sess.Restore()
	defer sess.Close()

	productUC := usecase.NewProductUseCase(client)
	sellerUC := usecase.NewSellerUseCase(client)
	saleUC := usecase.NewSaleUseCase(client)
	dashboardUC := analytics.NewDashboardUseCase(client)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Seller Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:     sess,
		ProductUC:   productUC,
		SellerUC:    sellerUC,
		SaleUC:      saleUC,
		DashboardUC: dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
