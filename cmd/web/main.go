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
	"github.com/swaggo/swag"

	"github.com/jhoicas/solar-marketplace-web/docs"
	"github.com/jhoicas/solar-marketplace-web/internal/application/auth"
	"github.com/jhoicas/solar-marketplace-web/internal/application/usecase"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/payment"
	"github.com/jhoicas/solar-marketplace-web/internal/infrastructure/backend"
	"github.com/jhoicas/solar-marketplace-web/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/solar-marketplace-web/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/solar-marketplace-web/internal/interfaces/http"
	"github.com/jhoicas/solar-marketplace-web/pkg/config"
	"github.com/jhoicas/solar-marketplace-web/pkg/logger"
	"github.com/jhoicas/solar-marketplace-web/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	// Una sola caché para todo el proceso; las vistas leen a través de ella.
	queryCache := cache.NewQueryCache(cfg.Cache.TTL, cfg.Cache.MaxEntries, cache.WithLogger(log.Named("cache")))
	api := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log.Named("backend"))

	calc, err := payment.NewCalculator(payment.Rates{
		TaxCredit:      cfg.Payment.TaxCreditRate,
		InstallmentFee: cfg.Payment.InstallmentFeeRate,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("tasas de la calculadora")
	}
	formatter := money.NewFormatter(cfg.Payment.Locale, "$")

	// PDF: cotización de financiación
	quoteGenerator := infrapdf.NewMarotoQuoteGenerator(cfg.App.Name, formatter)

	paymentUC := usecase.NewPaymentUseCase(calc, formatter, quoteGenerator, cfg.Payment.DefaultInstallmentMonths)
	catalogUC := usecase.NewCatalogUseCase(api, queryCache, paymentUC, formatter)
	orderUC := usecase.NewOrderUseCase(api, queryCache, formatter)
	cartUC := usecase.NewCartUseCase(api, queryCache, formatter)
	dashboardUC := usecase.NewDashboardUseCase(catalogUC, orderUC, cartUC, paymentUC)
	sessionUC := auth.NewSessionUseCase(api, queryCache, auth.TokenConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.Expiration,
		Issuer:     cfg.Session.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	docs.SwaggerInfo.Title = cfg.App.Name
	app.Get("/docs/doc.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC:   sessionUC,
		CatalogUC:   catalogUC,
		OrderUC:     orderUC,
		CartUC:      cartUC,
		DashboardUC: dashboardUC,
		PaymentUC:   paymentUC,
		Cookie: httpRouter.CookieConfig{
			Name:       cfg.Session.CookieName,
			Secure:     cfg.Session.SecureCookie,
			ExpMinutes: cfg.Session.Expiration,
		},
		Logger: log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	queryCache.Clear()

	log.Info().Msg("aplicación detenida")
}
