package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/invoicing-api/internal/application/billing"
	"github.com/jhoicas/invoicing-api/internal/infrastructure/event"
	"github.com/jhoicas/invoicing-api/internal/infrastructure/notification"
	infrapdf "github.com/jhoicas/invoicing-api/internal/infrastructure/pdf"
	"github.com/jhoicas/invoicing-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/invoicing-api/internal/interfaces/http"
	"github.com/jhoicas/invoicing-api/pkg/config"
	"github.com/jhoicas/invoicing-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	invoiceRepo := postgres.NewInvoiceRepository(pool)

	// Driver "dummy" acepta todo sin enviar; "smtp" envía correo real.
	var driver notification.Driver
	switch cfg.Notify.Driver {
	case "smtp":
		driver = notification.NewSMTPDriver(cfg.Notify, log)
	default:
		driver = notification.NewDummyDriver()
	}
	notifier := notification.NewFacade(driver, log)

	bus := event.NewBus(log)
	bus.Subscribe(billing.NewSentToClientListener(invoiceRepo, log))

	creator := billing.NewCreator(invoiceRepo, log)
	finder := billing.NewFinder(invoiceRepo)
	sender := billing.NewSender(invoiceRepo, notifier, log)
	pdfUC := billing.NewPDFUseCase(invoiceRepo, infrapdf.NewMarotoPDFGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Creator: creator,
		Finder:  finder,
		Sender:  sender,
		PDF:     pdfUC,
		Bus:     bus,
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

	// Confirmaciones de entrega en vuelo terminan antes de salir.
	bus.Wait()

	log.Info().Msg("aplicación detenida")
}
