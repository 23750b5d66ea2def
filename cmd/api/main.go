package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Antonk123/latest-it-ticketing/internal/api/http"
	"github.com/Antonk123/latest-it-ticketing/internal/api/http/handlers"
	"github.com/Antonk123/latest-it-ticketing/internal/auth"
	"github.com/Antonk123/latest-it-ticketing/internal/config"
	"github.com/Antonk123/latest-it-ticketing/internal/events"
	"github.com/Antonk123/latest-it-ticketing/internal/observability"
	"github.com/Antonk123/latest-it-ticketing/internal/persistence"
	"github.com/Antonk123/latest-it-ticketing/internal/repository"
	"github.com/Antonk123/latest-it-ticketing/internal/service"
	"github.com/Antonk123/latest-it-ticketing/internal/storage"
	"github.com/Antonk123/latest-it-ticketing/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	objectStore, err := storage.NewDiskStore(cfg.Storage)
	if err != nil {
		logger.Fatal("failed to init object store", zap.Error(err))
	}

	pool := pg.PoolHandle()
	ticketRepo := repository.NewTicketRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	checklistRepo := repository.NewChecklistRepository(pool)
	attachmentRepo := repository.NewAttachmentRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)

	listCache := persistence.NewTicketListCache(redis, cfg.Redis.ListCacheTTL())
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:     ticketRepo,
		ContactRepo:    contactRepo,
		ChecklistRepo:  checklistRepo,
		AttachmentRepo: attachmentRepo,
		ObjectStore:    objectStore,
		ListCache:      listCache,
		Dispatcher:     dispatcher,
		Logger:         logger,
	})
	intakeService := service.NewIntakeService(service.IntakeDependencies{
		TicketRepo:  ticketRepo,
		ContactRepo: contactRepo,
		ListCache:   listCache,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	contactService := service.NewContactService(contactRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	checklistService := service.NewChecklistService(checklistRepo)
	attachmentService := service.NewAttachmentService(service.AttachmentDependencies{
		AttachmentRepo: attachmentRepo,
		TicketRepo:     ticketRepo,
		ObjectStore:    objectStore,
		MaxBytes:       cfg.Storage.MaxAttachmentBytes,
		Logger:         logger,
	})
	authService := service.NewAuthService(cfg.Auth, staffRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), staffRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Contacts:       handlers.NewContactsHandler(contactService),
		Categories:     handlers.NewCategoriesHandler(categoryService),
		Checklists:     handlers.NewChecklistsHandler(checklistService),
		Attachments:    handlers.NewAttachmentsHandler(attachmentService),
		PublicIntake:   handlers.NewPublicIntakeHandler(intakeService),
		Staff:          handlers.NewStaffHandler(authService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
