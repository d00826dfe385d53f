package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ilyra-ai/ilyra-sub000/internal/api/handlers"
	"github.com/ilyra-ai/ilyra-sub000/internal/api/router"
	"github.com/ilyra-ai/ilyra-sub000/internal/config"
	"github.com/ilyra-ai/ilyra-sub000/internal/llm"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/logger"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/validator"
	"github.com/ilyra-ai/ilyra-sub000/internal/quota"
	"github.com/ilyra-ai/ilyra-sub000/internal/repository/memory"
	"github.com/ilyra-ai/ilyra-sub000/internal/services"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	if err := run(cfg, log); err != nil {
		log.ErrorWithErr(err, "server exited with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx := context.Background()

	// Stores
	userRepo := memory.NewUserRepository()
	prefRepo := memory.NewPreferenceRepository()
	convRepo := memory.NewConversationRepository()
	planRepo := memory.NewPlanRepository()
	catalogRepo := memory.NewCatalogRepository()
	subRepo := memory.NewSubscriptionRepository()
	platformRepo := memory.NewPlatformRepository()

	if err := memory.Seed(ctx, memory.SeedStores{
		Users:   userRepo,
		Plans:   planRepo,
		Catalog: catalogRepo,
	}); err != nil {
		return fmt.Errorf("seeding stores: %w", err)
	}
	log.Info("in-memory stores seeded")

	// Quota accounting
	tracker := quota.NewTracker()
	scheduler, err := quota.NewScheduler(tracker, cfg.Quota.ResetPolicy, log)
	if err != nil {
		return fmt.Errorf("building quota scheduler: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Completion backends
	registry := llm.NewRegistry(llm.NewCannedProvider(0))
	if cfg.LLM.OpenAIAPIKey != "" {
		registry.Register(llm.NewOpenAIProvider(cfg.LLM.OpenAIAPIKey, cfg.LLM.OpenAIBaseURL))
	}

	// Services
	userSvc := services.NewUserService(userRepo, cfg.Auth.BCryptCost, log)
	prefSvc := services.NewPreferenceService(prefRepo, log)
	planSvc := services.NewPlanService(planRepo, subRepo, log)
	catalogSvc := services.NewCatalogService(catalogRepo, userRepo, log)
	convSvc := services.NewConversationService(convRepo, log)
	chatSvc := services.NewChatService(userRepo, planRepo, convRepo, catalogSvc, registry, tracker, cfg.LLM.DefaultModel, log)
	subSvc := services.NewSubscriptionService(subRepo, planRepo, log)
	platformSvc := services.NewPlatformService(platformRepo, log)

	var checkout services.CheckoutProvider
	if cfg.Stripe.APIKey != "" {
		checkout = services.NewStripeCheckout(cfg.Stripe.APIKey, cfg.Stripe.SuccessURL, cfg.Stripe.CancelURL)
	} else {
		checkout = services.NewSimulatedCheckout(cfg.Stripe.SuccessURL)
		log.Warn("no Stripe key configured, using simulated checkout")
	}
	paymentSvc := services.NewPaymentService(checkout, userRepo, planRepo, subSvc, log)

	// HTTP surface
	v := validator.New()
	handler := router.New(cfg, log, router.Handlers{
		Health:        handlers.NewHealthHandler(version),
		Public:        handlers.NewPublicHandler(platformSvc, planSvc),
		Auth:          handlers.NewAuthHandler(userSvc, platformSvc, v, cfg.Auth),
		User:          handlers.NewUserHandler(userSvc, prefSvc, catalogSvc, v),
		Conversations: handlers.NewConversationHandler(convSvc, v),
		Chat:          handlers.NewChatHandler(chatSvc, v),
		Billing:       handlers.NewBillingHandler(paymentSvc, subSvc, v),
		AdminUsers:    handlers.NewAdminUserHandler(userSvc, v),
		AdminPlans:    handlers.NewAdminPlanHandler(planSvc, v),
		AdminCatalog:  handlers.NewAdminCatalogHandler(catalogSvc, v),
		AdminSubs:     handlers.NewAdminSubscriptionHandler(subSvc, v),
		AdminSettings: handlers.NewAdminSettingsHandler(platformSvc, v),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.With("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.With("signal", sig.String()).Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
