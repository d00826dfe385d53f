// Package router assembles the HTTP routing tree and middleware chain.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ilyra-ai/ilyra-sub000/internal/api/handlers"
	"github.com/ilyra-ai/ilyra-sub000/internal/api/middleware"
	"github.com/ilyra-ai/ilyra-sub000/internal/config"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/logger"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/metrics"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/utils"
)

// Handlers groups every endpoint handler the router mounts
type Handlers struct {
	Health        *handlers.HealthHandler
	Public        *handlers.PublicHandler
	Auth          *handlers.AuthHandler
	User          *handlers.UserHandler
	Conversations *handlers.ConversationHandler
	Chat          *handlers.ChatHandler
	Billing       *handlers.BillingHandler
	AdminUsers    *handlers.AdminUserHandler
	AdminPlans    *handlers.AdminPlanHandler
	AdminCatalog  *handlers.AdminCatalogHandler
	AdminSubs     *handlers.AdminSubscriptionHandler
	AdminSettings *handlers.AdminSettingsHandler
}

// New builds the routing tree: public bootstrap endpoints, the
// authenticated user surface and the admin back-office.
func New(cfg *config.Config, log *logger.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()

	rateLimiter := middleware.NewRateLimiter(20, 40)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(rateLimiter.Middleware)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		utils.WriteError(w, errors.NotFound("Route"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		utils.WriteError(w, errors.New(errors.ErrCodeBadRequest, "Method not allowed", http.StatusMethodNotAllowed))
	})

	r.Get("/health", h.Health.Health)
	r.Get("/healthz", h.Health.Health)
	r.Get("/readyz", h.Health.Ready)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		// Public bootstrap surface
		r.Get("/settings", h.Public.Settings)
		r.Get("/plans", h.Public.Plans)
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/oauth", h.Auth.OAuth)

		// Authenticated surface
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(cfg.Auth.JWTSecret))

			r.Get("/auth/me", h.Auth.Me)
			r.Post("/auth/logout", h.Auth.Logout)

			r.Route("/user", func(r chi.Router) {
				r.Get("/profile", h.User.GetProfile)
				r.Put("/profile", h.User.UpdateProfile)
				r.Get("/preferences", h.User.GetPreferences)
				r.Put("/preferences", h.User.UpdatePreferences)
				r.Get("/available-models", h.User.AvailableModels)

				r.Route("/conversations", func(r chi.Router) {
					r.Get("/", h.Conversations.List)
					r.Post("/", h.Conversations.Create)
					r.Get("/{conversationID}", h.Conversations.Get)
					r.Get("/{conversationID}/messages", h.Conversations.Messages)
					r.Put("/{conversationID}", h.Conversations.Rename)
					r.Delete("/{conversationID}", h.Conversations.Delete)
				})
			})

			r.Post("/chat/send", h.Chat.Send)

			r.Route("/billing", func(r chi.Router) {
				r.Post("/checkout", h.Billing.Checkout)
				r.Post("/confirm", h.Billing.Confirm)
				r.Post("/manage", h.Billing.Manage)
				r.Get("/subscriptions", h.Billing.Subscriptions)
			})

			// Admin back-office
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Get("/settings", h.AdminSettings.Get)
				r.Put("/settings", h.AdminSettings.Update)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.AdminUsers.List)
					r.Get("/{userID}", h.AdminUsers.Get)
					r.Put("/{userID}/role", h.AdminUsers.UpdateRole)
					r.Put("/{userID}/plan", h.AdminUsers.UpdatePlan)
					r.Put("/{userID}/status", h.AdminUsers.UpdateStatus)
					r.Delete("/{userID}", h.AdminUsers.Delete)
				})

				r.Route("/plans", func(r chi.Router) {
					r.Get("/", h.AdminPlans.List)
					r.Post("/", h.AdminPlans.Create)
					r.Get("/{planID}", h.AdminPlans.Get)
					r.Put("/{planID}", h.AdminPlans.Update)
					r.Delete("/{planID}", h.AdminPlans.Delete)
				})

				r.Route("/models", func(r chi.Router) {
					r.Get("/", h.AdminCatalog.ListModels)
					r.Post("/", h.AdminCatalog.CreateModel)
					r.Get("/selection", h.AdminCatalog.ListSelections)
					r.Put("/selection", h.AdminCatalog.ReplaceSelections)
					r.Get("/{modelID}", h.AdminCatalog.GetModel)
					r.Put("/{modelID}", h.AdminCatalog.UpdateModel)
					r.Delete("/{modelID}", h.AdminCatalog.DeleteModel)
				})

				r.Route("/llm/providers", func(r chi.Router) {
					r.Get("/", h.AdminCatalog.ListProviders)
					r.Put("/{provider}", h.AdminCatalog.UpdateProvider)
				})

				r.Route("/subscriptions", func(r chi.Router) {
					r.Get("/", h.AdminSubs.List)
					r.Post("/", h.AdminSubs.Create)
					r.Get("/{subscriptionID}", h.AdminSubs.Get)
					r.Put("/{subscriptionID}/status", h.AdminSubs.UpdateStatus)
					r.Delete("/{subscriptionID}", h.AdminSubs.Delete)
				})
			})
		})
	})

	return r
}
