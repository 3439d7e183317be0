package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"

	"printshop-storefront/internal/api"
	"printshop-storefront/internal/config"
	"printshop-storefront/internal/handlers"
	"printshop-storefront/internal/middleware"
	"printshop-storefront/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Cookie session store: cart, checkout wizard and credentials all
	// live here, nothing is persisted on this server
	store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Session.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	apiClient := api.NewClient(api.Config{
		BaseURL: cfg.Store.BaseURL,
		Timeout: cfg.Store.Timeout,
	})

	authService := services.NewAuthService(apiClient)
	catalogService := services.NewCatalogService(apiClient)
	settingsService := services.NewSettingsService(apiClient)
	checkoutService := services.NewCheckoutService(apiClient, settingsService)
	adminService := services.NewAdminService(apiClient)

	publicHandler := handlers.NewPublicHandler(catalogService, settingsService)
	authHandler := handlers.NewAuthHandler(authService, store)
	cartHandler := handlers.NewCartHandler(catalogService, store)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, store)
	adminHandler := handlers.NewAdminHandler(adminService)

	authMiddleware := middleware.NewAuthMiddleware(authService, store)
	authLimiter := middleware.NewRateLimiter(10, 15*time.Minute)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))
	r.Use(authMiddleware.LoadUser)
	r.Use(middleware.LoggingMiddleware)

	r.Get("/health", publicHandler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/home", publicHandler.Home)
		r.Get("/store", publicHandler.Store)
		r.Get("/products/{slug}", publicHandler.Product)
		r.Get("/site-info", publicHandler.SiteInfo)

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.RateLimitAuth(authLimiter)).Post("/login", authHandler.Login)
			r.With(middleware.RateLimitAuth(authLimiter)).Post("/register", authHandler.Register)
			r.Post("/logout", authHandler.Logout)
			r.With(authMiddleware.RequireAuth).Get("/me", authHandler.Me)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.ViewCart)
			r.Post("/add", cartHandler.AddToCart)
			r.Post("/update", cartHandler.UpdateCartLine)
			r.Post("/remove", cartHandler.RemoveCartLine)
			r.Post("/clear", cartHandler.ClearCart)
			r.Post("/open", cartHandler.OpenCart)
			r.Post("/close", cartHandler.CloseCart)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", checkoutHandler.ViewCheckout)
			r.Post("/contact", checkoutHandler.SubmitContact)
			r.Post("/shipping", checkoutHandler.SubmitShipping)
			r.Post("/payment", checkoutHandler.SubmitPayment)
			r.Post("/back", checkoutHandler.StepBack)
			r.Get("/confirmation", checkoutHandler.Confirmation)
			r.Get("/status/{orderID}", checkoutHandler.PaymentStatus)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware.RequireAdmin)

			r.Get("/stats", adminHandler.Dashboard)

			r.Get("/products", adminHandler.ListProducts)
			r.Post("/products", adminHandler.CreateProduct)
			r.Put("/products/{id}", adminHandler.UpdateProduct)
			r.Delete("/products/{id}", adminHandler.DeleteProduct)

			r.Get("/categories", adminHandler.ListCategories)
			r.Post("/categories", adminHandler.CreateCategory)
			r.Put("/categories/{id}", adminHandler.UpdateCategory)
			r.Delete("/categories/{id}", adminHandler.DeleteCategory)

			r.Get("/banners", adminHandler.ListBanners)
			r.Post("/banners", adminHandler.CreateBanner)
			r.Put("/banners/{id}", adminHandler.UpdateBanner)
			r.Delete("/banners/{id}", adminHandler.DeleteBanner)

			r.Get("/orders", adminHandler.ListOrders)
			r.Put("/orders/{id}", adminHandler.UpdateOrderStatus)

			r.Get("/config", adminHandler.GetConfig)
			r.Put("/config", adminHandler.UpdateConfig)
		})
	})

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s (env: %s, store API: %s)", addr, cfg.Server.Env, cfg.Store.BaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
