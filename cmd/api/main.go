package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nordixdotma/kamano/internal/cart"
	"github.com/nordixdotma/kamano/internal/catalog"
	"github.com/nordixdotma/kamano/internal/config"
	"github.com/nordixdotma/kamano/internal/notify"
	"github.com/nordixdotma/kamano/internal/routes"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.LoadConfig()

	catalogStore := catalog.New()
	cartStore := cart.NewStore(cfg.CartTTL)
	notifier := notify.NewResendClient(cfg.ResendAPIKey, cfg.ResendFrom, cfg.OrderToEmail)
	whatsapp := notify.NewWhatsApp(cfg.OrderPhone, cfg.InquiryPhone)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))
	routes.RegisterRoutes(router, catalogStore, cartStore, notifier, whatsapp)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Println("🚀 Server running on port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error:", err)
		}
	}()

	<-ctx.Done()
	slog.Info("closing http server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown gracefully", "err", err)
	}
	slog.Info("http server is closed")
}
