package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/quickcart/payments/internal/app/background"
	"github.com/quickcart/payments/internal/app/setup"
	"github.com/quickcart/payments/internal/delivery/http/handlers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializePaymentDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.Publisher.Close()
	defer deps.RedisClient.Close()

	useCases := setup.InitializePaymentUseCases(deps)

	router := handlers.NewPaymentRouter(
		handlers.NewStripeWebhookHandler(deps.Gateway, useCases.WebhookUsecase),
		handlers.NewPaymentHandler(useCases.PaymentUsecase),
		deps.Config.IsProduction(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tasks := background.NewBackgroundTasks(useCases.PaymentUsecase, deps.Config.Expiry.SweepInterval)
	tasks.StartAll(ctx)

	addr := fmt.Sprintf("%s:%s", deps.Config.HTTPServer.Host, deps.Config.HTTPServer.Port)
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		slog.Info("payment service listening", "addr", addr, "env", deps.Config.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down payment service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err.Error())
	}
}
