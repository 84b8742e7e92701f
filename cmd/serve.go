package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"podium/internal/api"
	"podium/internal/api/handler/v1handler"
	"podium/internal/authtoken"
	"podium/internal/checkout"
	"podium/internal/config"
	"podium/internal/content"
	"podium/internal/pricing"
	"podium/internal/signup"
	"podium/internal/worker"
	"podium/pkg/identity/gotrue"
	"podium/pkg/logger"
	"podium/pkg/metrics"
	"podium/pkg/payment/stripe"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func newIssuer(ctx context.Context, cfg *config.Config) *authtoken.Issuer {
	tokens, err := authtoken.New(authtoken.Options{
		PrivateKey: cfg.Token.PrivateKey,
		TTL:        cfg.Token.TTL,
		Issuer:     cfg.Token.Issuer,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
	}
	if !tokens.Configured() {
		logger.Warn(ctx, "token private key is not configured, signup is disabled")
	}

	return tokens
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the website, the API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			contentCache, closeCache := getCache(ctx, cfg)
			defer closeCache()

			plans, err := pricing.Default()
			if err != nil {
				logger.Fatal(ctx, "could not load pricing plans", zap.Error(err))
			}
			tokens := newIssuer(ctx, cfg)

			idp := gotrue.New(&http.Client{Timeout: cfg.Identity.Timeout}, cfg.Identity.URL, cfg.Identity.ServiceKey)
			pay := stripe.New(&http.Client{Timeout: cfg.Payment.Timeout}, cfg.Payment.URL, cfg.Payment.SecretKey)

			mp, err := api.NewMeterProvider()
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			signupMetrics, err := metrics.NewSignup(mp.Meter("podium"))
			if err != nil {
				logger.Fatal(ctx, "could not create signup metrics", zap.Error(err))
			}

			riverClient, err := worker.Start(ctx, strg.Pool, strg, idp, worker.Options{MaxWorkers: cfg.Worker.MaxWorkers})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Signup:   signup.New(strg, idp, plans, tokens, signupMetrics, signup.NewOptions(cfg)),
					Checkout: checkout.New(strg, pay, tokens, plans, checkout.NewOptions(cfg)),
					Content:  content.New(strg, contentCache, plans, content.NewOptions(cfg)),
				},
				Database: strg,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shutdown meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
