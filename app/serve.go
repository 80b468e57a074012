package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"example.com/beadwork-storefront/app/internal/config"
	"example.com/beadwork-storefront/app/internal/infra/memory"
	"example.com/beadwork-storefront/app/internal/infra/security"
	apihttp "example.com/beadwork-storefront/app/internal/interface/http"
	"example.com/beadwork-storefront/app/internal/logging"
	cartuc "example.com/beadwork-storefront/app/internal/usecase/cart"
	categoryuc "example.com/beadwork-storefront/app/internal/usecase/category"
	checkoutuc "example.com/beadwork-storefront/app/internal/usecase/checkout"
	productuc "example.com/beadwork-storefront/app/internal/usecase/product"
	storefrontuc "example.com/beadwork-storefront/app/internal/usecase/storefront"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := openSeedSource(ctx, cfg.Catalog)
	if err != nil {
		return err
	}
	defer closeSource()

	store := newCatalogStore(source, cfg.Catalog, logger)
	if err := store.Load(ctx); err != nil {
		return err
	}

	handoff, closeHandoff, err := openHandoff(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeHandoff()

	sessions := memory.NewSessionRepository(cfg.Session.TTL)
	tokens := security.NewJWTService(cfg.Session.Secret, cfg.Session.TTL)

	productSvc := productuc.NewService(store.Products())
	categorySvc := categoryuc.NewService(store.Categories())

	api := apihttp.NewAPI(apihttp.Dependencies{
		StorefrontService: storefrontuc.NewService(sessions, productSvc, categorySvc, tokens),
		CategoryService:   categorySvc,
		ProductService:    productSvc,
		CartService:       cartuc.NewService(sessions, store.Products()),
		CheckoutService:   checkoutuc.NewService(sessions, handoff),
		Catalog:           store,
		Logger:            logger.Named("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return sessions.RunJanitor(gctx, cfg.Session.JanitorInterval, func(removed int) {
			logger.Debug("expired sessions swept", zap.Int("removed", removed), zap.Int("live", sessions.Len()))
		})
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
