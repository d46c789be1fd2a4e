package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"dora-eats/internal/configs"
	httpdelivery "dora-eats/internal/delivery/http"
	"dora-eats/internal/delivery/kafka"
	"dora-eats/internal/metrics"
	"dora-eats/internal/repository"
	"dora-eats/internal/service"
)

// @title dora-eats storefront
// @version 1.0
// @description Menu, session cart and checkout API. Validated orders are placed once on a Kafka topic and their confirmations are kept in memory.

// @host localhost:8081
// @basePath /

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.Print("config parsed")

	menu, closeMenu, err := openMenu(cfg)
	if err != nil {
		logrus.Fatalf("menu: %s", err)
	}
	defer closeMenu()

	repo := repository.NewRepository(menu, repository.CacheConfig{
		CartTTL:         cfg.CartTTL,
		ConfirmationTTL: cfg.ConfirmationTTL,
		InFlightTTL:     cfg.InFlightTTL,
	})
	defer repo.Close()

	pub := kafka.NewPublisher(kafka.Config{
		Brokers:      cfg.KafkaBrokersSlice(),
		Topic:        cfg.KafkaTopic,
		WriteTimeout: cfg.KafkaWriteTimeout,
	})
	defer func() {
		if cerr := pub.Close(); cerr != nil {
			logrus.Errorf("publisher close: %v", cerr)
		}
	}()
	logrus.Printf("orders go to kafka topic %s", cfg.KafkaTopic)

	reg := metrics.NewRegistry()
	svc := service.NewService(repo, pub, service.Settings{
		Checkout:       cfg.CheckoutOptions(),
		CurrencySymbol: cfg.CurrencySymbol,
		EstimatedTime:  cfg.EstimatedTime,
	}, service.WithMetrics(reg))

	h := httpdelivery.NewHandler(svc, reg)
	srv := new(httpdelivery.Server)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.Printf("http server started on %s", cfg.HTTPAddr)
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logrus.Print("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.Errorf("http: %s", err)
	}
	logrus.Print("service stopped")
}
