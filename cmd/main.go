package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bidhuripriyanshu/transport-scheduler/internal/cache"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/config"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/db"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/kafka"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/logger"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/repository/postgresql"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/server"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/storage"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/upload"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	log := logger.New(cfg.ServiceName)
	defer func() {
		_ = log.Sync()
	}()

	database, err := db.NewDb(ctx, cfg, log)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	defer database.Close()

	if err := db.InitAdmin(ctx, database, cfg, log); err != nil {
		log.Fatal("admin account init failed", zap.Error(err))
	}

	shipmentRepo := postgresql.NewShipmentRepo(database)
	eventRepo := postgresql.NewEventRepo(database)
	feedbackRepo := postgresql.NewFeedbackRepo(database)
	accountRepo := postgresql.NewAccountRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	shipmentCache := cache.NewShipmentCache(shipmentRepo)
	if err := shipmentCache.LoadInitialData(ctx); err != nil {
		log.Fatal("cache warmup failed", zap.Error(err))
	}

	stg := storage.NewStorage(database, shipmentRepo, eventRepo, feedbackRepo, outboxRepo, shipmentCache, cfg.KafkaTopic)

	var producer kafka.Producer
	if cfg.KafkaBrokers != "" {
		producer = kafka.NewWriterProducer(strings.Split(cfg.KafkaBrokers, ","))
	} else {
		producer = kafka.NewConsoleProducer()
	}

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    10,
		MaxAttempts:  5,
	}, log)

	uploader := upload.NewClient(cfg.ImageHostURL)

	srv := server.New(stg, accountRepo, uploader, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, cfg.HTTPPort)
	})
	g.Go(func() error {
		publisher.Run(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal("service exited with error", zap.Error(err))
	}

	log.Info("service stopped")
}
