package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/expense-tracker/internal/clients/cache"
	"max.ks1230/expense-tracker/internal/clients/kafka"
	"max.ks1230/expense-tracker/internal/clients/tg"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/ledger"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/server"
	"max.ks1230/expense-tracker/internal/tracing"
)

const serviceName = "reporter"

func main() {
	defer logger.Sync()
	logger.Info("Reporter init - start")

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to load .env", zap.Error(err))
	}

	conf, err := config.New(config.Path())
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	tracer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer tracer.Close()

	backend, err := storage.New(conf.Storage(), conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}
	defer storage.Close(backend)

	var genOpts []reports.Option
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Warn("memcached unavailable, reports are not cached", zap.Error(err))
		} else {
			genOpts = append(genOpts, reports.WithCache(mc))
		}
	}
	generator := reports.NewGenerator(conf.App(), ledger.New(backend), genOpts...)

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	consumer, err := kafka.NewConsumer(conf.Kafka(), generator, client)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	healthServer, err := server.NewHealthServer(conf.Reporter().GRPCPort(), serviceName)
	if err != nil {
		logger.Fatal("failed to init health server", zap.Error(err))
	}

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return consumer.StartConsuming(gCtx)
	})
	g.Go(healthServer.Serve)
	g.Go(func() error {
		<-gCtx.Done()
		healthServer.Shutdown()
		return nil
	})

	if err = g.Wait(); err != nil {
		logger.Error("reporter stopped with error", zap.Error(err))
	}
}
