package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/expense-tracker/internal/clients/cache"
	"max.ks1230/expense-tracker/internal/clients/kafka"
	"max.ks1230/expense-tracker/internal/clients/tg"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/ledger"
	"max.ks1230/expense-tracker/internal/model/messages"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/tracing"
)

const shutdownTimeout = 5 * time.Second

func main() {
	defer logger.Sync()
	logger.Info("Bot init - start")

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

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	backend, err := storage.New(conf.Storage(), conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}
	defer storage.Close(backend)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	expenses := ledger.New(backend)
	if err = expenses.Initialize(ctx); err != nil {
		logger.Fatal("failed to init ledger:", zap.Error(err))
	}

	var genOpts []reports.Option
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Warn("memcached unavailable, reports are not cached", zap.Error(err))
		} else {
			genOpts = append(genOpts, reports.WithCache(mc))
		}
	}
	generator := reports.NewGenerator(conf.App(), expenses, genOpts...)

	var msgOpts []messages.Option
	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer:", zap.Error(err))
		}
		defer producer.Close()
		msgOpts = append(msgOpts, messages.WithReportRequester(producer))
	}
	msgService := messages.NewService(client, expenses, generator, conf.Telegram(), msgOpts...)

	logger.Info("Bot init - end")

	metricsServer := &http.Server{
		Addr:              conf.Metrics().Addr(),
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: shutdownTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		client.ListenUpdates(gCtx, msgService)
		return nil
	})
	g.Go(func() error {
		logger.Info("metrics server started", zap.String("addr", metricsServer.Addr))
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		client.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return metricsServer.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		logger.Error("bot stopped with error", zap.Error(err))
	}
}
