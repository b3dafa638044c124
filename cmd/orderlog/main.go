package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariefcatur/simple-shop/internal/config"
	kafkax "github.com/ariefcatur/simple-shop/internal/kafka"
	"github.com/ariefcatur/simple-shop/internal/logger"
	"github.com/ariefcatur/simple-shop/internal/orderlog"
	"github.com/ariefcatur/simple-shop/internal/orders"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger.Initialize(cfg.Env)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := &orderlog.Handler{Log: logger.Log.Named("orderlog")}
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.OrderLogGroup, orders.TopicOrderCreated, 1)

	logger.Log.Info("orderlog consumer started",
		zap.String("group", cfg.OrderLogGroup), zap.String("topic", orders.TopicOrderCreated))
	if err := cons.Start(ctx, h.Handle); err != nil {
		logger.Log.Error("consumer exit", zap.Error(err))
	}
	logger.Log.Info("orderlog consumer stopped")
}
