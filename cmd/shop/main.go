package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/simple-shop/internal/catalog"
	"github.com/ariefcatur/simple-shop/internal/cli"
	"github.com/ariefcatur/simple-shop/internal/config"
	"github.com/ariefcatur/simple-shop/internal/customers"
	"github.com/ariefcatur/simple-shop/internal/demo"
	kafkax "github.com/ariefcatur/simple-shop/internal/kafka"
	"github.com/ariefcatur/simple-shop/internal/logger"
	"github.com/ariefcatur/simple-shop/internal/orders"
	"github.com/ariefcatur/simple-shop/internal/payment"
	"github.com/ariefcatur/simple-shop/internal/postgres"
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

	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()
	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Log.Fatal("db migrate", zap.Error(err))
	}

	orderRepo := &orders.Repo{DB: db}
	svc := &orders.Service{Repo: orderRepo, Producer: cfg.ServiceName}
	if cfg.EventsEnabled {
		prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderCreated, 64)
		prod.Start()
		defer prod.WaitClosed()
		defer prod.Close()
		svc.Events = &kafkax.OrderPublisher{Producer: prod}
	}

	seed := uint64(time.Now().UnixNano())
	menu := &cli.Menu{
		Catalog:   &catalog.Repo{DB: db},
		Customers: &customers.Repo{DB: db, Hasher: customers.NewHasher(cfg.BcryptCost)},
		Orders:    svc,
		Reader:    orderRepo,
		Payments:  &payment.Service{Orders: orderRepo, Selector: payment.RandomSelector{}},
		Faker:     demo.NewFaker(seed),
		Picker:    demo.NewPicker(seed),
	}
	if err := menu.Run(ctx, os.Stdin, os.Stdout); err != nil {
		logger.Log.Error("menu", zap.Error(err))
	}
}
