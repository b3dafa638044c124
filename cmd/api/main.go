package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/simple-shop/internal/catalog"
	"github.com/ariefcatur/simple-shop/internal/config"
	"github.com/ariefcatur/simple-shop/internal/customers"
	"github.com/ariefcatur/simple-shop/internal/httpx"
	kafkax "github.com/ariefcatur/simple-shop/internal/kafka"
	"github.com/ariefcatur/simple-shop/internal/logger"
	"github.com/ariefcatur/simple-shop/internal/orders"
	"github.com/ariefcatur/simple-shop/internal/payment"
	"github.com/ariefcatur/simple-shop/internal/postgres"
	"github.com/ariefcatur/simple-shop/internal/redisx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Initialize(cfg.Env)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()
	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Log.Fatal("db migrate", zap.Error(err))
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	orderRepo := &orders.Repo{DB: db}
	svc := &orders.Service{Repo: orderRepo, Producer: cfg.ServiceName}

	// Kafka producer
	var prod *kafkax.Producer
	if cfg.EventsEnabled {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderCreated, 1024)
		prod.Start()
		svc.Events = &kafkax.OrderPublisher{Producer: prod}
	}

	// Repos & handlers
	router := httpx.NewRouter()
	(&httpx.CatalogHandler{Store: &catalog.Repo{DB: db}}).Register(router)
	(&httpx.CustomersHandler{
		Store:  &customers.Repo{DB: db, Hasher: customers.NewHasher(cfg.BcryptCost)},
		Orders: orderRepo,
	}).Register(router)
	(&httpx.OrdersHandler{
		Service:  svc,
		Reader:   orderRepo,
		Cache:    &redisx.StatusCache{RDB: rdb},
		Payments: &payment.Service{Orders: orderRepo, Selector: payment.RandomSelector{}},
	}).Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		logger.Log.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Log.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	if prod != nil {
		prod.Close()      // flush queued events
		prod.WaitClosed()
	}
}
