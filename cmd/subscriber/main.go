package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"storefront/internal/configs"
	httpdelivery "storefront/internal/delivery/http"
	"storefront/internal/delivery/kafka"
	"storefront/internal/notify"
	"storefront/internal/payment"
	"storefront/internal/repository"
	"storefront/internal/repository/cache"
	"storefront/internal/repository/postgres"
	"storefront/internal/secure"
	"storefront/internal/service"
	"storefront/internal/validation"
)

// @title storefront order service
// @version 1.0
// @description Places and tracks storefront orders received over HTTP or from the Kafka intake topic. Orders, products, coupons and saved addresses are stored in postgres; recent orders are served from an in-memory cache.

// @host localhost:8081
// @basePath /

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	if err := cfg.ConfigureLogger(); err != nil {
		logrus.Fatalf("logger: %s", err)
	}
	logrus.Print("config parsed")

	policy, err := service.ParseStatusPolicy(cfg.OrderInitialStatusPolicy)
	if err != nil {
		logrus.Fatalf("config: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.ConnectDB(postgres.Config{
		URL:      cfg.DatabaseURL,
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		Username: cfg.PostgresUser,
		Password: cfg.PostgresPass,
		DbName:   cfg.PostgresDB,
		SslMode:  cfg.PostgresSSLMode,
	})
	if err != nil {
		logrus.Fatalf("postgres connect: %s", err)
	}
	defer func() {
		if derr := db.Close(); derr != nil {
			logrus.Errorf("db close: %v", derr)
		}
	}()
	if err := postgres.Migrate(db); err != nil {
		logrus.Fatalf("postgres migrate: %s", err)
	}
	logrus.Print("connected to postgres")

	repo := repository.NewRepository(db, cache.WithShards(cfg.CacheShards), cache.WithTTL(cfg.CacheTTL))
	defer repo.Close()

	var cipher *secure.Cipher
	if cfg.EncryptionKey != "" {
		if cipher, err = secure.New(cfg.EncryptionKey); err != nil {
			logrus.Fatalf("encryption: %s", err)
		}
		logrus.Printf("sealing fields at rest: %v", cfg.SealedFields())
	}

	brokers := cfg.KafkaBrokersSlice()

	var notifier notify.Notifier = notify.LogNotifier{}
	if len(brokers) > 0 && cfg.KafkaEventsTopic != "" {
		events := kafka.NewPublisher(brokers, cfg.KafkaEventsTopic)
		defer func() {
			if cerr := events.Close(); cerr != nil {
				logrus.Errorf("events publisher close: %v", cerr)
			}
		}()
		notifier = notify.NewKafkaNotifier(events)
	}

	svc := service.NewService(repo, service.Deps{
		Validator:       validation.New(validation.Options{EnforceTotals: cfg.OrderEnforceTotals}),
		Gateway:         payment.NewMock(),
		Notifier:        notifier,
		Cipher:          cipher,
		SensitiveFields: cfg.SealedFields(),
		StatusPolicy:    policy,
		Currency:        cfg.PaymentCurrency,
	})

	var wg sync.WaitGroup
	var consumer *kafka.Consumer
	if len(brokers) > 0 {
		consumer = kafka.NewConsumer(kafka.Config{
			Brokers:    brokers,
			GroupID:    cfg.KafkaGroupID,
			Topic:      cfg.KafkaOrdersTopic,
			DLQ:        cfg.KafkaDLQTopic,
			MaxRetries: 5,
		}, svc)

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.Subscribe(ctx); err != nil {
				logrus.Errorf("consumer stopped: %v", err)
				cancel()
			}
		}()
		logrus.Print("kafka subscription started")
	}

	h := httpdelivery.NewHandler(svc)
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}

	cancel()
	wg.Wait()
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			logrus.Errorf("consumer close: %s", err)
		}
	}
	logrus.Print("service stopped")
}
