package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"storefront/internal/configs"
	"storefront/internal/delivery/kafka"
)

// Publishes the order stored at JSON_STATIC_MODEL_PATH to the intake topic,
// keyed by its user_id so one customer's orders stay on one partition.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warnf("no .env loaded: %s", err)
	}

	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %s", err)
	}
	logrus.Print("config loaded")

	body, err := os.ReadFile(cfg.JsonStaticModelPath)
	if err != nil {
		logrus.Fatalf("read json file: %s", err)
	}

	var head struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		logrus.Fatalf("json file %s: %s", cfg.JsonStaticModelPath, err)
	}

	pub := kafka.NewPublisher(cfg.KafkaBrokersSlice(), cfg.KafkaOrdersTopic)
	defer func() {
		if cerr := pub.Close(); cerr != nil {
			logrus.Errorf("publisher close: %v", cerr)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := pub.Publish(ctx, []byte(head.UserID), body); err != nil {
		logrus.Fatalf("publish failed: %s", err)
	}
	logrus.Printf("published %s to %s", cfg.JsonStaticModelPath, cfg.KafkaOrdersTopic)
}
