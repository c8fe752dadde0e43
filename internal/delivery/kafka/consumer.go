package kafka

import (
	"context"
	"errors"
	"strconv"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"storefront/internal/validation"
)

const maxBackoff = 5 * time.Second

type Config struct {
	Brokers     []string
	GroupID     string
	Topic       string
	DLQ         string
	MaxRetries  int
	BaseBackoff time.Duration
}

// MessageHandler processes one intake message.
type MessageHandler interface {
	HandleMessage(ctx context.Context, payload []byte) error
}

type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Consumer struct {
	cfg    Config
	reader reader
	dlq    writer
	h      MessageHandler
	sleep  func(ctx context.Context, d time.Duration) bool
}

func NewConsumer(cfg Config, h MessageHandler) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.Topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        100 * time.Millisecond,
		CommitInterval: 0,
	})
	var w writer
	if cfg.DLQ != "" {
		w = &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.DLQ,
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		}
	}
	return newConsumer(cfg, r, w, h)
}

func newConsumer(cfg Config, r reader, dlq writer, h MessageHandler) *Consumer {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 200 * time.Millisecond
	}
	return &Consumer{cfg: cfg, reader: r, dlq: dlq, h: h, sleep: sleepCtx}
}

// Subscribe blocks until ctx is done. Each message is committed once it is
// handled or parked on the dead-letter topic.
func (c *Consumer) Subscribe(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			logrus.WithError(err).Error("kafka fetch")
			if !c.sleep(ctx, 300*time.Millisecond) {
				return nil
			}
			continue
		}

		log := logrus.WithFields(logrus.Fields{
			"topic":     m.Topic,
			"partition": m.Partition,
			"offset":    m.Offset,
		})
		log.WithField("key", string(m.Key)).Debug("message fetched")

		attempts, last := c.handle(ctx, m.Value)
		if last == nil {
			if err := c.reader.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
				log.WithError(err).Error("commit failed")
			}
			continue
		}
		if ctx.Err() != nil {
			return nil
		}

		if c.dlq != nil {
			if err := c.dlq.WriteMessages(ctx, c.deadLetter(m, last, attempts)); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				// not committed, so the message is fetched again after a rebalance
				log.WithError(err).Error("write to DLQ failed")
				c.sleep(ctx, 500*time.Millisecond)
				continue
			}
			log.WithError(last).Warn("message moved to DLQ")
		} else {
			log.WithError(last).Warn("DLQ disabled, message dropped")
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
			log.WithError(err).Error("commit after DLQ failed")
		}
	}
}

// handle runs the handler with retries. Validation failures are not retried.
func (c *Consumer) handle(ctx context.Context, payload []byte) (int, error) {
	var last error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 && !c.sleep(ctx, backoff(attempt, c.cfg.BaseBackoff)) {
			return attempt, last
		}
		last = c.h.HandleMessage(ctx, payload)
		if last == nil {
			return attempt + 1, nil
		}
		if isNonRetryable(last) {
			return attempt + 1, last
		}
	}
	return c.cfg.MaxRetries + 1, last
}

func (c *Consumer) deadLetter(m kafka.Message, reason error, attempts int) kafka.Message {
	headers := make([]kafka.Header, 0, len(m.Headers)+5)
	headers = append(headers, m.Headers...)
	headers = append(headers,
		kafka.Header{Key: "x-dlq-reason", Value: []byte(trimErr(reason))},
		kafka.Header{Key: "x-dlq-attempts", Value: []byte(strconv.Itoa(attempts))},
		kafka.Header{Key: "x-dlq-ts", Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		kafka.Header{Key: "x-dlq-source-topic", Value: []byte(c.cfg.Topic)},
		kafka.Header{Key: "x-dlq-group", Value: []byte(c.cfg.GroupID)},
	)
	return kafka.Message{Key: m.Key, Value: m.Value, Headers: headers}
}

func (c *Consumer) Close() error {
	var first error
	if c.reader != nil {
		if err := c.reader.Close(); err != nil {
			first = err
		}
	}
	if c.dlq != nil {
		if err := c.dlq.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func backoff(n int, base time.Duration) time.Duration {
	if n <= 0 {
		return 0
	}
	if n > 16 {
		return maxBackoff
	}
	d := base * (1 << (n - 1))
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}

func trimErr(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	if len(s) > 1000 {
		return s[:1000]
	}
	return s
}

func isNonRetryable(err error) bool {
	return validation.IsValidation(err)
}
