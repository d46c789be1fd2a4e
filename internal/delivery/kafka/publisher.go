package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	kafka "github.com/segmentio/kafka-go"

	"dora-eats/internal/models"
)

type Config struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher places orders by writing them to a Kafka topic keyed by order
// number. Each order is written at most once.
type Publisher struct {
	writer  messageWriter
	timeout time.Duration
}

func NewPublisher(cfg Config) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            1,
		WriteTimeout:           cfg.WriteTimeout,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
	return newPublisher(w, cfg.WriteTimeout)
}

func newPublisher(w messageWriter, timeout time.Duration) *Publisher {
	return &Publisher{writer: w, timeout: timeout}
}

func (p *Publisher) Place(ctx context.Context, order models.PlacedOrder) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return errors.Wrap(err, "encode order")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.Number),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "x-placed-at", Value: []byte(order.PlacedAt.Format(time.RFC3339))},
		},
	})
	return errors.Wrapf(err, "publish order %s", order.Number)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
