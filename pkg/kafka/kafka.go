package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

var ErrDisabled = errors.New("kafka disabled")

type Client struct {
	Brokers []string
}

func NewClient(brokers []string) *Client {
	cleaned := []string{}
	for _, b := range brokers {
		b = strings.TrimSpace(b)
		if b != "" {
			cleaned = append(cleaned, b)
		}
	}

	return &Client{Brokers: cleaned}
}

func (c *Client) Enabled() bool {
	return c != nil && len(c.Brokers) > 0
}

// flushInterval bounds how long a synchronous write waits for a batch to fill.
const flushInterval = 5 * time.Millisecond

// NewWriter hashes on the message key so events for one key stay ordered.
// Publishes are single synchronous writes, so each is flushed on its own.
func (c *Client) NewWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchSize:              1,
		BatchTimeout:           flushInterval,
		AllowAutoTopicCreation: true,
	}
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes JSON payloads. A nil Publisher is disabled and returns
// ErrDisabled.
type Publisher struct {
	writer MessageWriter
}

func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

// NewPublisherFromClient returns nil when no brokers are configured.
func NewPublisherFromClient(c *Client, topic string) *Publisher {
	if !c.Enabled() {
		return nil
	}

	return NewPublisher(c.NewWriter(topic))
}

func (p *Publisher) PublishJSON(ctx context.Context, key string, payload any) error {
	if p == nil || p.writer == nil {
		return ErrDisabled
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	msg := kafka.Message{Key: []byte(key), Value: data, Time: time.Now().UTC()}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}

	return p.writer.Close()
}
