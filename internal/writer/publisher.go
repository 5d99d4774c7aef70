package writer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/rickgao/moex-quotes/internal/model"
)

// MessageWriter is the subset of *kafka.Writer used by Publisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaWriter creates a synchronous writer that keys partitions by SECID.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
}

// Publisher publishes report quotes as JSON messages.
type Publisher struct {
	writer  MessageWriter
	timeout time.Duration
	logger  *slog.Logger

	mu      sync.Mutex
	metrics WriterMetrics
}

// NewPublisher creates a new Publisher. A zero timeout leaves the caller's
// context deadline as the only limit.
func NewPublisher(w MessageWriter, timeout time.Duration, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		writer:  w,
		timeout: timeout,
		logger:  logger,
	}
}

// WriteQuotes publishes one message per quote in a single write.
func (p *Publisher) WriteQuotes(ctx context.Context, quotes []model.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	msgs, err := toMessages(quotes)
	if err != nil {
		return err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.mu.Lock()
		p.metrics.Errors++
		p.mu.Unlock()
		return fmt.Errorf("publish quotes: %w", err)
	}

	p.mu.Lock()
	p.metrics.Published += int64(len(msgs))
	p.mu.Unlock()

	p.logger.Debug("published quotes", "count", len(msgs))
	return nil
}

// Stats returns current metrics.
func (p *Publisher) Stats() WriterMetrics {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.metrics
}

// Close closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toMessages(quotes []model.Quote) ([]kafka.Message, error) {
	msgs := make([]kafka.Message, len(quotes))
	for i, q := range quotes {
		payload, err := json.Marshal(q)
		if err != nil {
			return nil, fmt.Errorf("encode quote %s: %w", q.SecID, err)
		}
		msgs[i] = kafka.Message{
			Key:   []byte(q.SecID),
			Value: payload,
			Headers: []kafka.Header{
				{Key: "report", Value: []byte(q.Report)},
			},
		}
	}
	return msgs, nil
}
