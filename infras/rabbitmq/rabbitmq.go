package rabbitmq

//go:generate go run go.uber.org/mock/mockgen -source=./rabbitmq.go -destination=./mocks/rabbitmq_mock.go -package=mocks

import (
	"agendador/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json"

var ErrNotConfigured = errors.New("rabbitmq url is not configured")

// Publisher sends persistent JSON messages to durable queues on the default exchange.
type Publisher interface {
	Publish(ctx context.Context, queue, messageID string, payload any) error
	Close() error
}

type publisherImpl struct {
	url      string
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	declared map[string]bool
}

// New does not dial; the connection is opened on first publish and
// re-opened after any channel failure.
func New(config *config.Config) Publisher {
	return &publisherImpl{
		url:      config.RabbitMQ.URL,
		declared: map[string]bool{},
	}
}

func (p *publisherImpl) Publish(ctx context.Context, queue, messageID string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal rabbitmq payload: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	channel, err := p.ensureChannel()
	if err != nil {
		return err
	}

	if !p.declared[queue] {
		if _, err = channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			p.reset()

			return fmt.Errorf("failed to declare rabbitmq queue %s: %w", queue, err)
		}

		p.declared[queue] = true
	}

	err = channel.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.reset()

		return fmt.Errorf("failed to publish to rabbitmq queue %s: %w", queue, err)
	}

	return nil
}

func (p *publisherImpl) ensureChannel() (*amqp.Channel, error) {
	if p.url == "" {
		return nil, ErrNotConfigured
	}

	if p.channel != nil && !p.channel.IsClosed() {
		return p.channel, nil
	}

	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	p.conn = conn
	p.channel = channel

	log.Info().Msg("Connected to RabbitMQ")

	return channel, nil
}

func (p *publisherImpl) reset() {
	if p.channel != nil {
		_ = p.channel.Close()
	}

	if p.conn != nil {
		_ = p.conn.Close()
	}

	p.channel = nil
	p.conn = nil
	p.declared = map[string]bool{}
}

func (p *publisherImpl) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.reset()

	return nil
}
