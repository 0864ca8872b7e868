package sink

//go:generate go run go.uber.org/mock/mockgen -source=./sink.go -destination=../mocks/sink_mock.go -package=mocks

import (
	"agendador/config"
	"agendador/infras/kafka"
	"agendador/infras/rabbitmq"
	"agendador/internal/domains/notification/model"
	"agendador/shared/constant"
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	KindLog      = "log"
	KindKafka    = "kafka"
	KindRabbitMQ = "rabbitmq"
)

// Sink delivers one rendered message to an outside channel.
type Sink interface {
	Send(ctx context.Context, msg model.Message) error
	Name() string
}

// New selects the sink configured in NOTIFICATION_SINK; unknown values fall back to the log sink.
func New(cfg *config.Config, kafkaClient kafka.Client, publisher rabbitmq.Publisher) Sink {
	switch strings.ToLower(cfg.Notification.Sink) {
	case KindKafka:
		return NewKafka(kafkaClient, cfg.Notification.Topic)
	case KindRabbitMQ:
		return NewRabbitMQ(publisher, cfg.Notification.Queue)
	case KindLog, constant.Empty:
		return NewLog()
	default:
		log.Warn().Str("sink", cfg.Notification.Sink).Msg("Unknown notification sink, using log")

		return NewLog()
	}
}

type logSink struct{}

// NewLog writes messages to the application log. It never fails.
func NewLog() Sink {
	return logSink{}
}

func (logSink) Name() string {
	return KindLog
}

func (logSink) Send(_ context.Context, msg model.Message) error {
	log.Info().
		Str("event_type", msg.EventType).
		Str("reservation_id", msg.ReservationID).
		Str("to", msg.Recipient.Email).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("Notification")

	return nil
}

type kafkaSink struct {
	client kafka.Client
	topic  string
}

// NewKafka keys every record by reservation id so a reservation's messages stay ordered.
func NewKafka(client kafka.Client, topic string) Sink {
	return &kafkaSink{
		client: client,
		topic:  topic,
	}
}

func (k *kafkaSink) Name() string {
	return KindKafka
}

func (k *kafkaSink) Send(ctx context.Context, msg model.Message) error {
	err := k.client.SendMessages(ctx, k.topic, kafka.Message{
		Key:   msg.ReservationID,
		Value: msg,
	})
	if err != nil {
		return fmt.Errorf("failed to send notification to kafka: %w", err)
	}

	return nil
}

type rabbitMQSink struct {
	publisher rabbitmq.Publisher
	queue     string
}

func NewRabbitMQ(publisher rabbitmq.Publisher, queue string) Sink {
	return &rabbitMQSink{
		publisher: publisher,
		queue:     queue,
	}
}

func (r *rabbitMQSink) Name() string {
	return KindRabbitMQ
}

func (r *rabbitMQSink) Send(ctx context.Context, msg model.Message) error {
	messageID := msg.ReservationID + ":" + msg.EventType + ":" + msg.Recipient.ID

	if err := r.publisher.Publish(ctx, r.queue, messageID, msg); err != nil {
		return fmt.Errorf("failed to send notification to rabbitmq: %w", err)
	}

	return nil
}
