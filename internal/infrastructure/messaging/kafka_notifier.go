package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/notifications"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	json "github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaNotifier publishes notifications to a topic for the Worker to deliver
type kafkaNotifier struct {
	writer messageWriter
	logger logger.Logger
}

// NewKafkaNotifier creates a Notifier publishing JSON messages to settings.Topic
func NewKafkaNotifier(settings *config.KafkaSettings, logger logger.Logger) notifications.Notifier {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(settings.Brokers...),
		Topic:        settings.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &kafkaNotifier{writer: writer, logger: logger}
}

func (n *kafkaNotifier) Notify(ctx context.Context, msgs ...notifications.Message) {
	if len(msgs) == 0 {
		return
	}

	records := make([]kafka.Message, 0, len(msgs))
	for _, msg := range msgs {
		value, err := json.Marshal(msg)
		if err != nil {
			n.logger.Error("failed to encode notification", "event", msg.Event, "error", err)
			continue
		}
		records = append(records, kafka.Message{Key: []byte(msg.To), Value: value})
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), deliveryTimeout)
	defer cancel()

	if err := n.writer.WriteMessages(ctx, records...); err != nil {
		n.logger.Warn("failed to publish notifications", "count", len(records), "error", err)
	}
}

// Close flushes and closes the writer
func (n *kafkaNotifier) Close() error {
	return n.writer.Close()
}

// NewNotifier selects the Notifier for the configured queue mode
func NewNotifier(settings *config.NotificationSettings, senders []notifications.Sender, logger logger.Logger) (notifications.Notifier, error) {
	switch settings.Queue {
	case config.QueueDirect, "":
		return NewDirectNotifier(senders, logger), nil
	case config.QueueKafka:
		return NewKafkaNotifier(&settings.Kafka, logger), nil
	default:
		return nil, fmt.Errorf("unsupported notification queue: %s", settings.Queue)
	}
}
