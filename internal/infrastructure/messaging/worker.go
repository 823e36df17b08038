package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/servicehub/internal/domain/notifications"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	json "github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Worker drains the notification topic and delivers each message
type Worker struct {
	reader     messageReader
	dispatcher *dispatcher
	logger     logger.Logger
}

// NewWorker creates a Worker consuming settings.Topic as part of settings.GroupID
func NewWorker(settings *config.KafkaSettings, senders []notifications.Sender, logger logger.Logger) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  settings.Brokers,
		GroupID:  settings.GroupID,
		Topic:    settings.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return newWorker(reader, senders, logger.With("topic", settings.Topic, "group", settings.GroupID))
}

func newWorker(reader messageReader, senders []notifications.Sender, logger logger.Logger) *Worker {
	return &Worker{reader: reader, dispatcher: newDispatcher(senders), logger: logger}
}

// Run consumes until ctx is cancelled. Delivery failures are logged and the message is committed.
func (w *Worker) Run(ctx context.Context) error {
	defer w.reader.Close()

	w.logger.Info("notification worker started")
	for {
		record, err := w.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				w.logger.Info("notification worker stopped")
				return nil
			}
			return fmt.Errorf("failed to fetch notification: %w", err)
		}

		var msg notifications.Message
		if err := json.Unmarshal(record.Value, &msg); err != nil {
			w.logger.Error("dropping malformed notification", "offset", record.Offset, "error", err)
		} else if err := w.dispatcher.deliver(ctx, msg); err != nil {
			w.logger.Warn("notification delivery failed", "event", msg.Event, "channel", string(msg.Channel), "error", err)
		}

		if err := w.reader.CommitMessages(ctx, record); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to commit notification: %w", err)
		}
	}
}
