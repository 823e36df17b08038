package messaging

import (
	"context"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/notifications"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const deliveryTimeout = 15 * time.Second

// directNotifier delivers every message concurrently from the calling goroutine
type directNotifier struct {
	dispatcher *dispatcher
	logger     logger.Logger
}

// NewDirectNotifier creates a Notifier that sends through senders without a queue
func NewDirectNotifier(senders []notifications.Sender, logger logger.Logger) notifications.Notifier {
	return &directNotifier{dispatcher: newDispatcher(senders), logger: logger}
}

// Notify waits for all deliveries. The caller's cancellation does not abort them.
func (n *directNotifier) Notify(ctx context.Context, msgs ...notifications.Message) {
	if len(msgs) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), deliveryTimeout)
	defer cancel()

	var g errgroup.Group
	for _, msg := range msgs {
		msg := msg
		g.Go(func() error {
			if err := n.dispatcher.deliver(ctx, msg); err != nil {
				n.logger.Warn("notification delivery failed", "event", msg.Event, "channel", string(msg.Channel), "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}
