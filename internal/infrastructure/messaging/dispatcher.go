package messaging

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/servicehub/internal/domain/notifications"
)

// dispatcher routes a message to the sender of its channel
type dispatcher struct {
	senders map[notifications.Channel]notifications.Sender
}

func newDispatcher(senders []notifications.Sender) *dispatcher {
	d := &dispatcher{senders: make(map[notifications.Channel]notifications.Sender, len(senders))}
	for _, s := range senders {
		d.senders[s.Channel()] = s
	}
	return d
}

// deliver sends msg. A channel without an enabled sender is skipped silently.
func (d *dispatcher) deliver(ctx context.Context, msg notifications.Message) error {
	sender, ok := d.senders[msg.Channel]
	if !ok || !sender.Enabled() {
		return nil
	}
	if err := sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("%s %s: %w", msg.Channel, msg.Event, err)
	}
	return nil
}
