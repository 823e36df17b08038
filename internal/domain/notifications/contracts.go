// Package notifications defines outbound messages, the channel senders and the notifier
// that application services call after a state change.
package notifications

import "context"

// Channel a message is delivered on
type Channel string

// Channels
const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

// Message is one outbound notification
type Message struct {
	Channel Channel `json:"channel"`
	To      string  `json:"to"`
	Subject string  `json:"subject,omitempty"`
	Body    string  `json:"body"`
	Event   string  `json:"event"`
}

// Sender delivers messages on one channel
type Sender interface {
	Channel() Channel
	Enabled() bool
	Send(ctx context.Context, msg Message) error
}

// Notifier delivers messages best effort. Failures are logged, never returned.
type Notifier interface {
	Notify(ctx context.Context, msgs ...Message)
}
