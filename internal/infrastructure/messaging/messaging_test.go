//go:build unit
// +build unit

package messaging

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/notifications"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/testutil"

	json "github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingSender struct {
	mu      sync.Mutex
	channel notifications.Channel
	enabled bool
	fail    bool
	sent    []notifications.Message
}

func (s *recordingSender) Channel() notifications.Channel { return s.channel }

func (s *recordingSender) Enabled() bool { return s.enabled }

func (s *recordingSender) Send(_ context.Context, msg notifications.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("smtp relay down")
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) messages() []notifications.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notifications.Message(nil), s.sent...)
}

func TestDirectNotifier_DeliversPerChannel(t *testing.T) {
	email := &recordingSender{channel: notifications.ChannelEmail, enabled: true}
	whatsapp := &recordingSender{channel: notifications.ChannelWhatsApp, enabled: true}
	notifier := NewDirectNotifier([]notifications.Sender{email, whatsapp}, testutil.SetupTestLogger(t))

	msgs := notifications.To(notifications.Recipient{Name: "Asha", Email: "asha@example.com", Phone: "+919812345678"},
		notifications.EventBookingCreated, "Booking received", "We received your booking")
	notifier.Notify(context.Background(), msgs...)

	require.Len(t, email.messages(), 1)
	assert.Equal(t, "asha@example.com", email.messages()[0].To)
	require.Len(t, whatsapp.messages(), 1)
	assert.Equal(t, "+919812345678", whatsapp.messages()[0].To)
}

func TestDirectNotifier_SkipsDisabledAndSwallowsFailures(t *testing.T) {
	email := &recordingSender{channel: notifications.ChannelEmail, enabled: true, fail: true}
	whatsapp := &recordingSender{channel: notifications.ChannelWhatsApp, enabled: false}
	notifier := NewDirectNotifier([]notifications.Sender{email, whatsapp}, testutil.SetupTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NotPanics(t, func() {
		notifier.Notify(ctx,
			notifications.Message{Channel: notifications.ChannelEmail, To: "a@b.co", Body: "x"},
			notifications.Message{Channel: notifications.ChannelWhatsApp, To: "+919800000000", Body: "x"},
		)
	})
	assert.Empty(t, whatsapp.messages())
}

type fakeWriter struct {
	mu      sync.Mutex
	written []kafka.Message
	err     error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaNotifier_PublishesJSON(t *testing.T) {
	writer := &fakeWriter{}
	notifier := &kafkaNotifier{writer: writer, logger: testutil.SetupTestLogger(t)}

	notifier.Notify(context.Background(), notifications.Message{
		Channel: notifications.ChannelEmail,
		To:      "asha@example.com",
		Subject: "Welcome",
		Body:    "Hello",
		Event:   notifications.EventRegistered,
	})

	require.Len(t, writer.written, 1)
	assert.Equal(t, []byte("asha@example.com"), writer.written[0].Key)

	var decoded notifications.Message
	require.NoError(t, json.Unmarshal(writer.written[0].Value, &decoded))
	assert.Equal(t, notifications.EventRegistered, decoded.Event)
	assert.Equal(t, notifications.ChannelEmail, decoded.Channel)
}

func TestKafkaNotifier_WriteFailureIsLogged(t *testing.T) {
	notifier := &kafkaNotifier{writer: &fakeWriter{err: errors.New("broker down")}, logger: testutil.SetupTestLogger(t)}

	assert.NotPanics(t, func() {
		notifier.Notify(context.Background(), notifications.Message{Channel: notifications.ChannelEmail, To: "a@b.co"})
	})
}

type fakeReader struct {
	records   chan kafka.Message
	mu        sync.Mutex
	committed []kafka.Message
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	case rec := <-r.records:
		return rec, nil
	}
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *fakeReader) commitCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.committed)
}

func TestWorker_DeliversAndStopsOnCancel(t *testing.T) {
	email := &recordingSender{channel: notifications.ChannelEmail, enabled: true}
	reader := &fakeReader{records: make(chan kafka.Message, 2)}
	worker := newWorker(reader, []notifications.Sender{email}, testutil.SetupTestLogger(t))

	value, err := json.Marshal(notifications.Message{Channel: notifications.ChannelEmail, To: "asha@example.com", Body: "hi"})
	require.NoError(t, err)
	reader.records <- kafka.Message{Value: value, Offset: 1}
	reader.records <- kafka.Message{Value: []byte("not json"), Offset: 2}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	require.Eventually(t, func() bool { return reader.commitCount() == 2 }, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}

	require.Len(t, email.messages(), 1)
	assert.True(t, reader.closed)
}

func TestNewNotifier_SelectsMode(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	n, err := NewNotifier(&config.NotificationSettings{Queue: config.QueueDirect}, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &directNotifier{}, n)

	_, err = NewNotifier(&config.NotificationSettings{Queue: "sqs"}, nil, logger)
	assert.Error(t, err)
}
