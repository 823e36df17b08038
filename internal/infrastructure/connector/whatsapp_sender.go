package connector

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/notifications"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"

	json "github.com/goccy/go-json"
)

type whatsAppText struct {
	Body string `json:"body"`
}

type whatsAppMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsAppText `json:"text"`
}

// whatsAppSender delivers text messages through the WhatsApp Cloud API
type whatsAppSender struct {
	settings config.WhatsAppSettings
	client   *http.Client
}

// NewWhatsAppSender creates the WhatsApp Sender
func NewWhatsAppSender(settings config.WhatsAppSettings) notifications.Sender {
	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &whatsAppSender{settings: settings, client: &http.Client{Timeout: timeout}}
}

func (s *whatsAppSender) Channel() notifications.Channel { return notifications.ChannelWhatsApp }

func (s *whatsAppSender) Enabled() bool { return s.settings.Enabled }

func (s *whatsAppSender) Send(ctx context.Context, msg notifications.Message) error {
	payload, err := json.Marshal(whatsAppMessage{
		MessagingProduct: "whatsapp",
		To:               strings.TrimPrefix(msg.To, "+"),
		Type:             "text",
		Text:             whatsAppText{Body: msg.Body},
	})
	if err != nil {
		return fmt.Errorf("failed to encode whatsapp message: %w", err)
	}

	endpoint := strings.TrimRight(s.settings.BaseURL, "/") + "/" + s.settings.PhoneNumberID + "/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.settings.AccessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp delivery to %s failed: %w", msg.To, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("whatsapp delivery to %s failed with status %d: %s", msg.To, resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}

// NewSenders builds the configured channel senders
func NewSenders(settings *config.NotificationSettings) []notifications.Sender {
	return []notifications.Sender{
		NewSMTPSender(settings.Email),
		NewWhatsAppSender(settings.WhatsApp),
	}
}
