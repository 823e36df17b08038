package connector

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/notifications"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
)

type smtpSendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// smtpSender delivers email notifications through an SMTP relay
type smtpSender struct {
	settings config.EmailSettings
	send     smtpSendFunc
}

// NewSMTPSender creates the email Sender
func NewSMTPSender(settings config.EmailSettings) notifications.Sender {
	return &smtpSender{settings: settings, send: smtp.SendMail}
}

func (s *smtpSender) Channel() notifications.Channel { return notifications.ChannelEmail }

func (s *smtpSender) Enabled() bool { return s.settings.Enabled }

func (s *smtpSender) Send(ctx context.Context, msg notifications.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.ContainsAny(msg.To, "\r\n") || strings.ContainsAny(msg.Subject, "\r\n") {
		return fmt.Errorf("refusing to send email with header line breaks")
	}

	var auth smtp.Auth
	if s.settings.Username != "" {
		auth = smtp.PlainAuth("", s.settings.Username, s.settings.Password, s.settings.Host)
	}

	addr := net.JoinHostPort(s.settings.Host, strconv.Itoa(s.settings.Port))
	if err := s.send(addr, auth, s.settings.From, []string{msg.To}, s.compose(msg)); err != nil {
		return fmt.Errorf("smtp delivery to %s failed: %w", msg.To, err)
	}
	return nil
}

func (s *smtpSender) compose(msg notifications.Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.settings.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}
