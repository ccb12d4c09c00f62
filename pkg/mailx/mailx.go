// Package mailx provides minimal outbound email delivery for invite
// notifications. Delivery is best effort; callers must never fail a request
// because a message could not be sent.
package mailx

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends messages. Implementations should honour ctx cancellation where
// the underlying transport allows it.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer delivers via a plain SMTP relay.
type SMTPMailer struct {
	Addr string // host:port of the relay
	From string // sender address
	Auth smtp.Auth
}

// NewSMTPMailer builds a mailer for the given relay. Auth may be nil for
// relays that accept unauthenticated submission.
func NewSMTPMailer(addr, from string, auth smtp.Auth) *SMTPMailer {
	return &SMTPMailer{Addr: addr, From: from, Auth: auth}
}

// Send delivers msg through the relay.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	if err := smtp.SendMail(m.Addr, m.Auth, m.From, []string{msg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("mailx: send to %s: %w", msg.To, err)
	}
	return nil
}
