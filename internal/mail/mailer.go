/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

// Package mail sends operator notifications and submitter confirmations for
// form submissions. Delivery is best-effort: callers log failures and never
// roll back persisted records because of them.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/acronis/go-appkit/log"

	"github.com/dumppro/leadsvc/internal/storage"
)

// Mailer is the notification boundary of the submission pipeline.
type Mailer interface {
	SendQuoteNotification(ctx context.Context, q *storage.Quote) error
	SendQuoteConfirmation(ctx context.Context, q *storage.Quote) error
	SendContactNotification(ctx context.Context, m *storage.ContactMessage) error
	SendContactConfirmation(ctx context.Context, m *storage.ContactMessage) error
}

// SMTPParams carries the settings of the SMTP transport.
type SMTPParams struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
}

// SMTPMailer delivers mail through an SMTP relay.
type SMTPMailer struct {
	client *gomail.Client
	params SMTPParams
}

var _ Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates a Mailer backed by an SMTP relay.
func NewSMTPMailer(params SMTPParams) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(params.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if params.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(params.Username),
			gomail.WithPassword(params.Password),
		)
	}
	client, err := gomail.NewClient(params.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPMailer{client: client, params: params}, nil
}

func (m *SMTPMailer) send(ctx context.Context, to, replyTo, subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.params.From); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	if replyTo != "" {
		if err := msg.ReplyTo(replyTo); err != nil {
			return fmt.Errorf("set reply-to address: %w", err)
		}
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// SendQuoteNotification mails the new quote request to the operator.
func (m *SMTPMailer) SendQuoteNotification(ctx context.Context, q *storage.Quote) error {
	body, err := renderQuoteNotification(q)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("New Quote Request - ID: %s", q.ID)
	return m.send(ctx, m.params.AdminEmail, q.Email, subject, body)
}

// SendQuoteConfirmation mails the confirmation to the submitter.
func (m *SMTPMailer) SendQuoteConfirmation(ctx context.Context, q *storage.Quote) error {
	body, err := renderQuoteConfirmation(q)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Quote Confirmation - ID: %s", q.ID)
	return m.send(ctx, q.Email, "", subject, body)
}

// SendContactNotification mails the new contact message to the operator.
func (m *SMTPMailer) SendContactNotification(ctx context.Context, msg *storage.ContactMessage) error {
	body, err := renderContactNotification(msg)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("New Contact Form Submission - %s", msg.Name)
	return m.send(ctx, m.params.AdminEmail, msg.Email, subject, body)
}

// SendContactConfirmation mails the confirmation to the submitter.
func (m *SMTPMailer) SendContactConfirmation(ctx context.Context, msg *storage.ContactMessage) error {
	body, err := renderContactConfirmation(msg)
	if err != nil {
		return err
	}
	return m.send(ctx, msg.Email, "", "We received your message", body)
}

// DisabledMailer is used when no SMTP transport is configured.
// It logs what would have been sent and reports success.
type DisabledMailer struct {
	Logger log.FieldLogger
}

var _ Mailer = (*DisabledMailer)(nil)

func (m *DisabledMailer) logSkip(kind, recipient, recordID string) error {
	m.Logger.Warn("mail transport is not configured, skipping delivery",
		log.String("mail_kind", kind),
		log.String("recipient", recipient),
		log.String("record_id", recordID),
	)
	return nil
}

// SendQuoteNotification implements Mailer.
func (m *DisabledMailer) SendQuoteNotification(_ context.Context, q *storage.Quote) error {
	return m.logSkip("quote_notification", "operator", q.ID)
}

// SendQuoteConfirmation implements Mailer.
func (m *DisabledMailer) SendQuoteConfirmation(_ context.Context, q *storage.Quote) error {
	return m.logSkip("quote_confirmation", q.Email, q.ID)
}

// SendContactNotification implements Mailer.
func (m *DisabledMailer) SendContactNotification(_ context.Context, msg *storage.ContactMessage) error {
	return m.logSkip("contact_notification", "operator", msg.ID)
}

// SendContactConfirmation implements Mailer.
func (m *DisabledMailer) SendContactConfirmation(_ context.Context, msg *storage.ContactMessage) error {
	return m.logSkip("contact_confirmation", msg.Email, msg.ID)
}
