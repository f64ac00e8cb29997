package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
)

// Message is a single outbound email, already rendered.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// sender delivers an ordered batch of messages through one transport session.
type sender interface {
	Send(ctx context.Context, msgs []Message) error
}

// Service is the notification dispatcher. For each accepted submission it sends
// the operator notice first and the sender acknowledgment second, strictly in
// that order; a failure on the first aborts the second. When no transport is
// configured every Notify call is a successful no-op.
type Service struct {
	transport  sender
	from       string
	operatorTo string
}

// NewService selects the mail transport from config. Missing credentials leave
// the service unconfigured rather than failing startup.
func NewService(cfg *config.Config) *Service {
	s := &Service{
		from:       cfg.MailFrom,
		operatorTo: cfg.ContactEmailTo,
	}

	switch cfg.MailProvider {
	case "resend":
		if cfg.ResendAPIKey != "" && cfg.MailFrom != "" {
			s.transport = newResendSender(cfg.ResendAPIKey, cfg.MailFrom)
		}
	default: // "smtp"
		if cfg.SMTPHost != "" && cfg.SMTPUsername != "" && cfg.SMTPPassword != "" {
			s.transport = newSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
		}
	}

	return s
}

// IsConfigured checks if a mail transport is available.
func (s *Service) IsConfigured() bool {
	return s.transport != nil
}

// Notify dispatches both notification messages for a stored submission.
func (s *Service) Notify(ctx context.Context, contact *domain.StoredContact) error {
	if s.transport == nil {
		return nil
	}

	notice, err := renderOperatorNotice(contact)
	if err != nil {
		return err
	}
	ack, err := renderAcknowledgment(contact)
	if err != nil {
		return err
	}

	msgs := []Message{
		{
			To:      s.operatorTo,
			ReplyTo: contact.Email,
			Subject: fmt.Sprintf("New message from %s", contact.Name),
			HTML:    notice,
		},
		{
			To:      contact.Email,
			Subject: "Thanks for getting in touch",
			HTML:    ack,
		},
	}

	if err := s.transport.Send(ctx, msgs); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

// operatorNoticeTemplate is the HTML template for the notice sent to the site owner
const operatorNoticeTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a1a2e; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1a1a2e; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.Name}} ({{.Email}})</div>
            </div>
            <div class="field">
                <div class="label">Received:</div>
                <div class="value">{{.StoredAt.Format "2006-01-02 15:04:05 MST"}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the portfolio contact form.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

// acknowledgmentTemplate is the auto-reply sent back to the submitter
const acknowledgmentTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Thanks for getting in touch</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .content { padding: 20px; background: #f9f9f9; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="content">
            <p>Hi {{.Name}},</p>
            <p>Thanks for reaching out! Your message has been received and I will
            get back to you as soon as I can.</p>
            <p>Best regards</p>
        </div>
        <div class="footer">
            <p>This is an automated confirmation; replies to this address are not monitored.</p>
        </div>
    </div>
</body>
</html>`

var (
	operatorTmpl = template.Must(template.New("operator_notice").Parse(operatorNoticeTemplate))
	ackTmpl      = template.Must(template.New("acknowledgment").Parse(acknowledgmentTemplate))
)

func renderOperatorNotice(contact *domain.StoredContact) (string, error) {
	var body bytes.Buffer
	if err := operatorTmpl.Execute(&body, contact); err != nil {
		return "", fmt.Errorf("failed to execute operator notice template: %w", err)
	}
	return body.String(), nil
}

func renderAcknowledgment(contact *domain.StoredContact) (string, error) {
	var body bytes.Buffer
	if err := ackTmpl.Execute(&body, contact); err != nil {
		return "", fmt.Errorf("failed to execute acknowledgment template: %w", err)
	}
	return body.String(), nil
}
