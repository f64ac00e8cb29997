package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// resendSender delivers messages through the Resend HTTP API. The two
// notification messages become two API calls on the same client, in order.
type resendSender struct {
	client *resend.Client
	from   string
}

func newResendSender(apiKey, from string) *resendSender {
	return &resendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (r *resendSender) Send(ctx context.Context, msgs []Message) error {
	for _, m := range msgs {
		params := &resend.SendEmailRequest{
			From:    r.from,
			To:      []string{m.To},
			Subject: m.Subject,
			Html:    m.HTML,
		}
		if m.ReplyTo != "" {
			params.ReplyTo = m.ReplyTo
		}
		if _, err := r.client.Emails.SendWithContext(ctx, params); err != nil {
			return fmt.Errorf("resend send failed: %w", err)
		}
	}
	return nil
}
