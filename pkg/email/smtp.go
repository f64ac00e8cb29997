package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
)

// smtpSender delivers messages over a single authenticated SMTP session.
// Both notification messages for a submission go through the same session,
// one MAIL transaction each, in the order given.
type smtpSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func newSMTPSender(host, port, username, password, from string) *smtpSender {
	return &smtpSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *smtpSender) Send(ctx context.Context, msgs []Message) error {
	addr := net.JoinHostPort(s.host, s.port)

	// Bound the dial; a hung relay must not hang the request forever
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial failed: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake failed: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}); err != nil {
			return fmt.Errorf("smtp starttls failed: %w", err)
		}
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}

	for _, m := range msgs {
		if err := s.transmit(client, m); err != nil {
			return err
		}
	}

	return client.Quit()
}

func (s *smtpSender) transmit(client *smtp.Client, m Message) error {
	if err := client.Mail(s.from); err != nil {
		return fmt.Errorf("smtp MAIL failed: %w", err)
	}
	if err := client.Rcpt(m.To); err != nil {
		return fmt.Errorf("smtp RCPT failed: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA failed: %w", err)
	}
	if _, err := w.Write(buildMIME(s.from, m)); err != nil {
		w.Close()
		return fmt.Errorf("smtp write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp DATA close failed: %w", err)
	}
	return nil
}

func buildMIME(from string, m Message) []byte {
	headers := "From: " + from + "\r\n" +
		"To: " + m.To + "\r\n"
	if m.ReplyTo != "" {
		headers += "Reply-To: " + m.ReplyTo + "\r\n"
	}
	headers += "Subject: " + m.Subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n"
	return []byte(headers + m.HTML)
}
