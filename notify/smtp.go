package notify

import (
	"context"

	"github.com/pkg/errors"
	"gopkg.in/mail.v2"
)

// Dialer opens an authenticated SMTP session
type Dialer interface {
	Dial() (mail.SendCloser, error)
}

// SMTPNotifier sends alerts over SMTP with mandatory STARTTLS
type SMTPNotifier struct {
	dialer Dialer
}

func NewSMTPNotifier(host string, port int, username, password string) *SMTPNotifier {
	d := mail.NewDialer(host, port, username, password)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	return &SMTPNotifier{dialer: d}
}

// NewSMTPNotifierWithDialer is used by tests to swap the network dialer
func NewSMTPNotifierWithDialer(dialer Dialer) *SMTPNotifier {
	return &SMTPNotifier{dialer: dialer}
}

// Notify opens one session, sends the message and always closes the session.
func (n *SMTPNotifier) Notify(ctx context.Context, msg Message) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := mail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	s, err := n.dialer.Dial()
	if err != nil {
		return errors.Wrap(err, "dial smtp server")
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close smtp session")
		}
	}()

	if err := mail.Send(s, m); err != nil {
		return errors.Wrap(err, "send alert email")
	}
	return nil
}
