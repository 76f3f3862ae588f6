package notify

import (
	"context"
	"strings"

	"github.com/mdmdirector/phonewatch/config"
	"github.com/mdmdirector/phonewatch/types"
	"github.com/mdmdirector/phonewatch/utils"
	"github.com/pkg/errors"
)

// AlertSubject is the subject line of every alert email
const AlertSubject = "⚠️ Geelark Cloud Phone Alert"

// Notifier delivers an alert message
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// Message is a plain text email
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// BuildMessage composes the alert email: one line per alert, a blank line, then
// the full provider response.
func BuildMessage(cfg *config.Config, alerts []types.Alert, raw []byte) Message {
	lines := make([]string, 0, len(alerts))
	for _, alert := range alerts {
		lines = append(lines, alert.String())
	}

	body := strings.Join(lines, "\n") + "\n\nFull API response:\n" + utils.PrettyJSON(raw)

	return Message{
		From:    cfg.EmailSender,
		To:      cfg.EmailReceiver,
		Subject: AlertSubject,
		Body:    body,
	}
}

// New returns the notifier for the configured transport
func New(cfg *config.Config) (Notifier, error) {
	switch cfg.EmailTransport {
	case config.TransportSMTP, "":
		return NewSMTPNotifier(cfg.SMTPServer, cfg.SMTPPort, cfg.EmailSender, cfg.EmailPassword), nil
	case config.TransportPostmark:
		return NewPostmarkNotifier(cfg.PostmarkServerToken)
	default:
		return nil, errors.Wrapf(config.ErrUnknownTransport, "EMAIL_TRANSPORT=%q", cfg.EmailTransport)
	}
}
