package notify

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// DryRunNotifier logs the message it would have sent
type DryRunNotifier struct{}

func (DryRunNotifier) Notify(_ context.Context, msg Message) error {
	log.WithFields(log.Fields{
		"from":    msg.From,
		"to":      msg.To,
		"subject": msg.Subject,
	}).Infof("dry run, not sending alert email:\n%s", msg.Body)
	return nil
}
