package checker

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdmdirector/phonewatch/config"
	"github.com/mdmdirector/phonewatch/geelark"
	"github.com/mdmdirector/phonewatch/notify"
	"github.com/mdmdirector/phonewatch/types"
	"github.com/mdmdirector/phonewatch/utils"
	"github.com/pkg/errors"
)

// Checker runs one status check: fetch, classify, and notify if anything is wrong
type Checker struct {
	cfg      *config.Config
	client   geelark.StatusClient
	notifier notify.Notifier
}

// Result describes a completed run
type Result struct {
	RunID    string
	Alerts   []types.Alert
	Notified bool
}

// Healthy returns true when the run produced no alerts
func (r *Result) Healthy() bool {
	return len(r.Alerts) == 0
}

func New(cfg *config.Config, client geelark.StatusClient, notifier notify.Notifier) *Checker {
	return &Checker{
		cfg:      cfg,
		client:   client,
		notifier: notifier,
	}
}

// Run performs the check once. Provider side errors become alerts; transport,
// decode and notification failures are returned.
func (c *Checker) Run(ctx context.Context) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}
	ids := c.cfg.DeviceIDs()

	DebugLogger(LogHolder{RunID: result.RunID, PhoneCount: len(ids), Message: "requesting phone status"})

	resp, raw, err := c.client.PhoneStatus(ctx, ids)
	if err != nil {
		return result, errors.Wrap(err, "fetch phone status")
	}

	InfoLogger(LogHolder{RunID: result.RunID, Message: "API response: " + utils.PrettyJSON(raw)})

	result.Alerts = Classify(resp)
	for _, alert := range result.Alerts {
		WarnLogger(LogHolder{
			RunID:      result.RunID,
			PhoneID:    alert.PhoneID,
			SerialName: alert.SerialName,
			AlertKind:  string(alert.Kind),
			Message:    alert.String(),
		})
	}

	if result.Healthy() {
		InfoLogger(LogHolder{RunID: result.RunID, PhoneCount: len(ids), Message: "✅ All phones are healthy."})
		return result, nil
	}

	msg := notify.BuildMessage(c.cfg, result.Alerts, raw)
	if err := c.notifier.Notify(ctx, msg); err != nil {
		ErrorLogger(LogHolder{RunID: result.RunID, AlertCount: len(result.Alerts), Message: err.Error()})
		return result, errors.Wrap(err, "send alert")
	}
	result.Notified = true

	InfoLogger(LogHolder{RunID: result.RunID, AlertCount: len(result.Alerts), Message: "Alert email sent!"})
	return result, nil
}
