package mocks

import (
	"context"

	"github.com/mdmdirector/phonewatch/notify"
)

// MockNotifier - mock implementation of Notifier for testing
type MockNotifier struct {
	NotifyFunc func(ctx context.Context, msg notify.Message) error

	// Call tracking
	NotifyCalls []notify.Message
}

// Ensure MockNotifier implements Notifier
var _ notify.Notifier = (*MockNotifier)(nil)

// Notify implements Notifier.Notify
func (m *MockNotifier) Notify(ctx context.Context, msg notify.Message) error {
	m.NotifyCalls = append(m.NotifyCalls, msg)
	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, msg)
	}
	return nil
}
