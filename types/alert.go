package types

import "fmt"

// AlertKind identifies the condition an Alert reports
type AlertKind string

const (
	AlertExpired  AlertKind = "expired"
	AlertNotFound AlertKind = "not_found"
	AlertAPIError AlertKind = "api_error"
)

// Alert is one anomaly found during a status check
type Alert struct {
	Kind       AlertKind
	PhoneID    string
	SerialName string
	// Message is the provider message for AlertAPIError
	Message string
}

// String renders the alert as a single line for the notification body
func (a Alert) String() string {
	switch a.Kind {
	case AlertExpired:
		return fmt.Sprintf("⚠️ Phone %s (%s) is expired (status %d).", a.PhoneID, a.SerialName, PhoneStatusExpired)
	case AlertNotFound:
		return fmt.Sprintf("❌ Phone %s does not exist (code %d).", a.PhoneID, FailCodePhoneNotFound)
	case AlertAPIError:
		return fmt.Sprintf("API error: %s", a.Message)
	default:
		return fmt.Sprintf("Phone %s: %s", a.PhoneID, a.Message)
	}
}
