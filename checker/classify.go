package checker

import "github.com/mdmdirector/phonewatch/types"

// Classify turns a status response into alerts. A failed response yields a single
// API error alert and the detail lists are not looked at. Phones with any other
// status or failure code are treated as healthy.
func Classify(resp *types.StatusResponse) []types.Alert {
	alerts := []types.Alert{}

	if !resp.IsSuccess() {
		return append(alerts, types.Alert{
			Kind:    types.AlertAPIError,
			Message: resp.Message(),
		})
	}

	for _, phone := range resp.Data.SuccessDetails {
		if phone.Status == types.PhoneStatusExpired {
			alerts = append(alerts, types.Alert{
				Kind:       types.AlertExpired,
				PhoneID:    phone.ID,
				SerialName: phone.SerialName,
			})
		}
	}

	for _, fail := range resp.Data.FailDetails {
		if fail.Code == types.FailCodePhoneNotFound {
			alerts = append(alerts, types.Alert{
				Kind:    types.AlertNotFound,
				PhoneID: fail.ID,
			})
		}
	}

	return alerts
}
