package types

import (
	"bytes"
	"encoding/json"
	"math"
)

// PhoneStatusExpired is the provider status for a phone whose plan has expired
const PhoneStatusExpired = 3

// FailCodePhoneNotFound is the provider failure code for an unknown phone id
const FailCodePhoneNotFound = 42001

// CodeUnknown marks a status or failure code that was missing or not an integer
const CodeUnknown = -1

// StatusRequest is the body POSTed to the phone status endpoint
type StatusRequest struct {
	IDs []string `json:"ids"`
}

// StatusResponse is the envelope returned by the phone status endpoint.
// Code and Msg are pointers so a missing field can be told apart from a zero value.
// Data is only decoded when Code is 0, so an error envelope never fails on its payload.
type StatusResponse struct {
	Code *int
	Msg  *string
	Data *StatusData
}

type StatusData struct {
	SuccessDetails []PhoneDetail
	FailDetails    []PhoneFailure
}

// PhoneDetail is a phone the provider found
type PhoneDetail struct {
	ID         string
	SerialName string
	Status     int
}

// PhoneFailure is a phone id the provider could not look up
type PhoneFailure struct {
	ID   string
	Code int
}

// IsSuccess returns true when the provider reported code 0 and sent a payload
func (r *StatusResponse) IsSuccess() bool {
	return r != nil && r.Code != nil && *r.Code == 0 && r.Data != nil
}

// Message returns the provider message, or "Unknown error" when none was sent
func (r *StatusResponse) Message() string {
	if r == nil || r.Msg == nil {
		return "Unknown error"
	}
	return *r.Msg
}

func (r *StatusResponse) UnmarshalJSON(b []byte) error {
	var envelope struct {
		Code json.RawMessage `json:"code"`
		Msg  json.RawMessage `json:"msg"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &envelope); err != nil {
		return err
	}

	*r = StatusResponse{}
	if code, ok := intValue(envelope.Code); ok {
		r.Code = &code
	}
	if !isNull(envelope.Msg) {
		msg := textValue(envelope.Msg)
		r.Msg = &msg
	}
	if r.Code != nil && *r.Code == 0 && isObject(envelope.Data) {
		var data StatusData
		if err := json.Unmarshal(envelope.Data, &data); err != nil {
			return err
		}
		r.Data = &data
	}
	return nil
}

// UnmarshalJSON decodes each detail entry on its own. Entries that are not
// objects are skipped so one bad entry can't hide the rest.
func (d *StatusData) UnmarshalJSON(b []byte) error {
	var aux struct {
		SuccessDetails json.RawMessage `json:"successDetails"`
		FailDetails    json.RawMessage `json:"failDetails"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*d = StatusData{}
	for _, entry := range entries(aux.SuccessDetails) {
		var detail PhoneDetail
		if err := json.Unmarshal(entry, &detail); err == nil {
			d.SuccessDetails = append(d.SuccessDetails, detail)
		}
	}
	for _, entry := range entries(aux.FailDetails) {
		var fail PhoneFailure
		if err := json.Unmarshal(entry, &fail); err == nil {
			d.FailDetails = append(d.FailDetails, fail)
		}
	}
	return nil
}

func (p *PhoneDetail) UnmarshalJSON(b []byte) error {
	var aux struct {
		ID         json.RawMessage `json:"id"`
		SerialName json.RawMessage `json:"serialName"`
		Status     json.RawMessage `json:"status"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*p = PhoneDetail{
		ID:         textValue(aux.ID),
		SerialName: textValue(aux.SerialName),
		Status:     CodeUnknown,
	}
	if status, ok := intValue(aux.Status); ok {
		p.Status = status
	}
	return nil
}

func (p *PhoneFailure) UnmarshalJSON(b []byte) error {
	var aux struct {
		ID   json.RawMessage `json:"id"`
		Code json.RawMessage `json:"code"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*p = PhoneFailure{ID: textValue(aux.ID), Code: CodeUnknown}
	if code, ok := intValue(aux.Code); ok {
		p.Code = code
	}
	return nil
}

// entries returns the object elements of a JSON array, or nothing if raw is not an array
func entries(raw json.RawMessage) []json.RawMessage {
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	objects := list[:0]
	for _, entry := range list {
		if isObject(entry) {
			objects = append(objects, entry)
		}
	}
	return objects
}

// intValue accepts JSON numbers with no fractional part. Strings are not coerced.
func intValue(raw json.RawMessage) (int, bool) {
	if isNull(raw) {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil || n != math.Trunc(n) {
		return 0, false
	}
	return int(n), true
}

// textValue returns a JSON string's value, or the raw JSON text for any other type
func textValue(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
