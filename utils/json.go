package utils

import (
	"bytes"
	"encoding/json"
)

// PrettyJSON indents a raw JSON document by two spaces. Input that is not
// valid JSON is returned unchanged.
func PrettyJSON(raw []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return string(raw)
	}
	return out.String()
}
