package base64

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// GetContentType extracts the MIME type from a data URL, or returns an empty
// string when the value is not a data URL.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode strips the data-URL prefix when present and decodes the payload.
func Decode(file string) ([]byte, error) {
	payload := file

	if idx := strings.Index(file, ";base64,"); idx != -1 {
		payload = file[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return data, nil
}
