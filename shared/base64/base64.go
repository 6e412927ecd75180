package base64

import (
	b64 "encoding/base64"
	"fmt"
	"strings"
)

// GetContentType extracts the MIME type from a data URL, or "" when the
// string is not a base64 data URL.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode returns the decoded payload of a base64 data URL.
func Decode(file string) ([]byte, error) {
	marker := ";base64,"

	idx := strings.Index(file, marker)
	if idx == -1 {
		return nil, fmt.Errorf("not a base64 data URL")
	}

	payload, err := b64.StdEncoding.DecodeString(file[idx+len(marker):])
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return payload, nil
}
