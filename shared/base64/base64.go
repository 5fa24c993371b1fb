package base64

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

// GetContentType returns the media type of a data URL, or "" when file is not one.
func GetContentType(file string) string {
	if !strings.HasPrefix(file, dataPrefix) {
		return ""
	}

	start := len(dataPrefix)
	end := strings.Index(file, base64Marker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode returns the payload bytes of a base64 data URL.
func Decode(file string) ([]byte, error) {
	idx := strings.Index(file, base64Marker)
	if !strings.HasPrefix(file, dataPrefix) || idx == -1 {
		return nil, fmt.Errorf("not a base64 data URL")
	}

	data, err := base64.StdEncoding.DecodeString(file[idx+len(base64Marker):])
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return data, nil
}
