package util

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// GenerateSessionCode generates a short human-readable code for a game session
func GenerateSessionCode() string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	code := make([]byte, 4)
	for i := range code {
		code[i] = charset[uint32(uuid.New().ID()&0xFF)%uint32(len(charset))]
	}
	return string(code)
}

// NormalizeSessionCode makes code lookups case and whitespace insensitive
func NormalizeSessionCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// must is a helper function to simplify error handling
func Must(data []byte, err error) json.RawMessage {
	if err != nil {
		panic(err)
	}
	return data
}
