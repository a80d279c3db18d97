package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	sessionPrefix = "AUDIT"
	archivePrefix = "ARCH"
)

// NewSessionID returns a session ID like "AUDIT-2025-1a2b3c4d".
func NewSessionID(fiscalYear string) string {
	return fmt.Sprintf("%s-%s-%s", sessionPrefix, fiscalYear, shortUUID())
}

// NewArchiveID returns an archive ID like "ARCH-2025-1a2b3c4d".
func NewArchiveID(fiscalYear string) string {
	return fmt.Sprintf("%s-%s-%s", archivePrefix, fiscalYear, shortUUID())
}

// FiscalYear extracts the fiscal year from a session or archive ID.
func FiscalYear(id string) (string, error) {
	parts := strings.SplitN(id, "-", 3)
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid ID format: %q", id)
	}
	if parts[0] != sessionPrefix && parts[0] != archivePrefix {
		return "", fmt.Errorf("unknown ID prefix in %q", id)
	}
	return parts[1], nil
}

// IsSessionID reports whether id looks like a session ID.
func IsSessionID(id string) bool {
	return strings.HasPrefix(id, sessionPrefix+"-")
}

func shortUUID() string {
	return uuid.NewString()[:8]
}
