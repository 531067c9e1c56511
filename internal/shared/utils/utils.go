package utils

import (
	"github.com/google/uuid"
)

// IsValidUUID reports whether s is a canonical UUID string.
func IsValidUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
