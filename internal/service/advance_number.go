package service

import (
	"crypto/rand"
	"fmt"
	"time"
)

// newAdvanceNumber formats <prefix>-YYYYMMDD-<8 hex>. Uniqueness is enforced
// by the advances_advance_number_key constraint; callers retry on conflict.
func newAdvanceNumber(prefix string, now time.Time) (string, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return fmt.Sprintf("%s-%s-%X", prefix, now.UTC().Format("20060102"), b[:]), nil
}
