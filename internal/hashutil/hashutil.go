package hashutil

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Fingerprint returns a deterministic 7-character hex digest of parts.
// Parts are NUL-separated, so ("ab", "c") and ("a", "bc") differ.
func Fingerprint(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return fmt.Sprintf("%x", hash[:4])[:7]
}
