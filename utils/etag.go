package utils

import (
	"crypto/sha1"
	"fmt"
	"time"
)

// GenerateETag derives a strong ETag from a document id and its last
// update time.
func GenerateETag(id string, updatedAt time.Time) string {
	sum := sha1.Sum([]byte(id + updatedAt.UTC().Format(time.RFC3339Nano)))
	return fmt.Sprintf(`"%x"`, sum)
}
