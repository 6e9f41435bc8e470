package feature

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns a flag identifier unique across calls within a process
// lifetime. It combines a nanosecond timestamp with a random suffix so
// that rapid successive calls in a single goroutine cannot collide.
// The format is an implementation detail and must not be parsed.
func NewID() string {
	ts := strconv.FormatInt(time.Now().UnixNano(), 36)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return ts + "-" + suffix
}
