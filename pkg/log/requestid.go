package log

import "github.com/weiawesome/wes-io-live/ulid-service/pkg/ulid"

// NewRequestID returns a fresh lowercase ULID for correlating log lines,
// so request ids sort by arrival time.
func NewRequestID() string {
	return ulid.New().String()
}
