package types

import "time"

// LogEvent is a single CloudWatch log line from a function's log group.
type LogEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}
