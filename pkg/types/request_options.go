package types

import "time"

// RequestOptions describes one outbound HTTP request against a deployed
// endpoint. Body may be a map (JSON-encoded before sending) or a raw string.
type RequestOptions struct {
	URL     string
	Method  string
	Headers map[string]string
	Query   map[string]string
	Body    any
	Timeout time.Duration
}
