package handling

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const (
	DefaultStreamInterval = time.Second
	MinStreamInterval     = 250 * time.Millisecond
	MaxStreamInterval     = time.Minute
)

// StreamOptions tune a server-sent event stream
type StreamOptions struct {
	Interval time.Duration
}

// ParseStreamOptions parses HTTP query parameters into StreamOptions. interval_ms
// is clamped to the supported range.
func ParseStreamOptions(r *http.Request) (*StreamOptions, error) {
	opts := &StreamOptions{Interval: DefaultStreamInterval}

	raw := r.URL.Query().Get("interval_ms")
	if raw == "" {
		return opts, nil
	}

	ms, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid interval_ms: %w", err)
	}

	opts.Interval = min(max(time.Duration(ms)*time.Millisecond, MinStreamInterval), MaxStreamInterval)
	return opts, nil
}
