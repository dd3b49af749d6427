package runtime

import (
	"github.com/buger/jsonparser"
	"github.com/rs/zerolog"
)

// Traceable is implemented by values whose wire form is JSON and that
// carry a correlation id worth surfacing in logs. The actor checks for
// it opportunistically; values that don't implement it are logged
// without a correlation id.
type Traceable interface {
	TraceJSON() []byte
}

// traceFields extracts a best-effort correlation id from v's JSON form
// (looking at "trace_id" then "id") and attaches it to the log event.
// Extraction failures are silent: tracing is diagnostic, never load-bearing.
func traceFields(e *zerolog.Event, v any) *zerolog.Event {
	t, ok := v.(Traceable)
	if !ok {
		return e
	}
	raw := t.TraceJSON()
	if len(raw) == 0 {
		return e
	}
	if id, err := jsonparser.GetString(raw, "trace_id"); err == nil && id != "" {
		return e.Str("trace_id", id)
	}
	if id, err := jsonparser.GetString(raw, "id"); err == nil && id != "" {
		return e.Str("id", id)
	}
	return e
}
