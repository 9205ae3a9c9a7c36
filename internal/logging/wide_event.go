package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type ctxKey struct{}

// WideEvent is one structured log entry per admin request, filled in as the
// request passes through routing, filtering and field resolution.
type WideEvent struct {
	TraceID   string    `json:"trace_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`

	HTTPMethod     string `json:"http_method,omitempty"`
	HTTPPath       string `json:"http_path,omitempty"`
	HTTPStatusCode int    `json:"http_status_code,omitempty"`
	HTTPDurationMs int64  `json:"http_duration_ms,omitempty"`

	Resource    string   `json:"resource,omitempty"`
	RecordID    string   `json:"record_id,omitempty"`
	EditMode    string   `json:"edit_mode,omitempty"`
	FilterKeys  []string `json:"filter_keys,omitempty"`
	ResultCount int      `json:"result_count,omitempty"`

	Error          string `json:"error,omitempty"`
	ErrorStage     string `json:"error_stage,omitempty"`
	PanicRecovered bool   `json:"panic_recovered,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty"`
}

func NewWideEvent(eventType string) *WideEvent {
	return &WideEvent{
		TraceID:   uuid.NewString(),
		EventType: eventType,
		Timestamp: time.Now(),
		Metadata:  make(map[string]any),
	}
}

func WithContext(ctx context.Context, event *WideEvent) context.Context {
	return context.WithValue(ctx, ctxKey{}, event)
}

func FromContext(ctx context.Context) *WideEvent {
	event, _ := ctx.Value(ctxKey{}).(*WideEvent)
	return event
}

// GetTraceID returns the trace id of the request's event, or "" outside a
// request.
func GetTraceID(ctx context.Context) string {
	if event := FromContext(ctx); event != nil {
		return event.TraceID
	}
	return ""
}

func enrich(ctx context.Context, fn func(*WideEvent)) {
	if event := FromContext(ctx); event != nil {
		fn(event)
	}
}

func EnrichHTTP(ctx context.Context, method, path string) {
	enrich(ctx, func(e *WideEvent) {
		e.HTTPMethod, e.HTTPPath = method, path
	})
}

func EnrichHTTPStatus(ctx context.Context, statusCode int) {
	enrich(ctx, func(e *WideEvent) { e.HTTPStatusCode = statusCode })
}

func EnrichHTTPDuration(ctx context.Context, duration time.Duration) {
	enrich(ctx, func(e *WideEvent) { e.HTTPDurationMs = duration.Milliseconds() })
}

func EnrichResource(ctx context.Context, resource, recordID string) {
	enrich(ctx, func(e *WideEvent) {
		e.Resource, e.RecordID = resource, recordID
	})
}

func EnrichEditMode(ctx context.Context, mode string) {
	enrich(ctx, func(e *WideEvent) { e.EditMode = mode })
}

func EnrichFilters(ctx context.Context, keys []string) {
	enrich(ctx, func(e *WideEvent) { e.FilterKeys = keys })
}

func EnrichResultCount(ctx context.Context, count int) {
	enrich(ctx, func(e *WideEvent) { e.ResultCount = count })
}

// EnrichError records the first failure of the request and the stage it
// happened in.
func EnrichError(ctx context.Context, err error, stage string) {
	if err == nil {
		return
	}
	enrich(ctx, func(e *WideEvent) {
		if e.Error == "" {
			e.Error, e.ErrorStage = err.Error(), stage
		}
	})
}

func EnrichPanic(ctx context.Context) {
	enrich(ctx, func(e *WideEvent) { e.PanicRecovered = true })
}

func EnrichMetadata(ctx context.Context, key string, value any) {
	enrich(ctx, func(e *WideEvent) { e.Metadata[key] = value })
}

type attrs []slog.Attr

func (a *attrs) str(key, value string) {
	if value != "" {
		*a = append(*a, slog.String(key, value))
	}
}

func (a *attrs) num(key string, value int64) {
	if value != 0 {
		*a = append(*a, slog.Int64(key, value))
	}
}

// Emit logs the event at error level when the request failed, info otherwise.
func Emit(ctx context.Context) {
	event := FromContext(ctx)
	if event == nil {
		return
	}

	a := attrs{
		slog.String("trace_id", event.TraceID),
		slog.String("event_type", event.EventType),
		slog.Time("timestamp", event.Timestamp),
	}
	a.str("http_method", event.HTTPMethod)
	a.str("http_path", event.HTTPPath)
	a.num("http_status_code", int64(event.HTTPStatusCode))
	a.num("http_duration_ms", event.HTTPDurationMs)
	a.str("resource", event.Resource)
	a.str("record_id", event.RecordID)
	a.str("edit_mode", event.EditMode)
	if len(event.FilterKeys) > 0 {
		a = append(a, slog.Any("filter_keys", event.FilterKeys))
	}
	a.num("result_count", int64(event.ResultCount))
	a.str("error", event.Error)
	a.str("error_stage", event.ErrorStage)
	if event.PanicRecovered {
		a = append(a, slog.Bool("panic_recovered", true))
	}
	if len(event.Metadata) > 0 {
		a = append(a, slog.Any("metadata", event.Metadata))
	}

	level := slog.LevelInfo
	if event.Error != "" || event.PanicRecovered {
		level = slog.LevelError
	}
	slog.LogAttrs(ctx, level, "wide_event", a...)
}
