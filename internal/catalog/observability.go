package catalog

import (
	"context"
	"encoding/json"
	"expvar"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// Logger receives structured service events. Key/value pairs alternate in kv.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// MetricsRecorder aggregates service operation outcomes.
type MetricsRecorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}

// Tracer opens spans around service operations.
type Tracer interface {
	Start(ctx context.Context, operation string) (context.Context, TraceSpan)
}

// TraceSpan terminates a span opened by a Tracer.
type TraceSpan interface {
	End(err error)
}

// OpStats tallies one operation: how often it succeeded, how often it
// failed, and the accumulated wall time in milliseconds.
type OpStats struct {
	Success int64   `json:"success"`
	Error   int64   `json:"error"`
	TotalMS float64 `json:"total_ms"`
}

var expvarSeq uint64

// ExpvarRecorder is the process-local MetricsRecorder: one OpStats per
// operation name, exported through expvar so /debug/vars shows catalogue
// activity without a scrape target. Use the Prometheus recorder when a
// scrape target exists.
type ExpvarRecorder struct {
	name string
	mu   sync.Mutex
	ops  map[string]OpStats
}

// NewExpvarRecorder publishes a recorder under name, or under a generated
// catalog_ops_N name when name is empty. Expvar names are process-global,
// hence the sequence counter rather than a fixed default.
func NewExpvarRecorder(name string) *ExpvarRecorder {
	if name == "" {
		name = fmt.Sprintf("catalog_ops_%d", atomic.AddUint64(&expvarSeq, 1))
	}
	rec := &ExpvarRecorder{name: name, ops: make(map[string]OpStats)}
	expvar.Publish(name, expvar.Func(func() any { return rec.Snapshot() }))
	return rec
}

// Name reports the expvar name the recorder was published under.
func (r *ExpvarRecorder) Name() string { return r.name }

// Observe implements MetricsRecorder. Observations without an operation
// name carry no information and are dropped.
func (r *ExpvarRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	r.mu.Lock()
	stats := r.ops[operation]
	if success {
		stats.Success++
	} else {
		stats.Error++
	}
	stats.TotalMS += float64(duration) / float64(time.Millisecond)
	r.ops[operation] = stats
	r.mu.Unlock()
}

// Snapshot copies the per-operation tallies.
func (r *ExpvarRecorder) Snapshot() map[string]OpStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]OpStats, len(r.ops))
	for op, stats := range r.ops {
		out[op] = stats
	}
	return out
}

// Span is one completed service operation as recorded by a TraceLog.
// Err is empty on success.
type Span struct {
	Operation  string    `json:"operation"`
	StartedAt  time.Time `json:"started_at"`
	DurationMS float64   `json:"duration_ms"`
	Err        string    `json:"err,omitempty"`
}

// TraceLog is a Tracer that appends completed spans to an in-memory log
// and, when given a writer, streams each span as one JSON line. The
// in-memory log makes spans inspectable without parsing the stream.
type TraceLog struct {
	mu    sync.Mutex
	spans []Span
	enc   *json.Encoder
}

// NewTraceLog builds a trace log. A nil writer keeps spans in memory only.
func NewTraceLog(w io.Writer) *TraceLog {
	log := &TraceLog{}
	if w != nil {
		log.enc = json.NewEncoder(w)
	}
	return log
}

// Spans copies the recorded spans in completion order.
func (l *TraceLog) Spans() []Span {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Span, len(l.spans))
	copy(out, l.spans)
	return out
}

// Start implements Tracer.
func (l *TraceLog) Start(ctx context.Context, operation string) (context.Context, TraceSpan) {
	return ctx, &openSpan{log: l, operation: operation, startedAt: time.Now().UTC()}
}

type openSpan struct {
	log       *TraceLog
	operation string
	startedAt time.Time
}

func (s *openSpan) End(err error) {
	span := Span{
		Operation:  s.operation,
		StartedAt:  s.startedAt,
		DurationMS: float64(time.Since(s.startedAt)) / float64(time.Millisecond),
	}
	if err != nil {
		span.Err = err.Error()
	}
	s.log.mu.Lock()
	s.log.spans = append(s.log.spans, span)
	if s.log.enc != nil {
		_ = s.log.enc.Encode(span)
	}
	s.log.mu.Unlock()
}
