package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestExpvarRecorderTalliesPerOperation(t *testing.T) {
	rec := NewExpvarRecorder("")
	ctx := context.Background()

	rec.Observe(ctx, "create_material", true, 10*time.Millisecond)
	rec.Observe(ctx, "create_material", true, 5*time.Millisecond)
	rec.Observe(ctx, "create_material", false, 2*time.Millisecond)
	rec.Observe(ctx, "", true, time.Millisecond)

	snap := rec.Snapshot()
	stats := snap["create_material"]
	if stats.TotalMS != 17 {
		t.Fatalf("expected 17ms total, got %v", stats.TotalMS)
	}
	if stats.Success != 2 || stats.Error != 1 {
		t.Fatalf("expected 2 successes and 1 error, got %+v", stats)
	}
	if len(snap) != 1 {
		t.Fatalf("empty operation must be dropped, got %+v", snap)
	}
	if !strings.HasPrefix(rec.Name(), "catalog_ops_") {
		t.Fatalf("unexpected generated name %q", rec.Name())
	}
}

func TestTraceLogRecordsSpans(t *testing.T) {
	var buf bytes.Buffer
	log := NewTraceLog(&buf)

	_, span := log.Start(context.Background(), "recompute_hardness")
	span.End(nil)
	_, span = log.Start(context.Background(), "recompute_hardness")
	span.End(errors.New("boom"))

	spans := log.Spans()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Err != "" || spans[1].Err != "boom" {
		t.Fatalf("unexpected errors %q %q", spans[0].Err, spans[1].Err)
	}

	dec := json.NewDecoder(&buf)
	var first Span
	if err := dec.Decode(&first); err != nil {
		t.Fatalf("decode first line: %v", err)
	}
	if first.Operation != "recompute_hardness" {
		t.Fatalf("unexpected operation %q", first.Operation)
	}
}

func TestTraceLogNilWriter(t *testing.T) {
	log := NewTraceLog(nil)
	_, span := log.Start(context.Background(), "op")
	span.End(nil)
	if len(log.Spans()) != 1 {
		t.Fatalf("expected span retained without writer")
	}
}
