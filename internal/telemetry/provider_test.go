package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNewRequiresWriter(t *testing.T) {
	if _, err := New(Config{ServiceName: "arcade"}); err == nil {
		t.Error("New() without a writer should fail")
	}
}

func TestShutdownExportsCounters(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(Config{ServiceName: "arcade-test", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	counter, err := p.MeterProvider().Meter("test").Int64Counter("match.rounds.started")
	if err != nil {
		t.Fatalf("Int64Counter() error = %v", err)
	}
	counter.Add(context.Background(), 3)

	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "match.rounds.started") || !strings.Contains(out, "arcade-test") {
		t.Errorf("exported metrics missing counter or service name:\n%s", out)
	}
}
