package profiler

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func TestTick(t *testing.T) {
	var buf bytes.Buffer
	start := time.Unix(0, 0)
	clock := start
	p := NewProfiler(
		WithLogger(log.New(&buf, "", 0)),
		WithUpdateInterval(time.Second),
		withClock(func() time.Time { return clock }),
	)

	for i := 0; i < 59; i++ {
		clock = clock.Add(time.Second / 60)
		if p.Tick(1.0 / 60) {
			t.Fatalf("Tick() logged after %d frames, before the interval elapsed", i+1)
		}
	}

	clock = start.Add(time.Second)
	if !p.Tick(1.0 / 60) {
		t.Fatal("Tick() did not log once the interval elapsed")
	}

	out := buf.String()
	if !strings.Contains(out, "FPS: 60.00") {
		t.Errorf("log %q does not report 60 FPS", out)
	}
	if !strings.Contains(out, "Frame: 16.667 ms") {
		t.Errorf("log %q does not report the mean frame time", out)
	}

	clock = clock.Add(time.Millisecond)
	if p.Tick(0.001) {
		t.Error("Tick() logged right after a reset")
	}
}
