package squares

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr returns everything fn writes to os.Stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugLog(t *testing.T) {
	output := captureStderr(t, func() {
		debugLog(FrameStats{Sprites: 7, Flushes: 2, Outlines: 3}, PoolStats{Live: 4, Free: 5, Overflow: 1})
	})
	for _, want := range []string{
		"[squares] sprites: 7 | flushes: 2 | outlines: 3",
		"[squares] shapes live: 4 | free: 5 | overflow: 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q, got: %q", want, output)
		}
	}
}

func TestDebugMode_PoolOverflowWarning(t *testing.T) {
	s := NewScene(&World{Width: 10, Height: 10, Pool: NewShapePool(1)})
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	output := captureStderr(t, func() {
		s.World.Pool.Acquire()
		s.World.Pool.Acquire()
	})
	if !strings.Contains(output, "shape pool exhausted") {
		t.Errorf("expected overflow warning in stderr, got: %q", output)
	}
}

func TestDebugMode_PoolQuietWhenOff(t *testing.T) {
	p := NewShapePool(1)
	output := captureStderr(t, func() {
		p.Acquire()
		p.Acquire()
	})
	if output != "" {
		t.Errorf("expected no output outside debug mode, got: %q", output)
	}
}

func TestDebugMode_GestureLogged(t *testing.T) {
	h, _, _ := newTestInput()
	h.SetDebugMode(true)

	output := captureStderr(t, func() {
		h.OnPress(screen(25, 25))
		h.OnRelease(screen(75, 25))
	})
	if !strings.Contains(output, "gesture right from (25, 25) to (75, 25), cell hit: true") {
		t.Errorf("expected gesture line in stderr, got: %q", output)
	}
}
