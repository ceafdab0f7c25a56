package squares

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script. Coordinates are in
// device pixels, as a player would touch them.
type testStep struct {
	Action string `json:"action"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	FromX  int    `json:"fromX,omitempty"`
	FromY  int    `json:"fromY,omitempty"`
	ToX    int    `json:"toX,omitempty"`
	ToY    int    `json:"toY,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner feeds a scripted sequence of presses, releases, swipes and waits
// into an InputHandler, one step per tick.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script:
//
//	{"steps": [
//	  {"action": "swipe", "fromX": 40, "fromY": 300, "toX": 140, "toY": 300},
//	  {"action": "wait", "frames": 30},
//	  {"action": "tap", "x": 40, "y": 300}
//	]}
//
// Valid actions are press, release, tap, swipe and wait.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "release", "tap", "swipe", "wait":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner. Its step method is called from Update
// before any input is processed.
func (h *InputHandler) SetTestRunner(runner *TestRunner) {
	h.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick.
func (r *TestRunner) step(h *InputHandler) {
	if r.done {
		return
	}
	// Let queued injections drain before advancing.
	if len(h.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		h.InjectPress(st.X, st.Y)
	case "release":
		h.InjectRelease(st.X, st.Y)
	case "tap":
		h.InjectTap(st.X, st.Y)
	case "swipe":
		h.InjectSwipe(st.FromX, st.FromY, st.ToX, st.ToY)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(h.injectQueue) == 0 {
		r.done = true
	}
}
