package cloth

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string          `json:"action"`
	Label  string          `json:"label,omitempty"`
	FromX  float64         `json:"fromX,omitempty"`
	FromY  float64         `json:"fromY,omitempty"`
	ToX    float64         `json:"toX,omitempty"`
	ToY    float64         `json:"toY,omitempty"`
	Points []Vec2          `json:"points,omitempty"`
	Frames int             `json:"frames,omitempty"`
	Set    json.RawMessage `json:"set,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected strokes, setting changes, resets and
// screenshots across ticks for automated visual testing.
//
// Supported actions:
//
//	{"action": "cut", "fromX": .., "fromY": .., "toX": .., "toY": .., "frames": n}
//	{"action": "path", "points": [{"X": .., "Y": ..}, ...]}
//	{"action": "set", "set": {"cutDepth": 0.4, "viewAngle": 30}}
//	{"action": "wait", "frames": n}
//	{"action": "reset"}
//	{"action": "screenshot", "label": ".."}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached via RunConfig.TestScript.
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
		case "cut", "wait", "reset", "screenshot":
		case "path":
			if len(st.Points) < 2 {
				return nil, fmt.Errorf("parse test script: step %d: path needs at least 2 points", i)
			}
		case "set":
			if _, err := LoadSettings(st.Set, DefaultSettings()); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one tick. Called from Game.Update.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if g.input.Pending() > 0 {
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
	case "screenshot":
		g.Screenshot(st.Label)
	case "cut":
		g.input.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "path":
		g.input.InjectPress(st.Points[0].X, st.Points[0].Y)
		for _, p := range st.Points[1:] {
			g.input.InjectMove(p.X, p.Y)
		}
		last := st.Points[len(st.Points)-1]
		g.input.InjectRelease(last.X, last.Y)
	case "set":
		// Validated in LoadTestScript.
		next, _ := LoadSettings(st.Set, g.store.Load())
		g.store.Store(next)
	case "reset":
		g.sim.Reset()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && g.input.Pending() == 0 {
		r.done = true
	}
}
