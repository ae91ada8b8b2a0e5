package spring

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
)

// defaultSettleFrames caps a "settle" step that does not name a frame count.
const defaultSettleFrames = 100000

// ScriptStep is a single action in a Script.
type ScriptStep struct {
	Action  string    `json:"action"`
	Value   []float64 `json:"value,omitempty"`
	Physics Config    `json:"physics"`
	Frames  int       `json:"frames,omitempty"`
	DT      float64   `json:"dt,omitempty"`
}

// Script is a deterministic sequence of spring operations: the replayable
// form of a frame-by-frame interaction, used to record and compare
// trajectories.
//
// JSON layout:
//
//	{
//	  "initial": [1],
//	  "physics": {"stiffness": 1, "mass": 1, "friction": 1, "precision": 0.01},
//	  "dt": 0.1,
//	  "steps": [
//	    {"action": "to", "value": [2]},
//	    {"action": "settle"}
//	  ]
//	}
//
// dt is required and must be positive. Actions: "to", "set" (value),
// "clear", "reconfigure" (physics), "step" (frames, default 1; optional dt
// override) and "settle" (update until idle; frames caps the wait).
type Script struct {
	Initial []float64    `json:"initial"`
	Physics Config       `json:"physics"`
	DT      float64      `json:"dt"`
	Steps   []ScriptStep `json:"steps"`
}

// Sample is one Update call recorded by Script.Run.
type Sample struct {
	Frame   int
	Changed bool
	Value   []float64
}

// Trace is the recorded trajectory of a script.
type Trace []Sample

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse spring script: %w", err)
	}
	if len(s.Initial) == 0 {
		return nil, fmt.Errorf("parse spring script: no initial value")
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse spring script: no steps")
	}
	if !(s.DT > 0) || math.IsInf(s.DT, 1) {
		return nil, fmt.Errorf("parse spring script: dt must be positive, got %v", s.DT)
	}
	for i, st := range s.Steps {
		if st.DT < 0 {
			return nil, fmt.Errorf("parse spring script: step %d: negative dt %v", i, st.DT)
		}
	}
	return &s, nil
}

// Run replays the script on a fresh spring and returns every Update call it
// made. A "settle" step records the updates that changed the value and stops
// at the first one that did not.
func (s *Script) Run() (Trace, error) {
	sp, err := New(s.Initial, s.Physics.Options()...)
	if err != nil {
		return nil, fmt.Errorf("run spring script: %w", err)
	}

	var trace Trace
	frame := 0
	record := func(changed bool) {
		trace = append(trace, Sample{Frame: frame, Changed: changed, Value: sp.Value()})
		frame++
	}

	for i, st := range s.Steps {
		dt := s.DT
		if st.DT != 0 {
			dt = st.DT
		}

		switch st.Action {
		case "to":
			err = sp.To(st.Value)
		case "set":
			err = sp.Set(st.Value)
		case "clear":
			sp.Clear()
		case "reconfigure":
			err = sp.Reconfigure(st.Physics.Options()...)
		case "step":
			frames := st.Frames
			if frames < 1 {
				frames = 1
			}
			for n := 0; n < frames; n++ {
				record(sp.Update(dt))
			}
		case "settle":
			limit := st.Frames
			if limit < 1 {
				limit = defaultSettleFrames
			}
			n := 0
			for ; n < limit && sp.Update(dt); n++ {
				record(true)
			}
			if n == limit && sp.Animating() {
				err = fmt.Errorf("did not settle within %d frames", limit)
			}
		default:
			err = fmt.Errorf("unknown action %q", st.Action)
		}

		if err != nil {
			return trace, fmt.Errorf("run spring script: step %d (%s): %w", i, st.Action, err)
		}
	}
	return trace, nil
}

// Final returns the value of the last sample, or nil for an empty trace.
func (t Trace) Final() []float64 {
	if len(t) == 0 {
		return nil
	}
	return t[len(t)-1].Value
}

// Changes counts the samples whose Update reported a change.
func (t Trace) Changes() int {
	n := 0
	for _, s := range t {
		if s.Changed {
			n++
		}
	}
	return n
}

// WriteCSV writes the trace as "frame,changed,v0,v1,..." rows with a header.
// Values use the shortest representation that round-trips exactly.
func (t Trace) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	axes := 0
	if len(t) > 0 {
		axes = len(t[0].Value)
	}

	header := make([]string, 0, axes+2)
	header = append(header, "frame", "changed")
	for i := 0; i < axes; i++ {
		header = append(header, "v"+strconv.Itoa(i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, axes+2)
	for _, s := range t {
		row = row[:0]
		row = append(row, strconv.Itoa(s.Frame), strconv.FormatBool(s.Changed))
		for _, v := range s.Value {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
