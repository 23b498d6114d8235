//go:build unit
// +build unit

package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/oqtopus-team/oqtopus-fidelity/core"
	"github.com/oqtopus-team/oqtopus-fidelity/sweep"
)

var fixedID = uuid.MustParse("9b6f1c2e-3d4a-4b5c-8d7e-0f1a2b3c4d5e")

func fixedWriter(out *bytes.Buffer, indent bool) *Writer {
	w := NewWriter(out, indent)
	w.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	w.newID = func() uuid.UUID { return fixedID }
	return w
}

func simpleSetting() *core.ExperimentSetting {
	return &core.ExperimentSetting{
		T1:                  1,
		T2:                  0.5,
		BaseGateDuration:    0.25,
		Alpha:               2,
		ThetaIdeal:          1,
		DiscreteNoiseLevels: []float64{0, 0.5},
		FidelityThreshold:   0.5,
		Workers:             1,
	}
}

func mustAxis(t *testing.T, values ...float64) sweep.Axis {
	a, err := sweep.NewAxis("axis", values)
	assert.Nil(t, err)
	return a
}

func TestWriteCurve(t *testing.T) {
	var buf bytes.Buffer
	curve := &sweep.Curve{
		AxisName: sweep.NoiseAxisName,
		Axis:     mustAxis(t, 0, 0.5, 1),
		Values:   []float64{1, 0.75, 0.5},
	}
	assert.Nil(t, fixedWriter(&buf, false).Write("cnot-noise", simpleSetting(), curve))
	assert.True(t, strings.HasSuffix(buf.String(), "}\n"))
	assert.JSONEq(t, heredoc.Doc(`
		{
		  "run_id": "9b6f1c2e-3d4a-4b5c-8d7e-0f1a2b3c4d5e",
		  "generated_at": "2026-10-19T12:00:00.000Z",
		  "experiment": "cnot-noise",
		  "parameters": {
		    "t1": 1,
		    "t2": 0.5,
		    "base_gate_duration": 0.25,
		    "alpha": 2,
		    "coherent_error_magnitude": 0,
		    "excited_state_population": 0,
		    "theta_ideal": 1,
		    "discrete_noise_levels": [0, 0.5],
		    "fidelity_threshold": 0.5,
		    "workers": 1
		  },
		  "curves": [
		    {"axis": "noise_strength", "x": [0, 0.5, 1], "y": [1, 0.75, 0.5]}
		  ]
		}
	`), buf.String())
}

func TestWriteFamilyAndTolerance(t *testing.T) {
	axis := mustAxis(t, -1, 0, 1)
	family := &sweep.Family{
		Levels: []float64{0, 0.5},
		Curves: []sweep.Curve{
			{AxisName: sweep.AngleAxisName, Axis: axis, Values: []float64{0.5, 1, 0.5}},
			{AxisName: sweep.AngleAxisName, Axis: axis, Values: []float64{0.25, 0.5, 0.25}},
		},
	}
	tolerance := &sweep.ToleranceResult{
		Threshold: 0.5,
		Levels:    []float64{0, 0.5},
		Widths: []sweep.ToleranceWidth{
			{Width: 2, Passing: 3, Contiguous: true},
			{Width: 0, Passing: 1, Contiguous: true},
		},
	}

	var buf bytes.Buffer
	w := fixedWriter(&buf, false)
	assert.Nil(t, w.Write("rx-calibration", simpleSetting(), family))
	assert.Nil(t, w.Write("tolerance-window", simpleSetting(), tolerance))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"families":[{"noise_level":0,"axis":"angle_deviation","x":[-1,0,1],"y":[0.5,1,0.5]}`)
	assert.Contains(t, lines[1], `"tolerance":{"threshold":0.5,"noise_levels":[0,0.5],"widths":[2,0],"passing":[3,1],"contiguous":[true,true]}`)
}

func TestWriteIndented(t *testing.T) {
	var buf bytes.Buffer
	curve := &sweep.Curve{AxisName: sweep.NoiseAxisName, Axis: mustAxis(t, 0), Values: []float64{1}}
	assert.Nil(t, fixedWriter(&buf, true).Write("fidelity-vs-noise", simpleSetting(), curve))
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"run_id\""))
	assert.Contains(t, buf.String(), `"experiment": "fidelity-vs-noise"`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteFailure(t *testing.T) {
	w := NewWriter(failingWriter{}, false)
	err := w.Write("cnot-noise", simpleSetting(), &sweep.Curve{Axis: mustAxis(t, 0), Values: []float64{1}})
	assert.EqualError(t, err, "disk full")
}

func TestNew(t *testing.T) {
	id := uuid.MustParse("9b2f4c1e-0d7a-4e55-8c3b-2a6f1e9d4b70")
	at := time.Date(2026, 10, 19, 18, 30, 0, 0, time.FixedZone("JST", 9*60*60))
	r := New(id, at, "cnot-noise", simpleSetting(), nil)
	assert.Equal(t, id, r.RunID)
	assert.Equal(t, "2026-10-19T09:30:00.000Z", r.GeneratedAt.String())
	b, err := r.MarshalJSON()
	assert.Nil(t, err)
	assert.Contains(t, string(b), `"experiment":"cnot-noise"`)
}
