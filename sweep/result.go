package sweep

import (
	"github.com/go-faster/jx"
)

// Curve is a 1-D sweep result: Values[i] was measured at Axis.At(i).
type Curve struct {
	AxisName string
	Axis     Axis
	Values   []float64
}

// Family is a 2-D sweep result, one curve over the same inner axis per
// noise level, kept in the order the levels were given.
type Family struct {
	Levels []float64
	Curves []Curve
}

// Get returns the curve measured at the given noise level.
func (f *Family) Get(level float64) (Curve, bool) {
	for i, l := range f.Levels {
		if l == level {
			return f.Curves[i], true
		}
	}
	return Curve{}, false
}

// ToleranceWidth is the angle range whose fidelity met the threshold at one
// noise level. Width is max - min of the passing values even when they do
// not form one run; Contiguous tells whether they do.
type ToleranceWidth struct {
	Width      float64
	Passing    int
	Contiguous bool
}

type ToleranceResult struct {
	Threshold float64
	Levels    []float64
	Widths    []ToleranceWidth
}

func (c *Curve) EncodeFields(e *jx.Encoder) {
	e.FieldStart("curves")
	e.ArrStart()
	c.encode(e, nil)
	e.ArrEnd()
}

func (c *Curve) encode(e *jx.Encoder, level *float64) {
	e.ObjStart()
	if level != nil {
		e.FieldStart("noise_level")
		e.Float64(*level)
	}
	e.FieldStart("axis")
	e.Str(c.AxisName)
	e.FieldStart("x")
	encodeFloats(e, c.Axis.values)
	e.FieldStart("y")
	encodeFloats(e, c.Values)
	e.ObjEnd()
}

func (f *Family) EncodeFields(e *jx.Encoder) {
	e.FieldStart("families")
	e.ArrStart()
	for i := range f.Curves {
		f.Curves[i].encode(e, &f.Levels[i])
	}
	e.ArrEnd()
}

func (r *ToleranceResult) EncodeFields(e *jx.Encoder) {
	e.FieldStart("tolerance")
	e.ObjStart()
	e.FieldStart("threshold")
	e.Float64(r.Threshold)
	e.FieldStart("noise_levels")
	encodeFloats(e, r.Levels)
	e.FieldStart("widths")
	e.ArrStart()
	for _, w := range r.Widths {
		e.Float64(w.Width)
	}
	e.ArrEnd()
	e.FieldStart("passing")
	e.ArrStart()
	for _, w := range r.Widths {
		e.Int(w.Passing)
	}
	e.ArrEnd()
	e.FieldStart("contiguous")
	e.ArrStart()
	for _, w := range r.Widths {
		e.Bool(w.Contiguous)
	}
	e.ArrEnd()
	e.ObjEnd()
}

func encodeFloats(e *jx.Encoder, vs []float64) {
	e.ArrStart()
	for _, v := range vs {
		e.Float64(v)
	}
	e.ArrEnd()
}
