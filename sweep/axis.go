package sweep

import (
	"math"

	"github.com/oqtopus-team/oqtopus-fidelity/core"
)

// Axis is an immutable, non-empty, strictly increasing sequence of
// parameter values.
type Axis struct {
	values []float64
}

// NewAxis validates and copies values.
func NewAxis(field string, values []float64) (Axis, error) {
	if len(values) == 0 {
		return Axis{}, core.NewConfigurationError(field, "axis is empty")
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Axis{}, core.NewConfigurationError(field, "value %d is %g", i, v)
		}
		if i > 0 && !(v > values[i-1]) {
			return Axis{}, core.NewConfigurationError(field, "values must be strictly increasing, got %g after %g", v, values[i-1])
		}
	}
	vs := make([]float64, len(values))
	copy(vs, values)
	return Axis{values: vs}, nil
}

// Linspace returns num evenly spaced values over [start, stop], both
// endpoints included.
func Linspace(field string, start, stop float64, num int) (Axis, error) {
	if num < 1 {
		return Axis{}, core.NewConfigurationError(field, "num %d must be at least 1", num)
	}
	values := make([]float64, num)
	values[0] = start
	if num > 1 {
		step := (stop - start) / float64(num-1)
		for i := 1; i < num-1; i++ {
			values[i] = start + float64(i)*step
		}
		values[num-1] = stop
	}
	return NewAxis(field, values)
}

// AxisFromSetting prefers explicit values, then an axis table, then def.
func AxisFromSetting(field string, values []float64, axis *core.AxisSetting, def core.AxisSetting) (Axis, error) {
	switch {
	case len(values) > 0:
		return NewAxis(field, values)
	case axis != nil:
		return Linspace(field, axis.Start, axis.Stop, axis.Num)
	default:
		return Linspace(field, def.Start, def.Stop, def.Num)
	}
}

func (a Axis) Len() int {
	return len(a.values)
}

func (a Axis) At(i int) float64 {
	return a.values[i]
}

// Values returns a copy of the axis values.
func (a Axis) Values() []float64 {
	vs := make([]float64, len(a.values))
	copy(vs, a.values)
	return vs
}

// Span is the distance between the first and last value.
func (a Axis) Span() float64 {
	if len(a.values) == 0 {
		return 0
	}
	return a.values[len(a.values)-1] - a.values[0]
}
