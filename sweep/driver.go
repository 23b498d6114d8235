// Package sweep scans noise and calibration parameters and records one
// fidelity, or a tolerance width derived from fidelities, per axis point.
//
// Every driver is deterministic in its inputs. Points may be evaluated in
// parallel but results are always aligned with their axis positions, and a
// sweep either completes or returns an error with no partial result.
package sweep

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/oqtopus-team/oqtopus-fidelity/core"
	"github.com/oqtopus-team/oqtopus-fidelity/gate"
	"github.com/oqtopus-team/oqtopus-fidelity/quantum"
)

const (
	NoiseAxisName = "noise_strength"
	AngleAxisName = "angle_deviation"
)

// ChannelModel gives the fidelity of a full noisy channel at strength p.
type ChannelModel interface {
	Fidelity(p float64) (float64, error)
}

// ScaledModel gives the fidelity of a test unitary against an ideal one,
// degraded by noise strength p.
type ScaledModel interface {
	Fidelity(test, ideal *quantum.Operator, p float64) (float64, error)
}

type Driver struct {
	x *Executor
}

func NewDriver(x *Executor) *Driver {
	return &Driver{x: x}
}

// NoiseSweep evaluates the two-qubit channel model at every noise strength.
func (d *Driver) NoiseSweep(ctx context.Context, axis Axis, model ChannelModel) (*Curve, error) {
	if err := checkAxis(NoiseAxisName, axis); err != nil {
		return nil, err
	}
	values, err := d.x.Map(ctx, "noise", axis.Len(), func(i int) (float64, error) {
		return model.Fidelity(axis.At(i))
	})
	if err != nil {
		return nil, err
	}
	return &Curve{AxisName: NoiseAxisName, Axis: axis, Values: values}, nil
}

// PerfectCalibrationSweep scales the fidelity of RX(theta) against itself
// by every noise strength on the axis.
func (d *Driver) PerfectCalibrationSweep(ctx context.Context, axis Axis, theta float64, model ScaledModel) (*Curve, error) {
	if err := checkAxis(NoiseAxisName, axis); err != nil {
		return nil, err
	}
	ideal, err := gate.Build(gate.RX, theta)
	if err != nil {
		return nil, err
	}
	values, err := d.x.Map(ctx, "perfect_calibration", axis.Len(), func(i int) (float64, error) {
		return model.Fidelity(ideal, ideal, axis.At(i))
	})
	if err != nil {
		return nil, err
	}
	return &Curve{AxisName: NoiseAxisName, Axis: axis, Values: values}, nil
}

// CalibrationSweep evaluates RX(theta + δ) against RX(theta) for every
// deviation δ at every noise level.
func (d *Driver) CalibrationSweep(ctx context.Context, levels []float64, deviations Axis, theta float64, model ScaledModel) (*Family, error) {
	if err := checkLevels(levels); err != nil {
		return nil, err
	}
	if err := checkAxis(AngleAxisName, deviations); err != nil {
		return nil, err
	}
	ideal, err := gate.Build(gate.RX, theta)
	if err != nil {
		return nil, err
	}
	n := deviations.Len()
	tests := make([]*quantum.Operator, n)
	for j := range tests {
		tests[j] = gate.RXGate(theta + deviations.At(j))
	}
	values, err := d.x.Map(ctx, "calibration", len(levels)*n, func(i int) (float64, error) {
		return model.Fidelity(tests[i%n], ideal, levels[i/n])
	})
	if err != nil {
		return nil, err
	}
	f := &Family{
		Levels: append([]float64(nil), levels...),
		Curves: make([]Curve, len(levels)),
	}
	for k := range levels {
		f.Curves[k] = Curve{AxisName: AngleAxisName, Axis: deviations, Values: values[k*n : (k+1)*n : (k+1)*n]}
	}
	return f, nil
}

// ToleranceWindows reduces each curve of a calibration sweep to the width
// of the deviations whose fidelity is at least threshold.
func (d *Driver) ToleranceWindows(ctx context.Context, levels []float64, deviations Axis, theta, threshold float64, model ScaledModel) (*ToleranceResult, error) {
	if !(threshold >= 0 && threshold <= 1) {
		return nil, core.NewConfigurationError("fidelity_threshold", "%g is outside [0, 1]", threshold)
	}
	family, err := d.CalibrationSweep(ctx, levels, deviations, theta, model)
	if err != nil {
		return nil, err
	}
	r := &ToleranceResult{
		Threshold: threshold,
		Levels:    family.Levels,
		Widths:    make([]ToleranceWidth, len(family.Curves)),
	}
	for k, c := range family.Curves {
		r.Widths[k] = Tolerance(c.Axis, c.Values, threshold)
		if !r.Widths[k].Contiguous {
			zap.L().Warn(fmt.Sprintf("passing deviations at noise level %g are not contiguous, width %g overstates the window",
				family.Levels[k], r.Widths[k].Width))
		}
	}
	return r, nil
}

// Tolerance selects the axis values whose metric is at least threshold and
// returns max - min of the selection, or 0 when nothing passes.
func Tolerance(axis Axis, values []float64, threshold float64) ToleranceWidth {
	first, last, passing := -1, -1, 0
	for i, v := range values {
		if v >= threshold {
			if first < 0 {
				first = i
			}
			last = i
			passing++
		}
	}
	if passing == 0 {
		return ToleranceWidth{Contiguous: true}
	}
	return ToleranceWidth{
		Width:      axis.At(last) - axis.At(first),
		Passing:    passing,
		Contiguous: last-first+1 == passing,
	}
}

func checkAxis(field string, axis Axis) error {
	if axis.Len() == 0 {
		return core.NewConfigurationError(field, "axis is empty")
	}
	return nil
}

func checkLevels(levels []float64) error {
	if len(levels) == 0 {
		return core.NewConfigurationError("discrete_noise_levels", "no noise levels given")
	}
	for i, l := range levels {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return core.NewConfigurationError("discrete_noise_levels", "level %d is %g", i, l)
		}
	}
	return nil
}
