package experiment

import (
	"context"

	"github.com/oqtopus-team/oqtopus-fidelity/core"
	"github.com/oqtopus-team/oqtopus-fidelity/noise"
)

// FidelityVsNoise shows how the scaled noise proxy alone limits RX fidelity
// when calibration is perfect.
type FidelityVsNoise struct{}

func (e *FidelityVsNoise) Name() string {
	return FidelityVsNoiseName
}

func (e *FidelityVsNoise) Description() string {
	return "RX fidelity at perfect calibration against noise strength"
}

func (e *FidelityVsNoise) Run(ctx context.Context, s *core.ExperimentSetting) (core.Result, error) {
	axis, err := noiseAxis(s, fidelityVsNoiseAxis)
	if err != nil {
		return nil, err
	}
	d, err := newDriver(s)
	if err != nil {
		return nil, err
	}
	r, err := d.PerfectCalibrationSweep(ctx, axis, s.ThetaIdeal, noise.ScaledFidelityModel{})
	if err != nil {
		return nil, err
	}
	return r, nil
}
