package experiment

import (
	"context"

	"github.com/oqtopus-team/oqtopus-fidelity/core"
	"github.com/oqtopus-team/oqtopus-fidelity/noise"
)

// RXCalibration measures RX fidelity against angle miscalibration at each
// discrete noise level.
type RXCalibration struct{}

func (e *RXCalibration) Name() string {
	return RXCalibrationName
}

func (e *RXCalibration) Description() string {
	return "RX fidelity against angle deviation for each discrete noise level"
}

func (e *RXCalibration) Run(ctx context.Context, s *core.ExperimentSetting) (core.Result, error) {
	axis, err := angleAxis(s, rxCalibrationAxis)
	if err != nil {
		return nil, err
	}
	d, err := newDriver(s)
	if err != nil {
		return nil, err
	}
	r, err := d.CalibrationSweep(ctx, s.DiscreteNoiseLevels, axis, s.ThetaIdeal, noise.ScaledFidelityModel{})
	if err != nil {
		return nil, err
	}
	return r, nil
}
