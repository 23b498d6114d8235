package experiment

import (
	"context"

	"github.com/oqtopus-team/oqtopus-fidelity/core"
	"github.com/oqtopus-team/oqtopus-fidelity/noise"
)

// ToleranceWindow reports, per noise level, how far the RX angle may drift
// before fidelity drops below the threshold.
type ToleranceWindow struct{}

func (e *ToleranceWindow) Name() string {
	return ToleranceWindowName
}

func (e *ToleranceWindow) Description() string {
	return "width of the RX angle window meeting the fidelity threshold per noise level"
}

func (e *ToleranceWindow) Run(ctx context.Context, s *core.ExperimentSetting) (core.Result, error) {
	axis, err := angleAxis(s, core.DefaultAngleAxis)
	if err != nil {
		return nil, err
	}
	d, err := newDriver(s)
	if err != nil {
		return nil, err
	}
	r, err := d.ToleranceWindows(ctx, s.DiscreteNoiseLevels, axis, s.ThetaIdeal, s.FidelityThreshold, noise.ScaledFidelityModel{})
	if err != nil {
		return nil, err
	}
	return r, nil
}
