package experiment

import (
	"context"

	"github.com/oqtopus-team/oqtopus-fidelity/core"
	"github.com/oqtopus-team/oqtopus-fidelity/noise"
)

// CNOTNoise sweeps the full two-qubit channel model over noise strength.
type CNOTNoise struct{}

func (e *CNOTNoise) Name() string {
	return CNOTNoiseName
}

func (e *CNOTNoise) Description() string {
	return "CNOT fidelity under coherent ZZ error, T1/T2 relaxation and depolarizing noise"
}

func (e *CNOTNoise) Run(ctx context.Context, s *core.ExperimentSetting) (core.Result, error) {
	axis, err := noiseAxis(s, core.DefaultNoiseAxis)
	if err != nil {
		return nil, err
	}
	model, err := noise.NewFullChannelModel(noise.ParamsFromSetting(s))
	if err != nil {
		return nil, err
	}
	d, err := newDriver(s)
	if err != nil {
		return nil, err
	}
	r, err := d.NoiseSweep(ctx, axis, model)
	if err != nil {
		return nil, err
	}
	return r, nil
}
