// Package experiment wires the reference fidelity studies to the sweep
// drivers and the configured setting.
package experiment

import (
	"github.com/oqtopus-team/oqtopus-fidelity/core"
	"github.com/oqtopus-team/oqtopus-fidelity/sweep"
)

const (
	CNOTNoiseName       = "cnot-noise"
	FidelityVsNoiseName = "fidelity-vs-noise"
	RXCalibrationName   = "rx-calibration"
	ToleranceWindowName = "tolerance-window"
)

var (
	fidelityVsNoiseAxis = core.AxisSetting{Start: 0, Stop: 0.03, Num: 25}
	rxCalibrationAxis   = core.AxisSetting{Start: -0.1, Stop: 0.1, Num: 41}
)

// All returns one instance of every experiment, in the order `all` runs them.
func All() []core.Experiment {
	return []core.Experiment{
		&CNOTNoise{},
		&FidelityVsNoise{},
		&RXCalibration{},
		&ToleranceWindow{},
	}
}

func NewExperimentManager() (*core.ExperimentManager, error) {
	return core.NewExperimentManager(All()...)
}

func newDriver(s *core.ExperimentSetting) (*sweep.Driver, error) {
	x, err := sweep.NewExecutor(s.Workers)
	if err != nil {
		return nil, err
	}
	return sweep.NewDriver(x), nil
}

func noiseAxis(s *core.ExperimentSetting, def core.AxisSetting) (sweep.Axis, error) {
	return sweep.AxisFromSetting("noise_axis", s.NoiseValues, s.NoiseAxis, def)
}

func angleAxis(s *core.ExperimentSetting, def core.AxisSetting) (sweep.Axis, error) {
	return sweep.AxisFromSetting("angle_axis", s.AngleValues, s.AngleAxis, def)
}
