// Package noise builds the noisy channels the sweeps evaluate.
//
// Two separate models live here. FullChannelModel
// composes real channels around an ideal two-qubit gate. ScaledFidelityModel
// never builds a channel: it multiplies an ideal-versus-test fidelity by
// (1 - p) afterwards.
package noise

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/oqtopus-team/oqtopus-fidelity/core"
	"github.com/oqtopus-team/oqtopus-fidelity/gate"
	"github.com/oqtopus-team/oqtopus-fidelity/quantum"
)

// Params are the fixed physical constants of a noise model. Times share
// one unit, seconds in the shipped defaults.
type Params struct {
	T1                     float64
	T2                     float64
	BaseDuration           float64
	Alpha                  float64
	CoherentErrorMagnitude float64
	ExcitedStatePopulation float64
}

func ParamsFromSetting(s *core.ExperimentSetting) Params {
	return Params{
		T1:                     s.T1,
		T2:                     s.T2,
		BaseDuration:           s.BaseGateDuration,
		Alpha:                  s.Alpha,
		CoherentErrorMagnitude: s.CoherentErrorMagnitude,
		ExcitedStatePopulation: s.ExcitedStatePopulation,
	}
}

// Tau is the exposure duration at noise strength p: operating points with
// more noise are assumed to run slower.
func (p Params) Tau(strength float64) float64 {
	return p.BaseDuration * (1 + p.Alpha*strength)
}

// Validate reports every physically invalid constant at once.
func (p Params) Validate() error {
	var err error
	if !(p.T1 > 0) {
		err = multierr.Append(err, core.NewModelError("params", fmt.Errorf("T1 must be positive, got %g", p.T1)))
	}
	if !(p.T2 > 0) {
		err = multierr.Append(err, core.NewModelError("params", fmt.Errorf("T2 must be positive, got %g", p.T2)))
	}
	if p.T2 > 2*p.T1 {
		err = multierr.Append(err, core.NewModelError("params", fmt.Errorf("T2 (%g) must not exceed 2*T1 (%g)", p.T2, 2*p.T1)))
	}
	if !(p.BaseDuration >= 0) {
		err = multierr.Append(err, core.NewModelError("params", fmt.Errorf("base duration must be non-negative, got %g", p.BaseDuration)))
	}
	if math.IsNaN(p.Alpha) || math.IsInf(p.Alpha, 0) {
		err = multierr.Append(err, core.NewModelError("params", fmt.Errorf("alpha must be finite, got %g", p.Alpha)))
	}
	if math.IsNaN(p.CoherentErrorMagnitude) || math.IsInf(p.CoherentErrorMagnitude, 0) {
		err = multierr.Append(err, core.NewModelError("params", fmt.Errorf("coherent error magnitude must be finite, got %g", p.CoherentErrorMagnitude)))
	}
	if !(p.ExcitedStatePopulation >= 0 && p.ExcitedStatePopulation <= 1) {
		err = multierr.Append(err, core.NewModelError("params", fmt.Errorf("excited state population %g outside [0, 1]", p.ExcitedStatePopulation)))
	}
	return err
}

// FullChannelModel is the two-qubit model
// Depol(p) ∘ Thermal(T1, T2, Tau(p))⊗Thermal(T1, T2, Tau(p)) ∘ U_err ∘ U_ideal,
// where the ideal gate acts first and depolarizing last.
type FullChannelModel struct {
	params   Params
	ideal    *quantum.Operator
	coherent *quantum.Channel
}

// NewFullChannelModel builds the p-independent parts of the model around
// the ideal CNOT.
func NewFullChannelModel(params Params) (*FullChannelModel, error) {
	return NewFullChannelModelFor(params, gate.CNOTGate())
}

// NewFullChannelModelFor is NewFullChannelModel around any two-qubit gate.
func NewFullChannelModelFor(params Params, ideal *quantum.Operator) (*FullChannelModel, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if ideal.NumQubits() != 2 {
		return nil, core.NewModelError("full channel model", fmt.Errorf("ideal gate acts on %d qubit(s), want 2", ideal.NumQubits()))
	}
	zap.L().Debug(fmt.Sprintf("full channel model/params:%+v", params))
	return &FullChannelModel{
		params:   params,
		ideal:    ideal,
		coherent: quantum.FromOperator(gate.RZZGate(params.CoherentErrorMagnitude)),
	}, nil
}

// Thermal returns the two-qubit relaxation channel at noise strength p, two
// independent single-qubit channels side by side.
func (m *FullChannelModel) Thermal(p float64) (*quantum.Channel, error) {
	single, err := quantum.ThermalRelaxation(m.params.T1, m.params.T2, m.params.Tau(p), m.params.ExcitedStatePopulation)
	if err != nil {
		return nil, core.NewModelError("thermal relaxation", err)
	}
	return single.Tensor(single), nil
}

// Channel composes the full noisy channel at noise strength p.
func (m *FullChannelModel) Channel(p float64) (*quantum.Channel, error) {
	thermal, err := m.Thermal(p)
	if err != nil {
		return nil, err
	}
	depol, err := quantum.Depolarizing(p, 2)
	if err != nil {
		return nil, core.NewModelError("depolarizing", err)
	}
	c, err := quantum.Compose(depol, thermal, m.coherent, quantum.FromOperator(m.ideal))
	if err != nil {
		return nil, core.NewModelError("compose", err)
	}
	return c, nil
}

// Fidelity is the average gate fidelity of Channel(p) against the ideal gate.
func (m *FullChannelModel) Fidelity(p float64) (float64, error) {
	c, err := m.Channel(p)
	if err != nil {
		return 0, err
	}
	f, err := quantum.AverageGateFidelity(c, m.ideal)
	if err != nil {
		return 0, core.NewModelError("average gate fidelity", err)
	}
	return f, nil
}

// ScaledFidelityModel degrades a unitary-versus-unitary fidelity by the
// factor (1 - p). It is a proxy for depolarizing loss, not a channel.
type ScaledFidelityModel struct{}

// Fidelity returns F(test, ideal) · (1 - p). The plain product accepts any
// p and turns negative above 1; here p must lie in [0, 1] so the result
// stays a fidelity.
func (ScaledFidelityModel) Fidelity(test, ideal *quantum.Operator, p float64) (float64, error) {
	if !(p >= 0 && p <= 1) {
		return 0, core.NewModelError("scaled fidelity", fmt.Errorf("noise strength %g outside [0, 1]", p))
	}
	f, err := quantum.OperatorFidelity(test, ideal)
	if err != nil {
		return 0, core.NewModelError("scaled fidelity", err)
	}
	return f * (1 - p), nil
}
