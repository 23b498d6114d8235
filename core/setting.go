package core

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/mohae/deepcopy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/oqtopus-team/oqtopus-fidelity/common"
)

// AxisSetting describes an evenly spaced axis, endpoints included.
type AxisSetting struct {
	Start float64 `toml:"start" json:"start"`
	Stop  float64 `toml:"stop" json:"stop"`
	Num   int     `toml:"num" json:"num"`
}

// ExperimentSetting holds the physical constants and sweep ranges shared by
// the experiments. An explicit value list takes precedence over the
// matching axis table, and an experiment falls back to its own default
// axis when neither is set.
type ExperimentSetting struct {
	T1                     float64      `toml:"t1" json:"t1"`
	T2                     float64      `toml:"t2" json:"t2"`
	BaseGateDuration       float64      `toml:"base_gate_duration" json:"base_gate_duration"`
	Alpha                  float64      `toml:"alpha" json:"alpha"`
	CoherentErrorMagnitude float64      `toml:"coherent_error_magnitude" json:"coherent_error_magnitude"`
	ExcitedStatePopulation float64      `toml:"excited_state_population" json:"excited_state_population"`
	ThetaIdeal             float64      `toml:"theta_ideal" json:"theta_ideal"`
	NoiseAxis              *AxisSetting `toml:"noise_axis" json:"noise_axis,omitempty"`
	NoiseValues            []float64    `toml:"noise_values" json:"noise_values,omitempty"`
	AngleAxis              *AxisSetting `toml:"angle_axis" json:"angle_axis,omitempty"`
	AngleValues            []float64    `toml:"angle_values" json:"angle_values,omitempty"`
	DiscreteNoiseLevels    []float64    `toml:"discrete_noise_levels" json:"discrete_noise_levels"`
	FidelityThreshold      float64      `toml:"fidelity_threshold" json:"fidelity_threshold"`
	Workers                int          `toml:"workers" json:"workers"`
}

type Setting struct {
	Experiment ExperimentSetting `toml:"experiment"`
}

var (
	DefaultNoiseAxis = AxisSetting{Start: 0, Stop: 0.03, Num: 21}
	DefaultAngleAxis = AxisSetting{Start: -0.15, Stop: 0.15, Num: 601}
)

var defaultExperimentSetting = ExperimentSetting{
	T1:                     30e-6,
	T2:                     20e-6,
	BaseGateDuration:       300e-9,
	Alpha:                  15,
	CoherentErrorMagnitude: 0.03,
	ExcitedStatePopulation: 0,
	ThetaIdeal:             math.Pi / 2,
	DiscreteNoiseLevels:    []float64{0, 0.005, 0.01, 0.02},
	FidelityThreshold:      0.99,
	Workers:                1,
}

func DefaultExperimentSetting() ExperimentSetting {
	return deepcopy.Copy(defaultExperimentSetting).(ExperimentSetting)
}

func DefaultSetting() *Setting {
	return &Setting{Experiment: DefaultExperimentSetting()}
}

// NewSetting loads the setting file named by the configuration on top of
// the defaults and applies command line overrides.
func NewSetting(conf *Conf) (*Setting, error) {
	s := DefaultSetting()
	if conf.SettingPath != "" {
		if err := s.ParseFromPath(conf.SettingPath); err != nil {
			return nil, err
		}
	}
	if conf.Workers > 0 {
		s.Experiment.Workers = conf.Workers
	}
	if err := s.Validate(); err != nil {
		zap.L().Error(fmt.Sprintf("invalid setting/reason:%s", err))
		return nil, err
	}
	return s, nil
}

func (s *Setting) ParseFromPath(settingPath string) error {
	tomlString, err := common.ReadSettingsFile(settingPath)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read setting file/reason:%s", err))
		return err
	}
	return s.parseSetting(tomlString)
}

func (s *Setting) parseSetting(tomlString string) error {
	md, err := toml.Decode(tomlString, s)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to parse setting/reason:%s", err))
		return NewConfigurationError("setting", "%s", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		zap.L().Warn(fmt.Sprintf("ignoring unknown setting keys %v", undecoded))
	}
	if err := checkAxisTables(md); err != nil {
		zap.L().Error(fmt.Sprintf("incomplete axis table/reason:%s", err))
		return err
	}
	zap.L().Debug(fmt.Sprintf("Setting is %+v", s.Experiment))
	return nil
}

// checkAxisTables rejects axis tables with missing keys, which would
// otherwise decode as zero.
func checkAxisTables(md toml.MetaData) error {
	var err error
	for _, name := range []string{"noise_axis", "angle_axis"} {
		if !md.IsDefined("experiment", name) {
			continue
		}
		var missing []string
		for _, key := range []string{"start", "stop", "num"} {
			if !md.IsDefined("experiment", name, key) {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			err = multierr.Append(err, NewConfigurationError(name, "missing keys %v", missing))
		}
	}
	return err
}

// Clone returns a deep copy so that experiments may adjust their own axes.
func (s *Setting) Clone() *Setting {
	return deepcopy.Copy(s).(*Setting)
}

// Validate checks the values that make a run impossible to start. Physical
// parameters are checked when the channels are built.
func (s *Setting) Validate() error {
	e := &s.Experiment
	var err error
	if e.FidelityThreshold < 0 || e.FidelityThreshold > 1 || math.IsNaN(e.FidelityThreshold) {
		err = multierr.Append(err, NewConfigurationError("fidelity_threshold", "%g is outside [0, 1]", e.FidelityThreshold))
	}
	if e.Workers < 1 {
		err = multierr.Append(err, NewConfigurationError("workers", "%d must be at least 1", e.Workers))
	}
	if len(e.DiscreteNoiseLevels) == 0 {
		err = multierr.Append(err, NewConfigurationError("discrete_noise_levels", "must not be empty"))
	}
	axes := []struct {
		name string
		a    *AxisSetting
	}{
		{"noise_axis", e.NoiseAxis},
		{"angle_axis", e.AngleAxis},
	}
	for _, ax := range axes {
		name, a := ax.name, ax.a
		if a == nil {
			continue
		}
		if a.Num < 1 {
			err = multierr.Append(err, NewConfigurationError(name, "num %d must be at least 1", a.Num))
		}
		if a.Num > 1 && !(a.Stop > a.Start) {
			err = multierr.Append(err, NewConfigurationError(name, "stop %g must exceed start %g", a.Stop, a.Start))
		}
	}
	return err
}
