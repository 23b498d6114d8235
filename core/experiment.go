package core

//go:generate mockgen -destination=mock_core/mock_core.go -package=mock_core . Experiment,Scheduler,ResultWriter

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

var ErrUnknownExperiment = errors.New("experiment is not registered")

// Result is the outcome of one experiment. EncodeFields writes its series
// as fields of an already opened JSON object.
type Result interface {
	EncodeFields(e *jx.Encoder)
}

type Experiment interface {
	Name() string
	Description() string
	Run(ctx context.Context, s *ExperimentSetting) (Result, error)
}

// ResultWriter hands finished results to whatever renders or stores them.
type ResultWriter interface {
	Write(name string, s *ExperimentSetting, r Result) error
}

type ExperimentManager struct {
	experiments []Experiment
}

func NewExperimentManager(exps ...Experiment) (*ExperimentManager, error) {
	em := &ExperimentManager{}
	if err := em.RegisterExperiment(exps...); err != nil {
		return nil, err
	}
	return em, nil
}

func (m *ExperimentManager) RegisterExperiment(exps ...Experiment) error {
	for _, exp := range exps {
		for _, e := range m.experiments {
			if reflect.TypeOf(e) == reflect.TypeOf(exp) || e.Name() == exp.Name() {
				return fmt.Errorf("experiment:%s is already registered", exp.Name())
			}
		}
		zap.L().Debug(fmt.Sprintf("registering experiment %s", exp.Name()))
		m.experiments = append(m.experiments, exp)
	}
	return nil
}

// Names returns the registered experiment names in registration order.
func (m *ExperimentManager) Names() []string {
	names := make([]string, 0, len(m.experiments))
	for _, e := range m.experiments {
		names = append(names, e.Name())
	}
	return names
}

func (m *ExperimentManager) Get(name string) (Experiment, error) {
	for _, e := range m.experiments {
		if e.Name() == name {
			return e, nil
		}
	}
	known := m.Names()
	sort.Strings(known)
	return nil, errors.Wrapf(ErrUnknownExperiment, "%q (known: %v)", name, known)
}

func (m *ExperimentManager) All() []Experiment {
	out := make([]Experiment, len(m.experiments))
	copy(out, m.experiments)
	return out
}
