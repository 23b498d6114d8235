//go:build unit
// +build unit

package core

import (
	"context"
	"errors"
	"testing"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/assert"
)

type fakeResult struct{}

func (fakeResult) EncodeFields(e *jx.Encoder) {
	e.FieldStart("fake")
	e.Bool(true)
}

type alphaExperiment struct{}

func (alphaExperiment) Name() string        { return "alpha" }
func (alphaExperiment) Description() string { return "first" }
func (alphaExperiment) Run(context.Context, *ExperimentSetting) (Result, error) {
	return fakeResult{}, nil
}

type betaExperiment struct{ name string }

func (b betaExperiment) Name() string      { return b.name }
func (betaExperiment) Description() string { return "second" }
func (betaExperiment) Run(context.Context, *ExperimentSetting) (Result, error) {
	return fakeResult{}, nil
}

func TestExperimentManager(t *testing.T) {
	em, err := NewExperimentManager(betaExperiment{name: "beta"}, alphaExperiment{})
	assert.Nil(t, err)
	assert.Equal(t, []string{"beta", "alpha"}, em.Names())

	e, err := em.Get("alpha")
	assert.Nil(t, err)
	assert.Equal(t, "first", e.Description())

	_, err = em.Get("gamma")
	assert.True(t, errors.Is(err, ErrUnknownExperiment))

	assert.Len(t, em.All(), 2)
}

func TestRegisterExperimentConflict(t *testing.T) {
	tests := []struct {
		name string
		exps []Experiment
	}{
		{name: "same type", exps: []Experiment{betaExperiment{name: "b1"}, betaExperiment{name: "b2"}}},
		{name: "same instance", exps: []Experiment{alphaExperiment{}, alphaExperiment{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExperimentManager(tt.exps...)
			assert.NotNil(t, err)
		})
	}
}

func TestErrorTaxonomy(t *testing.T) {
	cause := errors.New("T2 exceeds 2*T1")
	me := NewModelError("thermal relaxation", cause)
	assert.True(t, IsModelError(me))
	assert.False(t, IsConfigurationError(me))
	assert.True(t, errors.Is(me, cause))
	assert.Equal(t, "model error in thermal relaxation: T2 exceeds 2*T1", me.Error())

	ce := NewConfigurationError("noise_axis", "axis is empty")
	assert.True(t, IsConfigurationError(ce))
	assert.False(t, IsModelError(ce))
	assert.Equal(t, "invalid configuration noise_axis: axis is empty", ce.Error())
}
