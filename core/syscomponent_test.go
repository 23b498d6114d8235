//go:build unit
// +build unit

package core_test

import (
	"context"
	"errors"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/dig"

	"github.com/oqtopus-team/oqtopus-fidelity/core"
	"github.com/oqtopus-team/oqtopus-fidelity/core/mock_core"
)

func newComponents(t *testing.T, sc core.Scheduler, exps ...core.Experiment) *core.SystemComponents {
	con := dig.New()
	assert.Nil(t, con.Provide(func() (*core.ExperimentManager, error) {
		return core.NewExperimentManager(exps...)
	}))
	assert.Nil(t, con.Provide(func() core.Scheduler { return sc }))
	return core.NewSystemComponents(con)
}

func TestSystemComponentsRunExperiments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exp := mock_core.NewMockExperiment(ctrl)
	exp.EXPECT().Name().Return("cnot-noise").AnyTimes()
	sc := mock_core.NewMockScheduler(ctrl)

	conf := &core.Conf{}
	ctx := context.Background()
	gomock.InOrder(
		sc.EXPECT().Setup(conf).Return(nil),
		sc.EXPECT().Submit(exp).Return(nil),
		sc.EXPECT().GetCurrentQueueSize().Return(1),
		sc.EXPECT().Start(ctx).Return(nil),
	)

	s := newComponents(t, sc, exp)
	assert.Nil(t, s.Setup(conf))
	assert.Nil(t, s.RunExperiments(ctx, "cnot-noise"))
}

func TestSystemComponentsUnknownExperiment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sc := mock_core.NewMockScheduler(ctrl)
	s := newComponents(t, sc)
	err := s.RunExperiments(context.Background(), "missing")
	assert.True(t, errors.Is(err, core.ErrUnknownExperiment))
}

func TestSystemComponentsStartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exp := mock_core.NewMockExperiment(ctrl)
	exp.EXPECT().Name().Return("tolerance-window").AnyTimes()
	sc := mock_core.NewMockScheduler(ctrl)
	want := errors.New("boom")
	sc.EXPECT().Submit(exp).Return(nil)
	sc.EXPECT().GetCurrentQueueSize().Return(1)
	sc.EXPECT().Start(gomock.Any()).Return(want)

	s := newComponents(t, sc, exp)
	assert.True(t, errors.Is(s.RunExperiments(context.Background(), "tolerance-window"), want))
}
