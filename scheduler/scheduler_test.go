//go:build unit
// +build unit

package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/jx"
	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/oqtopus-team/oqtopus-fidelity/core"
	"github.com/oqtopus-team/oqtopus-fidelity/core/mock_core"
)

type emptyResult struct{}

func (emptyResult) EncodeFields(*jx.Encoder) {}

type journalEntry struct {
	name string
	err  error
}

type testJournal struct {
	mu      sync.Mutex
	entries []journalEntry
}

func (j *testJournal) Record(name string, _ time.Duration, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, journalEntry{name: name, err: err})
}

func setUpScheduler(t *testing.T, w core.ResultWriter, j Journal) *FIFOScheduler {
	s := NewFIFOScheduler(core.DefaultSetting(), w, j)
	assert.Nil(t, s.Setup(&core.Conf{QueueMaxSize: 8}))
	return s
}

func TestFIFOSchedulerRunsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := mock_core.NewMockResultWriter(ctrl)
	journal := &testJournal{}
	s := setUpScheduler(t, w, journal)

	first := newNamedExperiment(ctrl, "first")
	second := newNamedExperiment(ctrl, "second")
	gomock.InOrder(
		first.EXPECT().Run(gomock.Any(), gomock.Any()).Return(emptyResult{}, nil),
		w.EXPECT().Write("first", gomock.Any(), emptyResult{}).Return(nil),
		second.EXPECT().Run(gomock.Any(), gomock.Any()).Return(emptyResult{}, nil),
		w.EXPECT().Write("second", gomock.Any(), emptyResult{}).Return(nil),
	)

	assert.Nil(t, s.Submit(first))
	assert.Nil(t, s.Submit(second))
	assert.Equal(t, 2, s.GetCurrentQueueSize())
	assert.Nil(t, s.Start(context.Background()))
	assert.Equal(t, 0, s.GetCurrentQueueSize())
	assert.Equal(t, []Status{QUEUED, RUNNING, SUCCEEDED}, s.StatusHistory("first"))
	assert.Equal(t, []journalEntry{{name: "first"}, {name: "second"}}, journal.entries)
}

func TestFIFOSchedulerStopsOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := mock_core.NewMockResultWriter(ctrl)
	journal := &testJournal{}
	s := setUpScheduler(t, w, journal)

	want := core.NewModelError("thermal relaxation", errors.New("T2 exceeds 2*T1"))
	failing := newNamedExperiment(ctrl, "failing")
	failing.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, want)
	untouched := newNamedExperiment(ctrl, "untouched")

	assert.Nil(t, s.Submit(failing))
	assert.Nil(t, s.Submit(untouched))
	err := s.Start(context.Background())
	assert.True(t, core.IsModelError(err))
	assert.Equal(t, []Status{QUEUED, RUNNING, FAILED}, s.StatusHistory("failing"))
	assert.Equal(t, []Status{QUEUED}, s.StatusHistory("untouched"))
	assert.Equal(t, 1, s.GetCurrentQueueSize())
	assert.Len(t, journal.entries, 1)
	assert.True(t, errors.Is(journal.entries[0].err, want))
}

func TestFIFOSchedulerWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := mock_core.NewMockResultWriter(ctrl)
	s := setUpScheduler(t, w, nil)
	want := errors.New("disk full")
	e := newNamedExperiment(ctrl, "cnot-noise")
	e.EXPECT().Run(gomock.Any(), gomock.Any()).Return(emptyResult{}, nil)
	w.EXPECT().Write("cnot-noise", gomock.Any(), gomock.Any()).Return(want)

	assert.Nil(t, s.Submit(e))
	assert.True(t, errors.Is(s.Start(context.Background()), want))
	assert.Equal(t, []Status{QUEUED, RUNNING, FAILED}, s.StatusHistory("cnot-noise"))
}

func TestFIFOSchedulerCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := setUpScheduler(t, mock_core.NewMockResultWriter(ctrl), nil)
	assert.Nil(t, s.Submit(newNamedExperiment(ctrl, "never")))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.True(t, errors.Is(s.Start(ctx), context.Canceled))
	assert.Equal(t, 1, s.GetCurrentQueueSize())
}

func TestFIFOSchedulerIsolatesSetting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := mock_core.NewMockResultWriter(ctrl)
	s := setUpScheduler(t, w, nil)
	e := newNamedExperiment(ctrl, "mutating")
	e.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, es *core.ExperimentSetting) (core.Result, error) {
			es.DiscreteNoiseLevels[0] = 0.5
			return emptyResult{}, nil
		})
	w.EXPECT().Write("mutating", gomock.Any(), gomock.Any()).Return(nil)

	assert.Nil(t, s.Submit(e))
	assert.Nil(t, s.Start(context.Background()))
	assert.Equal(t, 0.0, s.setting.Experiment.DiscreteNoiseLevels[0])
}
