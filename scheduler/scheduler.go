package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/oqtopus-team/oqtopus-fidelity/core"
)

type Status int

const (
	QUEUED Status = iota
	RUNNING
	SUCCEEDED
	FAILED
)

func (s Status) String() string {
	switch s {
	case QUEUED:
		return "queued"
	case RUNNING:
		return "running"
	case SUCCEEDED:
		return "succeeded"
	case FAILED:
		return "failed"
	default:
		return "unknown"
	}
}

// Journal records the outcome of every experiment the scheduler finishes.
type Journal interface {
	Record(experiment string, elapsed time.Duration, err error)
}

type statusHistory map[string][]Status

type experimentInScheduler struct {
	experiment core.Experiment
}

// FIFOScheduler runs experiments one after another in submission order. The
// first failing experiment stops the run.
type FIFOScheduler struct {
	setting *core.Setting
	writer  core.ResultWriter
	journal Journal
	queue   *RunQueue

	mu            sync.RWMutex
	statusHistory statusHistory
}

func NewFIFOScheduler(setting *core.Setting, writer core.ResultWriter, journal Journal) *FIFOScheduler {
	return &FIFOScheduler{
		setting: setting,
		writer:  writer,
		journal: journal,
	}
}

func (f *FIFOScheduler) Setup(conf *core.Conf) error {
	f.queue = &RunQueue{}
	if err := f.queue.Setup(conf); err != nil {
		return err
	}
	f.statusHistory = make(statusHistory)
	return nil
}

func (f *FIFOScheduler) Submit(e core.Experiment) error {
	if err := f.queue.Put(&experimentInScheduler{experiment: e}); err != nil {
		return err
	}
	f.updateStatus(e.Name(), QUEUED)
	return nil
}

func (f *FIFOScheduler) Start(ctx context.Context) error {
	for f.queue.GetCurrentSize() > 0 {
		if err := ctx.Err(); err != nil {
			zap.L().Info(fmt.Sprintf("stopping with experiments left in queue:%v", f.queue.Names()))
			return err
		}
		eis, err := f.queue.Dequeue()
		if err != nil {
			return err
		}
		if err := f.run(ctx, eis.experiment); err != nil {
			return err
		}
	}
	return nil
}

func (f *FIFOScheduler) run(ctx context.Context, e core.Experiment) (err error) {
	name := e.Name()
	f.updateStatus(name, RUNNING)
	zap.L().Info(fmt.Sprintf("running experiment:%s", name))
	started := time.Now()
	defer func() {
		elapsed := time.Since(started)
		if f.journal != nil {
			f.journal.Record(name, elapsed, err)
		}
		if err != nil {
			f.updateStatus(name, FAILED)
			zap.L().Error(fmt.Sprintf("failed to run experiment:%s/reason:%s", name, err))
			return
		}
		f.updateStatus(name, SUCCEEDED)
		zap.L().Info(fmt.Sprintf("finished experiment:%s/elapsed:%s", name, elapsed))
	}()

	// each run gets its own copy of the setting
	s := f.setting.Clone()
	result, err := e.Run(ctx, &s.Experiment)
	if err != nil {
		return errors.Wrapf(err, "experiment %s", name)
	}
	if err := f.writer.Write(name, &s.Experiment, result); err != nil {
		return errors.Wrapf(err, "write report of %s", name)
	}
	return nil
}

func (f *FIFOScheduler) GetCurrentQueueSize() int {
	return f.queue.GetCurrentSize()
}

// StatusHistory returns the statuses an experiment went through, in order.
func (f *FIFOScheduler) StatusHistory(name string) []Status {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]Status(nil), f.statusHistory[name]...)
}

func (f *FIFOScheduler) updateStatus(name string, st Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusHistory[name] = append(f.statusHistory[name], st)
}
