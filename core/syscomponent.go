package core

import (
	"context"
	"fmt"

	"go.uber.org/dig"
	"go.uber.org/zap"
)

type Scheduler interface {
	Setup(*Conf) error
	Submit(Experiment) error
	// Start runs the queued experiments in submission order until the
	// queue is drained or ctx is done.
	Start(ctx context.Context) error
	GetCurrentQueueSize() int
}

type SystemComponents struct {
	*dig.Container
}

func NewSystemComponents(con *dig.Container) *SystemComponents {
	return &SystemComponents{con}
}

func (s *SystemComponents) Setup(conf *Conf) error {
	zap.L().Debug("Setting up scheduler")
	return s.Invoke(
		func(sc Scheduler) error {
			return sc.Setup(conf)
		})
}

// RunExperiments queues the named experiments and runs them to completion.
func (s *SystemComponents) RunExperiments(ctx context.Context, names ...string) error {
	return s.Invoke(
		func(em *ExperimentManager, sc Scheduler) error {
			for _, name := range names {
				e, err := em.Get(name)
				if err != nil {
					return err
				}
				if err := sc.Submit(e); err != nil {
					return err
				}
				zap.L().Debug(fmt.Sprintf("queued experiment %s/queue size:%d", name, sc.GetCurrentQueueSize()))
			}
			return sc.Start(ctx)
		})
}
