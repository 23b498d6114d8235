package scheduler

import (
	"fmt"

	conq "github.com/enriquebris/goconcurrentqueue"
	"go.uber.org/zap"

	"github.com/oqtopus-team/oqtopus-fidelity/core"
)

type fifo interface {
	Enqueue(*experimentInScheduler) error
	Dequeue() (*experimentInScheduler, error)
	Get(index int) (*experimentInScheduler, error)
	GetLen() int
}

type conqFIFO struct {
	*conq.FIFO
}

func newConqFIFO() *conqFIFO {
	return &conqFIFO{
		FIFO: conq.NewFIFO(),
	}
}

func (c *conqFIFO) Enqueue(eis *experimentInScheduler) error {
	return c.FIFO.Enqueue(eis)
}

func (c *conqFIFO) Dequeue() (*experimentInScheduler, error) {
	tmp, err := c.FIFO.Dequeue()
	if err != nil {
		return nil, err
	}
	return tmp.(*experimentInScheduler), nil
}

func (c *conqFIFO) Get(index int) (*experimentInScheduler, error) {
	tmp, err := c.FIFO.Get(index)
	if err != nil {
		return nil, err
	}
	return tmp.(*experimentInScheduler), nil
}

func (c *conqFIFO) GetLen() int {
	return c.FIFO.GetLen()
}

// RunQueue is a bounded FIFO of experiments waiting to run.
type RunQueue struct {
	fifo    fifo
	maxSize int
}

func (q *RunQueue) Setup(conf *core.Conf) error {
	if conf.QueueMaxSize < 1 {
		return core.NewConfigurationError("queue-max-size", "%d must be at least 1", conf.QueueMaxSize)
	}
	q.maxSize = conf.QueueMaxSize
	q.fifo = newConqFIFO()
	return nil
}

func (q *RunQueue) Put(eis *experimentInScheduler) error {
	name := eis.experiment.Name()
	if q.maxSize <= q.fifo.GetLen() {
		zap.L().Info(fmt.Sprintf("Failed to put %s. Run queue is full.", name))
		return fmt.Errorf("run queue is full (%d), cannot queue %s", q.maxSize, name)
	}
	zap.L().Debug(fmt.Sprintf("Putting %s to run queue", name))
	if err := q.fifo.Enqueue(eis); err != nil {
		zap.L().Error(fmt.Sprintf("Failed to put %s to run queue. Reason:%s", name, err))
		return err
	}
	return nil
}

// Dequeue returns the oldest queued experiment, or an error when empty.
func (q *RunQueue) Dequeue() (*experimentInScheduler, error) {
	eis, err := q.fifo.Dequeue()
	if err != nil {
		zap.L().Debug("no experiment in run queue.", zap.Error(err))
		return nil, err
	}
	zap.L().Debug(fmt.Sprintf("Dequeued experiment:%s", eis.experiment.Name()))
	return eis, nil
}

// Names lists the queued experiments, oldest first.
func (q *RunQueue) Names() []string {
	names := []string{}
	for i := 0; i < q.fifo.GetLen(); i++ {
		eis, err := q.fifo.Get(i)
		if err == nil {
			names = append(names, eis.experiment.Name())
		}
	}
	return names
}

func (q *RunQueue) GetCurrentSize() int {
	return q.fifo.GetLen()
}
