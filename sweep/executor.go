package sweep

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/oqtopus-team/oqtopus-fidelity/core"
)

const instrumentationName = "github.com/oqtopus-team/oqtopus-fidelity/sweep"

// PointFunc evaluates the metric at axis index i.
type PointFunc func(i int) (float64, error)

// Executor evaluates sweep points on a bounded number of goroutines and
// returns the values in index order.
type Executor struct {
	workers int
	tracer  trace.Tracer
	points  metric.Int64Counter
}

func NewExecutor(workers int) (*Executor, error) {
	if workers < 1 {
		return nil, core.NewConfigurationError("workers", "%d must be at least 1", workers)
	}
	points, err := otel.Meter(instrumentationName).Int64Counter(
		"fidelity.sweep.points",
		metric.WithDescription("number of evaluated sweep points"),
	)
	if err != nil {
		return nil, err
	}
	return &Executor{
		workers: workers,
		tracer:  otel.Tracer(instrumentationName),
		points:  points,
	}, nil
}

func (x *Executor) Workers() int {
	return x.workers
}

// Map evaluates f at 0..n-1. The first error, or ctx being done, aborts the
// run and no values are returned.
func (x *Executor) Map(ctx context.Context, kind string, n int, f PointFunc) ([]float64, error) {
	ctx, span := x.tracer.Start(ctx, "sweep."+kind,
		trace.WithAttributes(
			attribute.Int("sweep.points", n),
			attribute.Int("sweep.workers", x.workers),
		))
	defer span.End()
	zap.L().Debug(fmt.Sprintf("starting %s sweep/points:%d/workers:%d", kind, n, x.workers))

	out := make([]float64, n)
	attrs := metric.WithAttributes(attribute.String("sweep.kind", kind))
	eval := func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := f(i)
		if err != nil {
			return err
		}
		out[i] = v
		x.points.Add(ctx, 1, attrs)
		return nil
	}

	var err error
	if x.workers <= 1 {
		for i := 0; i < n && err == nil; i++ {
			err = eval(ctx, i)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(x.workers)
		for i := 0; i < n; i++ {
			if gctx.Err() != nil {
				break
			}
			i := i
			g.Go(func() error { return eval(gctx, i) })
		}
		err = g.Wait()
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		zap.L().Debug(fmt.Sprintf("%s sweep aborted/reason:%s", kind, err))
		return nil, err
	}
	return out, nil
}
