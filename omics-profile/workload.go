// Copyright 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"

	"github.com/googlegenomics/omics/contig"
	"github.com/googlegenomics/omics/coordinate"
	"github.com/googlegenomics/omics/strand"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

const (
	outcomeOK    = "ok"
	outcomeNone  = "none"
	outcomeError = "error"

	// window is the region every generated interval is clamped to.
	window = 500000
)

type metrics struct {
	operations *prometheus.CounterVec
	contigs    prometheus.GaugeFunc
}

func newMetrics(registry prometheus.Registerer, contigs *contig.Registry) *metrics {
	m := &metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "omics",
			Subsystem: "profile",
			Name:      "operations_total",
			Help:      "Coordinate operations performed, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		contigs: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "omics",
			Subsystem: "profile",
			Name:      "contigs",
			Help:      "Distinct contig names interned.",
		}, func() float64 { return float64(contigs.Len()) }),
	}
	registry.MustRegister(m.operations, m.contigs)
	return m
}

func (m *metrics) observe(operation string, ok bool) {
	outcome := outcomeOK
	if !ok {
		outcome = outcomeNone
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// workload generates intervals on a fixed set of contigs and runs them
// through the hot paths of the coordinate package.
type workload struct {
	contigs *contig.Registry
	metrics *metrics
	names   []string
}

func newWorkload(contigs *contig.Registry, m *metrics, n int) *workload {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("chr%d", i+1)
	}
	return &workload{contigs: contigs, metrics: m, names: names}
}

// run processes records on the given number of workers.  It stops at the
// first unexpected error or when ctx is cancelled.
func (w *workload) run(ctx context.Context, records, workers int) error {
	g, ctx := errgroup.WithContext(ctx)
	for worker := 0; worker < workers; worker++ {
		g.Go(func() error {
			for i := worker; i < records; i += workers {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if err := w.record(i); err != nil {
					return fmt.Errorf("record %d: %w", i, err)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func (w *workload) record(i int) error {
	c, err := w.contigs.Contig(w.names[i%len(w.names)])
	if err != nil {
		return err
	}
	w.metrics.observe("intern", true)

	interval, err := w.interval(c, i)
	if err != nil {
		return err
	}

	n, ok := interval.CountEntities()
	w.metrics.observe("count", ok && n > 0)

	_, ok, err = interval.Complement()
	if err != nil {
		return err
	}
	w.metrics.observe("complement", ok)

	limits, err := w.window(c, interval.Strand())
	if err != nil {
		return err
	}
	if _, err := interval.Clamp(limits); err != nil {
		w.metrics.operations.WithLabelValues("clamp", outcomeError).Inc()
	} else {
		w.metrics.observe("clamp", true)
	}

	_, ok = coordinate.NudgeForward(interval.Start())
	w.metrics.observe("nudge", ok)

	_, ok = interval.CoordinateAtOffset(coordinate.Number(i % 16))
	w.metrics.observe("offset", ok)
	return nil
}

// interval returns the i-th generated interval on c.  Odd records are placed
// on the negative strand, where intervals that would run off the contig and
// every 97th interval end at the lower bound.
func (w *workload) interval(c contig.Contig, i int) (coordinate.Interval[coordinate.ZeroBased], error) {
	start := coordinate.Number(i*7919) % (2 * window)
	length := coordinate.Number(1 + i%500)

	s := strand.Positive
	if i%2 == 1 {
		s = strand.Negative
	}

	from, err := coordinate.NewNumber[coordinate.ZeroBased](start)
	if err != nil {
		return coordinate.Interval[coordinate.ZeroBased]{}, err
	}
	a, err := coordinate.NewCoordinate(c, s, from)
	if err != nil {
		return coordinate.Interval[coordinate.ZeroBased]{}, err
	}

	b, ok, err := a.MoveForward(length)
	if err != nil {
		return coordinate.Interval[coordinate.ZeroBased]{}, err
	}
	if !ok || (s == strand.Negative && i%97 == 0) {
		b = coordinate.LowerBoundCoordinate(c)
	}
	return coordinate.NewInterval(a, b)
}

func (w *workload) window(c contig.Contig, s strand.Strand) (coordinate.Interval[coordinate.ZeroBased], error) {
	var bounds string
	if s == strand.Positive {
		bounds = fmt.Sprintf("%v:%v:0-%d", c, s, window)
	} else {
		bounds = fmt.Sprintf("%v:%v:%d-[", c, s, window)
	}
	return coordinate.Parser[coordinate.ZeroBased]{Contigs: w.contigs}.Interval(bounds)
}
