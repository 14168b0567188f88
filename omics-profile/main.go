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

// This binary profiles contig interning and coordinate arithmetic under a
// concurrent synthetic workload.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/googlegenomics/omics/contig"
	"github.com/pkg/profile"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	mode    = flag.String("profile", "cpu", `profile to record: "cpu", "mem" or "none"`)
	dir     = flag.String("dir", "", "directory for profile output (defaults to a temporary directory)")
	records = flag.Int("records", 1000000, "number of intervals to generate")
	workers = flag.Int("workers", runtime.NumCPU(), "number of concurrent workers")
	contigs = flag.Int("contigs", 25, "number of distinct contig names")
)

func main() {
	flag.Parse()

	if *workers < 1 || *contigs < 1 {
		log.Fatalf("You must specify at least one worker and one contig.")
	}

	runID := uuid.New()
	log.Printf("Starting run %v: %s records on %d workers", runID, humanize.Comma(int64(*records)), *workers)

	options := []func(*profile.Profile){profile.NoShutdownHook}
	if *dir != "" {
		options = append(options, profile.ProfilePath(*dir))
	}
	switch *mode {
	case "cpu":
		options = append(options, profile.CPUProfile)
	case "mem":
		options = append(options, profile.MemProfile)
	case "none":
		options = nil
	default:
		log.Fatalf("Unknown profile %q", *mode)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	registry := contig.NewRegistry()
	metrics := prometheus.NewRegistry()
	load := newWorkload(registry, newMetrics(metrics, registry), *contigs)

	if options != nil {
		defer profile.Start(options...).Stop()
	}

	start := time.Now()
	if err := load.run(ctx, *records, *workers); err != nil {
		log.Printf("Workload failed: %v", err)
		return
	}
	elapsed := time.Since(start)

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	log.Printf("Run %v finished in %v: %s allocated in %s objects, %d contigs interned",
		runID, elapsed, humanize.Bytes(stats.TotalAlloc), humanize.Comma(int64(stats.Mallocs)), registry.Len())

	if err := report(metrics); err != nil {
		log.Printf("Failed to gather metrics: %v", err)
	}
}

// report logs every counter in the registry, one line per label set.
func report(registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			var labels []string
			for _, pair := range metric.GetLabel() {
				labels = append(labels, pair.GetName()+"="+pair.GetValue())
			}
			value := metric.GetCounter().GetValue()
			if gauge := metric.GetGauge(); gauge != nil {
				value = gauge.GetValue()
			}
			lines = append(lines, family.GetName()+"{"+strings.Join(labels, ",")+"} "+humanize.Ftoa(value))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		log.Print(line)
	}
	return nil
}
