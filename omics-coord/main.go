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

// This binary parses genomic intervals and reports how they behave under the
// operations of the coordinate package.
//
//	omics-coord -system zero -clamp seq0:+:1250-1750 -complement seq0:+:1000-2000
package main

import (
	"flag"
	"log"
	"os"

	"github.com/googlegenomics/omics/contig"
	"github.com/googlegenomics/omics/coordinate"
)

var (
	system = flag.String("system", "zero", `coordinate system of the inputs: "zero" (0-based, half-open) or "one" (1-based, fully-closed)`)

	clamp      = flag.String("clamp", "", "if set, clamp each interval to this interval")
	offset     = flag.String("offset", "", "if set, report the offset of this coordinate within each interval")
	at         = flag.Int64("at", -1, "if non-negative, report the coordinate at this offset within each interval")
	forward    = flag.Uint64("forward", 0, "move the start of each interval forward by this many units")
	backward   = flag.Uint64("backward", 0, "move the start of each interval backward by this many units")
	complement = flag.Bool("complement", false, "report the complement of each interval")
	convert    = flag.Bool("convert", false, "report the equivalent interval in the other coordinate system")
)

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("Usage: %s [flags] <contig>:<strand>:<start>-<end>...", os.Args[0])
	}

	opts := options{
		clamp:      *clamp,
		offset:     *offset,
		at:         *at,
		forward:    *forward,
		backward:   *backward,
		complement: *complement,
		convert:    *convert,
	}
	contigs := contig.NewRegistry()

	var err error
	switch *system {
	case "zero":
		err = describeAll(os.Stdout, coordinate.Parser[coordinate.ZeroBased]{Contigs: contigs}, toOneBased, opts, flag.Args())
	case "one":
		err = describeAll(os.Stdout, coordinate.Parser[coordinate.OneBased]{Contigs: contigs}, toZeroBased, opts, flag.Args())
	default:
		log.Fatalf("Unknown coordinate system %q", *system)
	}
	if err != nil {
		log.Fatalf("Failed to describe intervals: %v", err)
	}
	log.Printf("Described %d intervals on %d contigs", flag.NArg(), contigs.Len())
}
