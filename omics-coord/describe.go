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
	"fmt"
	"io"

	"github.com/googlegenomics/omics/coordinate"
)

type options struct {
	clamp, offset     string
	at                int64
	forward, backward uint64
	complement        bool
	convert           bool
}

// converter renders an interval in the other coordinate system.
type converter[S coordinate.System] func(coordinate.Interval[S]) (string, bool)

func describeAll[S coordinate.System](w io.Writer, parser coordinate.Parser[S], convert converter[S], opts options, inputs []string) error {
	for _, input := range inputs {
		if err := describe(w, parser, convert, opts, input); err != nil {
			return fmt.Errorf("%q: %w", input, err)
		}
	}
	return nil
}

func describe[S coordinate.System](w io.Writer, parser coordinate.Parser[S], convert converter[S], opts options, input string) error {
	interval, err := parser.Interval(input)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "interval:   %s\n", interval.Describe())
	if n, ok := interval.CountEntities(); ok {
		fmt.Fprintf(w, "entities:   %d\n", n)
	} else {
		fmt.Fprintf(w, "entities:   overflow\n")
	}

	if opts.clamp != "" {
		other, err := parser.Interval(opts.clamp)
		if err != nil {
			return fmt.Errorf("parsing clamp interval: %w", err)
		}
		clamped, err := interval.Clamp(other)
		if err != nil {
			fmt.Fprintf(w, "clamped:    %v\n", err)
		} else {
			fmt.Fprintf(w, "clamped:    %v\n", clamped)
		}
	}

	if opts.offset != "" {
		c, err := parser.Coordinate(opts.offset)
		if err != nil {
			return fmt.Errorf("parsing offset coordinate: %w", err)
		}
		n, ok := interval.CoordinateOffset(c)
		fmt.Fprintf(w, "offset:     %s\n", result(n, ok))
	}

	if opts.at >= 0 {
		c, ok := interval.CoordinateAtOffset(coordinate.Number(opts.at))
		fmt.Fprintf(w, "at:         %s\n", result(c, ok))
	}

	if opts.forward > 0 {
		moved, ok, err := interval.Start().MoveForward(opts.forward)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "forward:    %s\n", result(moved, ok))
	}
	if opts.backward > 0 {
		moved, ok, err := interval.Start().MoveBackward(opts.backward)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "backward:   %s\n", result(moved, ok))
	}

	if opts.complement {
		c, ok, err := interval.Complement()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "complement: %s\n", result(c, ok))
	}

	if opts.convert {
		converted, ok := convert(interval)
		fmt.Fprintf(w, "converted:  %s\n", result(converted, ok))
	}
	return nil
}

// result formats the outcome of an operation that may have no answer.
func result[T any](v T, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprint(v)
}

// toOneBased returns the units covered by a 0-based interval.
func toOneBased(interval coordinate.Interval[coordinate.ZeroBased]) (string, bool) {
	start, ok := coordinate.NudgeForward(interval.Start())
	if !ok {
		return "", false
	}
	end, ok := coordinate.NudgeBackward(interval.End())
	if !ok {
		return "", false
	}
	converted, err := coordinate.NewInterval(start, end)
	if err != nil {
		return "", false
	}
	return converted.Describe(), true
}

// toZeroBased returns the 0-based interval surrounding a 1-based interval.
func toZeroBased(interval coordinate.Interval[coordinate.OneBased]) (string, bool) {
	start, ok := coordinate.InterbaseBackward(interval.Start())
	if !ok {
		return "", false
	}
	end, ok := coordinate.InterbaseForward(interval.End())
	if !ok {
		return "", false
	}
	converted, err := coordinate.NewInterval(start, end)
	if err != nil {
		return "", false
	}
	return converted.Describe(), true
}
