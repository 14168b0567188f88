// Copyright 2018 Google Inc.
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

package coordinate

import (
	"errors"
	"fmt"
)

// Errors returned by this package.  Arithmetic that overflows or leaves an
// interval is not an error; those operations report a false ok value instead.
var (
	// ErrInvalidValue is returned when a value is not valid for a system.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidCoordinate is returned when the lower bound is placed on the
	// positive strand.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	ErrMismatchedContigs = errors.New("mismatched contigs")
	ErrMismatchedStrands = errors.New("mismatched strands")

	// ErrClampMismatchedContigs and ErrClampMismatchedStrands are returned
	// when clamping two well-formed intervals that cannot be combined.
	ErrClampMismatchedContigs = errors.New("mismatched contigs while clamping")
	ErrClampMismatchedStrands = errors.New("mismatched strands while clamping")

	// ErrZeroSized is returned for a half-open interval whose start equals
	// its end.
	ErrZeroSized = errors.New("start position equals end position, which is a zero-sized interval")
	// ErrNegativelySized is returned when the bounds run against the strand.
	ErrNegativelySized = errors.New("negatively sized interval")
	// ErrSingularInterval is returned when a single position cannot be
	// expanded into an interval.
	ErrSingularInterval = errors.New("cannot move singular interval position forward one")

	// ErrParse matches every *ParseError.  The stage at which parsing failed
	// is reported by one of the ErrInvalid* values below.
	ErrParse           = errors.New("parse error")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrInvalidContig   = errors.New("invalid contig")
	ErrInvalidStrand   = errors.New("invalid strand")
	ErrInvalidPosition = errors.New("invalid position")

	// ErrWidthMismatch is returned when decoding a position encoded with a
	// different NumberWidth.
	ErrWidthMismatch = errors.New("position width mismatch")
)

// ValueError reports a value that is not valid for a coordinate system.
type ValueError struct {
	System string
	Value  Value
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("incompatible value for %s: %v", e.System, e.Value)
}

func (e *ValueError) Unwrap() error {
	return ErrInvalidValue
}

// MismatchError reports two contigs or strands that were required to match.
// Err is one of the ErrMismatched* or ErrClampMismatched* values.
type MismatchError struct {
	Err  error
	A, B string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: %s, %s", e.Err, e.A, e.B)
}

func (e *MismatchError) Unwrap() error {
	return e.Err
}

// ParseError reports a failure to parse the textual form of a position,
// coordinate or interval.
type ParseError struct {
	Input string
	// Stage is one of ErrInvalidFormat, ErrInvalidContig, ErrInvalidStrand or
	// ErrInvalidPosition.
	Stage error
	// Cause is the underlying error, if any.
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %v: %q: %v", e.Stage, e.Input, e.Cause)
	}
	return fmt.Sprintf("parse error: %v: %q", e.Stage, e.Input)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Stage}
	}
	return []error{e.Stage, e.Cause}
}
