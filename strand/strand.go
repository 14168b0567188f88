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

// Package strand defines the orientation of a coordinate on a double-stranded
// molecule.
package strand

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when parsing an empty strand.
	ErrEmpty = errors.New("empty strand")
	// ErrInvalid is returned when parsing anything other than "+" or "-".
	ErrInvalid = errors.New("invalid value for strand")
)

// Strand is either Positive or Negative.  Positive sorts before Negative.
type Strand uint8

const (
	// Positive is the forward strand, encoded as "+".
	Positive Strand = iota
	// Negative is the reverse strand, encoded as "-".  Numbering on the
	// negative strand runs towards the start of the contig.
	Negative
)

// Parse converts "+" or "-" into a Strand.
func Parse(s string) (Strand, error) {
	switch s {
	case "+":
		return Positive, nil
	case "-":
		return Negative, nil
	case "":
		return 0, ErrEmpty
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
}

// Complement returns the opposite strand.
func (s Strand) Complement() Strand {
	if s == Positive {
		return Negative
	}
	return Positive
}

// Valid reports whether s is one of the two defined strands.
func (s Strand) Valid() bool {
	return s == Positive || s == Negative
}

func (s Strand) String() string {
	switch s {
	case Positive:
		return "+"
	case Negative:
		return "-"
	}
	return fmt.Sprintf("Strand(%d)", uint8(s))
}
