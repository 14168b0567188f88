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

// Package contig contains the names of contiguous molecules (chromosomes,
// decoys, viral sequences...) that positions are measured along.
package contig

import (
	"errors"
	"strings"
)

// ErrEmpty is returned when a contig name is empty.
var ErrEmpty = errors.New("empty contig name")

// Contig is a validated, non-empty contig name.  Contigs compare by name.
// The zero value is not a valid contig.
type Contig struct {
	name string
}

// New returns a Contig for name.  There are no restrictions on the name other
// than it being non-empty.
func New(name string) (Contig, error) {
	if name == "" {
		return Contig{}, ErrEmpty
	}
	return Contig{name}, nil
}

// Name returns the contig's name.
func (c Contig) Name() string {
	return c.name
}

// IsZero reports whether c is the zero value.
func (c Contig) IsZero() bool {
	return c.name == ""
}

// Compare returns -1, 0 or +1 depending on whether c sorts before, equal to
// or after other.
func (c Contig) Compare(other Contig) int {
	return strings.Compare(c.name, other.name)
}

func (c Contig) String() string {
	return c.name
}
