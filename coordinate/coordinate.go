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
	"fmt"

	"github.com/googlegenomics/omics/contig"
	"github.com/googlegenomics/omics/strand"
)

// Coordinate is a position on one strand of a contig.
type Coordinate[S System] struct {
	contig   contig.Contig
	strand   strand.Strand
	position Position[S]
}

// NewCoordinate returns a Coordinate.  The lower bound only makes sense when
// counting down towards the start of a contig, so it is rejected with
// ErrInvalidCoordinate on any strand but the negative one.
func NewCoordinate[S System](c contig.Contig, s strand.Strand, p Position[S]) (Coordinate[S], error) {
	if c.IsZero() {
		return Coordinate[S]{}, fmt.Errorf("%w: %v", ErrInvalidCoordinate, contig.ErrEmpty)
	}
	if !s.Valid() {
		return Coordinate[S]{}, fmt.Errorf("%w: %v", ErrInvalidCoordinate, s)
	}
	if p.IsLowerBound() && s != strand.Negative {
		return Coordinate[S]{}, fmt.Errorf("%w: lower bound on strand %v", ErrInvalidCoordinate, s)
	}
	return Coordinate[S]{c, s, p}, nil
}

// LowerBoundCoordinate returns the negative-stranded lower bound of c.
func LowerBoundCoordinate(c contig.Contig) Coordinate[ZeroBased] {
	return Coordinate[ZeroBased]{c, strand.Negative, LowerBoundPosition()}
}

// Contig returns the contig of the coordinate.
func (c Coordinate[S]) Contig() contig.Contig {
	return c.contig
}

// Strand returns the strand of the coordinate.
func (c Coordinate[S]) Strand() strand.Strand {
	return c.strand
}

// Position returns the position of the coordinate.
func (c Coordinate[S]) Position() Position[S] {
	return c.position
}

// MoveForward moves the coordinate n units in the direction of its strand:
// towards larger positions on the positive strand and towards smaller ones on
// the negative strand.  ok is false when the move overflows or leaves the
// coordinate system.
func (c Coordinate[S]) MoveForward(n Number) (moved Coordinate[S], ok bool, err error) {
	if n == 0 {
		return c, true, nil
	}
	var p Position[S]
	if c.strand == strand.Positive {
		p, ok = c.position.CheckedAdd(n)
	} else {
		p, ok = c.position.CheckedSub(n)
	}
	if !ok {
		return Coordinate[S]{}, false, nil
	}
	moved, err = NewCoordinate(c.contig, c.strand, p)
	if err != nil {
		return Coordinate[S]{}, false, err
	}
	return moved, true, nil
}

// MoveBackward moves the coordinate n units against the direction of its
// strand.  Walking off the start of the positive strand is reported as
// ok == false, not as an error.
func (c Coordinate[S]) MoveBackward(n Number) (moved Coordinate[S], ok bool, err error) {
	if n == 0 {
		return c, true, nil
	}
	var p Position[S]
	if c.strand == strand.Positive {
		p, ok = c.position.CheckedSub(n)
		if ok && p.IsLowerBound() {
			ok = false
		}
	} else {
		p, ok = c.position.CheckedAdd(n)
	}
	if !ok {
		return Coordinate[S]{}, false, nil
	}
	moved, err = NewCoordinate(c.contig, c.strand, p)
	if err != nil {
		return Coordinate[S]{}, false, err
	}
	return moved, true, nil
}

// MoveForwardWithin moves the coordinate forward like MoveForward and then
// requires the result to be contained in interval (see Interval.Contains).
func (c Coordinate[S]) MoveForwardWithin(n Number, interval Interval[S]) (Coordinate[S], bool, error) {
	moved, ok, err := c.MoveForward(n)
	if err != nil || !ok {
		return Coordinate[S]{}, false, err
	}
	if !interval.Contains(moved) {
		return Coordinate[S]{}, false, nil
	}
	return moved, true, nil
}

// SwapStrand returns the coordinate on the opposite strand at the same
// position.  The lower bound cannot be moved to the positive strand.
func (c Coordinate[S]) SwapStrand() (Coordinate[S], error) {
	return NewCoordinate(c.contig, c.strand.Complement(), c.position)
}

// Compare orders coordinates by contig, then strand, then position.
func (c Coordinate[S]) Compare(other Coordinate[S]) int {
	if n := c.contig.Compare(other.contig); n != 0 {
		return n
	}
	switch {
	case c.strand < other.strand:
		return -1
	case c.strand > other.strand:
		return 1
	}
	return c.position.Compare(other.position)
}

// Equal reports whether c and other are the same coordinate.
func (c Coordinate[S]) Equal(other Coordinate[S]) bool {
	return c.Compare(other) == 0
}

// String returns the coordinate as "<contig>:<strand>:<position>".
func (c Coordinate[S]) String() string {
	return fmt.Sprintf("%v:%v:%v", c.contig, c.strand, c.position)
}

// Describe returns c followed by the name of its coordinate system.
func (c Coordinate[S]) Describe() string {
	var system S
	return fmt.Sprintf("%v (%v)", c, system)
}

func (c Coordinate[S]) sameLocus(other Coordinate[S]) bool {
	return c.contig == other.contig && c.strand == other.strand
}
