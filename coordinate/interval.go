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

// Interval is a range between two coordinates on the same contig and strand.
// On the positive strand the start is never after the end; on the negative
// strand the start is never before the end.  ZeroBased intervals exclude
// their end and may not be empty.
type Interval[S System] struct {
	start, end Coordinate[S]
}

// NewInterval returns the interval from start to end.
func NewInterval[S System](start, end Coordinate[S]) (Interval[S], error) {
	if start.contig != end.contig {
		return Interval[S]{}, &MismatchError{ErrMismatchedContigs, start.contig.String(), end.contig.String()}
	}
	if start.strand != end.strand {
		return Interval[S]{}, &MismatchError{ErrMismatchedStrands, start.strand.String(), end.strand.String()}
	}

	switch n := start.position.Compare(end.position); {
	case n > 0 && start.strand == strand.Positive:
		return Interval[S]{}, fmt.Errorf("%w: start %v is after end %v on the positive strand", ErrNegativelySized, start.position, end.position)
	case n < 0 && start.strand == strand.Negative:
		return Interval[S]{}, fmt.Errorf("%w: end %v is after start %v on the negative strand", ErrNegativelySized, end.position, start.position)
	case n == 0:
		var system S
		if !system.closed() {
			return Interval[S]{}, ErrZeroSized
		}
	}
	return Interval[S]{start, end}, nil
}

// Start returns the start coordinate.
func (i Interval[S]) Start() Coordinate[S] {
	return i.start
}

// End returns the end coordinate.
func (i Interval[S]) End() Coordinate[S] {
	return i.end
}

// Coordinates returns the start and end coordinates.
func (i Interval[S]) Coordinates() (start, end Coordinate[S]) {
	return i.start, i.end
}

// Contig returns the contig shared by both bounds.
func (i Interval[S]) Contig() contig.Contig {
	return i.start.contig
}

// Strand returns the strand shared by both bounds.
func (i Interval[S]) Strand() strand.Strand {
	return i.start.strand
}

// ContainsCoordinate reports whether c lies between the bounds of the
// interval, treating both bounds as inclusive.  The test is the same in both
// coordinate systems.  Use Contains to exclude the end of a ZeroBased interval.
func (i Interval[S]) ContainsCoordinate(c Coordinate[S]) bool {
	if !i.start.sameLocus(c) {
		return false
	}
	return i.between(c.position.value, true, true)
}

// Contains reports whether c is one of the positions the interval covers.
// OneBased intervals include both bounds.  ZeroBased intervals include their
// start and exclude their end: start <= c < end on the positive strand and
// start >= c > end on the negative strand.
func (i Interval[S]) Contains(c Coordinate[S]) bool {
	if !i.start.sameLocus(c) {
		return false
	}
	var system S
	return i.between(c.position.value, true, system.closed())
}

// ContainsEntity reports whether the unit addressed by the 1-based coordinate
// falls inside the interval.  For OneBased intervals this is
// ContainsCoordinate.  A ZeroBased interval contains the unit u when
// start < u <= end on the positive strand and start >= u > end on the
// negative strand.
func (i Interval[S]) ContainsEntity(unit Coordinate[OneBased]) bool {
	if i.start.contig != unit.contig || i.start.strand != unit.strand {
		return false
	}
	var system S
	if system.closed() {
		return i.between(unit.position.value, true, true)
	}
	if i.Strand() == strand.Positive {
		return i.between(unit.position.value, false, true)
	}
	return i.between(unit.position.value, true, false)
}

// between reports whether v lies between the bounds along the strand.  The
// flags select whether each bound is inclusive.
func (i Interval[S]) between(v Value, startInclusive, endInclusive bool) bool {
	lo, hi := i.start.position.value, i.end.position.value
	loInclusive, hiInclusive := startInclusive, endInclusive
	if i.Strand() == strand.Negative {
		lo, hi = hi, lo
		loInclusive, hiInclusive = hiInclusive, loInclusive
	}
	if n := v.Compare(lo); n < 0 || (n == 0 && !loInclusive) {
		return false
	}
	if n := v.Compare(hi); n > 0 || (n == 0 && !hiInclusive) {
		return false
	}
	return true
}

// CountEntities returns the number of units the interval spans: the distance
// between the bounds for ZeroBased intervals and one more than that for
// OneBased intervals.  It returns false if the count does not fit in a Number,
// which only happens for a ZeroBased interval running from MaxNumber down to
// the lower bound.
func (i Interval[S]) CountEntities() (Number, bool) {
	n, ok := i.start.position.DistanceUnchecked(i.end.position)
	if !ok {
		return 0, false
	}
	var system S
	if system.closed() {
		if n == MaxNumber {
			return 0, false
		}
		n++
	}
	return n, true
}

// Clamp narrows the interval so that it does not extend past other.  The two
// intervals must share a contig and strand; otherwise the error wraps
// ErrClampMismatchedContigs or ErrClampMismatchedStrands.  Clamping to an
// interval that does not overlap the receiver fails with the interval
// construction error.
func (i Interval[S]) Clamp(other Interval[S]) (Interval[S], error) {
	if i.start.contig != other.start.contig {
		return Interval[S]{}, &MismatchError{ErrClampMismatchedContigs, i.start.contig.String(), other.start.contig.String()}
	}
	if i.Strand() != other.Strand() {
		return Interval[S]{}, &MismatchError{ErrClampMismatchedStrands, i.Strand().String(), other.Strand().String()}
	}

	var start, end Position[S]
	if i.Strand() == strand.Positive {
		start = maxPosition(i.start.position, other.start.position)
		end = minPosition(i.end.position, other.end.position)
	} else {
		start = minPosition(i.start.position, other.start.position)
		end = maxPosition(i.end.position, other.end.position)
	}

	s, err := NewCoordinate(i.start.contig, i.Strand(), start)
	if err != nil {
		return Interval[S]{}, err
	}
	e, err := NewCoordinate(i.start.contig, i.Strand(), end)
	if err != nil {
		return Interval[S]{}, err
	}
	return NewInterval(s, e)
}

// CoordinateOffset returns how far c lies from the start of the interval,
// measured along the strand.  It returns false if the interval does not
// contain c.
func (i Interval[S]) CoordinateOffset(c Coordinate[S]) (Number, bool) {
	if !i.Contains(c) {
		return 0, false
	}
	return i.start.position.DistanceUnchecked(c.position)
}

// CoordinateAtOffset returns the coordinate offset units forward from the
// start of the interval.  It returns false if that coordinate is not
// contained in the interval.
func (i Interval[S]) CoordinateAtOffset(offset Number) (Coordinate[S], bool) {
	c, ok, err := i.start.MoveForwardWithin(offset, i)
	if err != nil || !ok {
		return Coordinate[S]{}, false
	}
	return c, true
}

// ReverseComplement returns the interval on the opposite strand: the old end
// becomes the new start and the old start the new end.  It fails if either
// bound is the lower bound, which cannot sit on the positive strand.
func (i Interval[S]) ReverseComplement() (Interval[S], error) {
	start, err := i.end.SwapStrand()
	if err != nil {
		return Interval[S]{}, err
	}
	end, err := i.start.SwapStrand()
	if err != nil {
		return Interval[S]{}, err
	}
	return NewInterval(start, end)
}

// Complement returns the interval covering the same units on the opposite
// strand.  OneBased intervals are simply reverse complemented.  The bounds of
// a ZeroBased interval sit between units, so each bound also moves one unit
// forward after swapping strands.  ok is false when that move overflows.
func (i Interval[S]) Complement() (complement Interval[S], ok bool, err error) {
	var system S
	if system.closed() {
		complement, err = i.ReverseComplement()
		if err != nil {
			return Interval[S]{}, false, err
		}
		return complement, true, nil
	}

	var start Coordinate[S]
	if i.end.position.IsLowerBound() {
		// Swapping the lower bound onto the positive strand is not possible,
		// so the result of the swap-and-move is produced directly.
		start = Coordinate[S]{i.end.contig, strand.Positive, Position[S]{Num(0)}}
	} else {
		start, ok, err = i.shift(i.end)
		if err != nil || !ok {
			return Interval[S]{}, false, err
		}
	}

	end, ok, err := i.shift(i.start)
	if err != nil || !ok {
		return Interval[S]{}, false, err
	}

	complement, err = NewInterval(start, end)
	if err != nil {
		return Interval[S]{}, false, err
	}
	return complement, true, nil
}

func (i Interval[S]) shift(c Coordinate[S]) (Coordinate[S], bool, error) {
	swapped, err := c.SwapStrand()
	if err != nil {
		return Coordinate[S]{}, false, err
	}
	return swapped.MoveForward(1)
}

// Compare orders intervals by their start coordinate and then by their end
// coordinate.
func (i Interval[S]) Compare(other Interval[S]) int {
	if n := i.start.Compare(other.start); n != 0 {
		return n
	}
	return i.end.Compare(other.end)
}

// Equal reports whether i and other have the same bounds.
func (i Interval[S]) Equal(other Interval[S]) bool {
	return i.Compare(other) == 0
}

// String returns the interval as "<contig>:<strand>:<start>-<end>".
func (i Interval[S]) String() string {
	return fmt.Sprintf("%v:%v:%v-%v", i.start.contig, i.start.strand, i.start.position, i.end.position)
}

// Describe returns i followed by the name of its coordinate system.
func (i Interval[S]) Describe() string {
	var system S
	return fmt.Sprintf("%v (%v)", i, system)
}
