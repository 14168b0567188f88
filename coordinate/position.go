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

import "fmt"

// Position is a single location on a contig expressed in the units of
// system S.  Positions are values; every operation returns a new Position.
//
// The zero value holds the Number 0, which is not a valid OneBased position,
// so construct positions with NewPosition or NewNumber.
type Position[S System] struct {
	value Value
}

// NewPosition returns a Position for v, or an error wrapping ErrInvalidValue
// if v is not valid in system S.
func NewPosition[S System](v Value) (Position[S], error) {
	var system S
	if err := system.validate(v); err != nil {
		return Position[S]{}, err
	}
	return Position[S]{v}, nil
}

// NewNumber is shorthand for NewPosition[S](Num(n)).
func NewNumber[S System](n Number) (Position[S], error) {
	return NewPosition[S](Num(n))
}

// LowerBoundPosition returns the 0-based lower bound position.
func LowerBoundPosition() Position[ZeroBased] {
	return Position[ZeroBased]{LowerBound()}
}

// MaxPosition returns the largest position representable in either system.
func MaxPosition[S System]() Position[S] {
	return Position[S]{Num(MaxNumber)}
}

// Value returns the underlying value.
func (p Position[S]) Value() Value {
	return p.value
}

// Get returns the number held by p, or false for the lower bound.
func (p Position[S]) Get() (Number, bool) {
	return p.value.Get()
}

// IsLowerBound reports whether p is the lower bound.
func (p Position[S]) IsLowerBound() bool {
	return p.value.lower
}

// CheckedAdd returns p+n.  It returns false if the addition overflows or if
// the result is not a valid position in S.  Under ZeroBased the lower bound
// counts as -1, so LowerBound+1 is 0.
func (p Position[S]) CheckedAdd(n Number) (Position[S], bool) {
	var system S
	v, ok := system.add(p.value, n)
	return checked[S](v, ok)
}

// CheckedSub returns p-n.  It returns false if the subtraction underflows or
// if the result is not a valid position in S.  Under ZeroBased, subtracting
// one more than p lands on the lower bound.
func (p Position[S]) CheckedSub(n Number) (Position[S], bool) {
	var system S
	v, ok := system.sub(p.value, n)
	return checked[S](v, ok)
}

func checked[S System](v Value, ok bool) (Position[S], bool) {
	if !ok {
		return Position[S]{}, false
	}
	p, err := NewPosition[S](v)
	if err != nil {
		return Position[S]{}, false
	}
	return p, true
}

// DistanceUnchecked returns the magnitude between p and other.  Callers are
// responsible for making sure both positions are on the same contig and
// strand.  The distance from the lower bound to n is n+1, which returns false
// when n is MaxNumber.
func (p Position[S]) DistanceUnchecked(other Position[S]) (Number, bool) {
	a, b := p.value, other.value
	switch {
	case a.lower && b.lower:
		return 0, true
	case a.lower:
		return b.number + 1, b.number != MaxNumber
	case b.lower:
		return a.number + 1, a.number != MaxNumber
	case a.number > b.number:
		return a.number - b.number, true
	}
	return b.number - a.number, true
}

// Compare returns -1, 0 or +1 depending on whether p sorts before, equal to
// or after other.
func (p Position[S]) Compare(other Position[S]) int {
	return p.value.Compare(other.value)
}

// Equal reports whether p and other hold the same value.
func (p Position[S]) Equal(other Position[S]) bool {
	return p.value == other.value
}

// Less reports whether p sorts before other.
func (p Position[S]) Less(other Position[S]) bool {
	return p.Compare(other) < 0
}

func (p Position[S]) String() string {
	return p.value.String()
}

// Describe returns p followed by the name of its coordinate system.
func (p Position[S]) Describe() string {
	var system S
	return fmt.Sprintf("%v (%v)", p.value, system)
}

func minPosition[S System](a, b Position[S]) Position[S] {
	if b.Less(a) {
		return b
	}
	return a
}

func maxPosition[S System](a, b Position[S]) Position[S] {
	if a.Less(b) {
		return b
	}
	return a
}
