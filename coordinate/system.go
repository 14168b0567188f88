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

// System is the set of coordinate systems.  It is satisfied only by ZeroBased
// and OneBased, so positions from the two systems can never be mixed.
type System interface {
	ZeroBased | OneBased

	// String returns the display name of the system.
	String() string

	validate(Value) error
	add(Value, Number) (Value, bool)
	sub(Value, Number) (Value, bool)
	// closed reports whether both bounds of an interval address a unit.
	closed() bool
}

// ZeroBased is the 0-based, half-open (interbase) coordinate system.
// Positions point to the spaces between units, the first being 0, and the
// end of an interval is excluded.  It is the only system that can express the
// lower bound.
type ZeroBased struct{}

// OneBased is the 1-based, fully-closed (in-base) coordinate system.
// Positions point to the units themselves, the first being 1, and both ends
// of an interval are included.
type OneBased struct{}

func (ZeroBased) String() string { return "0-based, half-open coordinate system" }

func (ZeroBased) validate(Value) error { return nil }

func (ZeroBased) closed() bool { return false }

// The lower bound behaves as the number -1.
func (ZeroBased) add(v Value, n Number) (Value, bool) {
	if v.lower {
		if n == 0 {
			return v, true
		}
		return Num(n - 1), true
	}
	sum := v.number + n
	if sum < v.number {
		return Value{}, false
	}
	return Num(sum), true
}

func (ZeroBased) sub(v Value, n Number) (Value, bool) {
	if v.lower {
		return v, n == 0
	}
	switch {
	case n <= v.number:
		return Num(v.number - n), true
	case n-v.number == 1:
		return LowerBound(), true
	}
	return Value{}, false
}

func (OneBased) String() string { return "1-based, fully-closed coordinate system" }

func (s OneBased) validate(v Value) error {
	if v.lower || v.number == 0 {
		return &ValueError{System: s.String(), Value: v}
	}
	return nil
}

func (OneBased) closed() bool { return true }

func (OneBased) add(v Value, n Number) (Value, bool) {
	if v.lower {
		return Num(n), true
	}
	sum := v.number + n
	if sum < v.number {
		return Value{}, false
	}
	return Num(sum), true
}

func (OneBased) sub(v Value, n Number) (Value, bool) {
	if v.lower || n > v.number {
		return Value{}, false
	}
	return Num(v.number - n), true
}
