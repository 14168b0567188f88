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
	"strconv"
)

// lowerBoundText is the serialized form of the lower bound.
const lowerBoundText = "["

// Value is the content of a position: either the lower bound or a Number.
// The zero value is the Number 0.
//
// Values order as LowerBound < Num(0) < Num(1) < ...
type Value struct {
	number Number
	lower  bool
}

// Num returns a numbered Value.
func Num(n Number) Value {
	return Value{number: n}
}

// LowerBound returns the Value for the virtual slot immediately before the
// first addressable unit of a contig.
func LowerBound() Value {
	return Value{lower: true}
}

// IsLowerBound reports whether v is the lower bound.
func (v Value) IsLowerBound() bool {
	return v.lower
}

// Get returns the number held by v, or false for the lower bound.
func (v Value) Get() (Number, bool) {
	if v.lower {
		return 0, false
	}
	return v.number, true
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to
// or after other.
func (v Value) Compare(other Value) int {
	switch {
	case v.lower && other.lower:
		return 0
	case v.lower:
		return -1
	case other.lower:
		return 1
	case v.number < other.number:
		return -1
	case v.number > other.number:
		return 1
	}
	return 0
}

func (v Value) String() string {
	if v.lower {
		return lowerBoundText
	}
	return strconv.FormatUint(uint64(v.number), 10)
}

// ParseValue parses a decimal Number or the lower bound literal "[".
func ParseValue(s string) (Value, error) {
	if s == lowerBoundText {
		return LowerBound(), nil
	}
	n, err := strconv.ParseUint(s, 10, NumberWidth*8)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	return Num(Number(n)), nil
}
