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

import "github.com/googlegenomics/omics/strand"

// The conversions below are the only places where the two systems meet.  A
// 0-based position sits between two units; nudging it selects the 1-based unit
// on one side of it.
//
//	========================== seq0 =========================
//	•   G   •   A   •   T   •   A   •   T   •   G   •   A   •
//	║[--1--]║[--2--]║[--3--]║[--4--]║[--5--]║[--6--]║[--7--]║ 1-based
//	0       1       2       3       4       5       6       7 0-based

// NudgeForward returns the 1-based unit immediately after c in the direction
// of its strand: n+1 on the positive strand and n on the negative strand.  It
// returns false when no such unit exists.
func NudgeForward(c Coordinate[ZeroBased]) (Coordinate[OneBased], bool) {
	if c.strand == strand.Positive {
		return nudge(c, 1)
	}
	return nudge(c, 0)
}

// NudgeBackward returns the 1-based unit immediately before c in the
// direction of its strand: n on the positive strand and n+1 on the negative
// strand.  It returns false when no such unit exists.
func NudgeBackward(c Coordinate[ZeroBased]) (Coordinate[OneBased], bool) {
	if c.strand == strand.Positive {
		return nudge(c, 0)
	}
	return nudge(c, 1)
}

func nudge(c Coordinate[ZeroBased], n Number) (Coordinate[OneBased], bool) {
	p, ok := c.position.CheckedAdd(n)
	if !ok {
		return Coordinate[OneBased]{}, false
	}
	position, err := NewPosition[OneBased](p.value)
	if err != nil {
		return Coordinate[OneBased]{}, false
	}
	return Coordinate[OneBased]{c.contig, c.strand, position}, true
}

// InterbaseForward returns the 0-based position immediately after the unit c
// in the direction of its strand: n on the positive strand and n-1 on the
// negative strand.
func InterbaseForward(c Coordinate[OneBased]) (Coordinate[ZeroBased], bool) {
	if c.strand == strand.Positive {
		return interbase(c, 0)
	}
	return interbase(c, 1)
}

// InterbaseBackward returns the 0-based position immediately before the unit
// c in the direction of its strand: n-1 on the positive strand and n on the
// negative strand.
func InterbaseBackward(c Coordinate[OneBased]) (Coordinate[ZeroBased], bool) {
	if c.strand == strand.Positive {
		return interbase(c, 1)
	}
	return interbase(c, 0)
}

func interbase(c Coordinate[OneBased], n Number) (Coordinate[ZeroBased], bool) {
	v, ok := c.position.Get()
	if !ok || v < n {
		return Coordinate[ZeroBased]{}, false
	}
	return Coordinate[ZeroBased]{c.contig, c.strand, Position[ZeroBased]{Num(v - n)}}, true
}

// ContainsNextEntity reports whether interval contains the unit that follows
// c (see NudgeForward).  ok is false if there is no such unit.
func ContainsNextEntity(interval Interval[ZeroBased], c Coordinate[ZeroBased]) (contains, ok bool) {
	unit, ok := NudgeForward(c)
	if !ok {
		return false, false
	}
	return interval.ContainsEntity(unit), true
}

// ContainsPrevEntity reports whether interval contains the unit that precedes
// c (see NudgeBackward).  ok is false if there is no such unit.
func ContainsPrevEntity(interval Interval[ZeroBased], c Coordinate[ZeroBased]) (contains, ok bool) {
	unit, ok := NudgeBackward(c)
	if !ok {
		return false, false
	}
	return interval.ContainsEntity(unit), true
}
