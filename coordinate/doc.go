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

// Package coordinate implements positions, coordinates and intervals on
// genomic contigs in the two common coordinate systems.
//
// ZeroBased positions address the boundaries between units (nucleotides,
// amino acids) and its intervals are half-open.  OneBased positions address
// the units themselves and its intervals include both ends.  The system is a
// type parameter, so values from different systems cannot be mixed and the
// only way between them is through the explicit conversions NudgeForward,
// NudgeBackward, InterbaseForward and InterbaseBackward.
//
// The ZeroBased system has one position before 0, the lower bound, written
// "[".  It only appears on the negative strand, where a half-open interval
// covering the first unit of a contig has to end somewhere:
//
//	seq0:-:0-[
//
// All arithmetic is checked.  An operation that would overflow Number or
// leave the coordinate system reports ok == false instead of wrapping.
package coordinate
