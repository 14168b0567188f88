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
	"strings"

	"github.com/googlegenomics/omics/contig"
	"github.com/googlegenomics/omics/strand"
)

const (
	fieldSeparator = ":"
	rangeSeparator = "-"
)

// Parser parses the textual form of coordinates and intervals in system S.
// The zero Parser is ready to use; set Contigs to share contig names through
// a registry when parsing many records.
type Parser[S System] struct {
	Contigs *contig.Registry
}

// ParsePosition parses a decimal position or the lower bound literal "[".
func ParsePosition[S System](s string) (Position[S], error) {
	v, err := ParseValue(s)
	if err != nil {
		return Position[S]{}, &ParseError{s, ErrInvalidPosition, err}
	}
	p, err := NewPosition[S](v)
	if err != nil {
		return Position[S]{}, &ParseError{s, ErrInvalidPosition, err}
	}
	return p, nil
}

// ParseCoordinate parses "<contig>:<strand>:<position>" using a zero Parser.
func ParseCoordinate[S System](s string) (Coordinate[S], error) {
	return Parser[S]{}.Coordinate(s)
}

// ParseInterval parses "<contig>:<strand>:<start>-<end>" using a zero Parser.
func ParseInterval[S System](s string) (Interval[S], error) {
	return Parser[S]{}.Interval(s)
}

// Coordinate parses "<contig>:<strand>:<position>", for example "seq0:+:10"
// or "seq0:-:[".
func (p Parser[S]) Coordinate(s string) (Coordinate[S], error) {
	c, st, rest, err := p.locus(s)
	if err != nil {
		return Coordinate[S]{}, err
	}
	position, err := ParsePosition[S](rest)
	if err != nil {
		return Coordinate[S]{}, err
	}
	coordinate, err := NewCoordinate(c, st, position)
	if err != nil {
		return Coordinate[S]{}, &ParseError{s, ErrInvalidPosition, err}
	}
	return coordinate, nil
}

// Interval parses "<contig>:<strand>:<start>-<end>", for example
// "seq0:+:10-20".  A single position "<contig>:<strand>:<n>" denotes the one
// unit starting at n: [n, n+1) for ZeroBased and [n, n] for OneBased.
func (p Parser[S]) Interval(s string) (Interval[S], error) {
	c, st, rest, err := p.locus(s)
	if err != nil {
		return Interval[S]{}, err
	}
	interval, err := p.bounds(c, st, rest)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			return Interval[S]{}, err
		}
		return Interval[S]{}, &ParseError{s, ErrInvalidPosition, err}
	}
	return interval, nil
}

// bounds parses the "<start>-<end>" or "<n>" field of an interval.
func (p Parser[S]) bounds(c contig.Contig, st strand.Strand, rest string) (Interval[S], error) {
	bounds := strings.Split(rest, rangeSeparator)
	switch len(bounds) {
	case 1:
		position, err := ParsePosition[S](bounds[0])
		if err != nil {
			return Interval[S]{}, err
		}
		start, err := NewCoordinate(c, st, position)
		if err != nil {
			return Interval[S]{}, err
		}
		var system S
		if system.closed() {
			return NewInterval(start, start)
		}
		end, ok, err := start.MoveForward(1)
		if err != nil {
			return Interval[S]{}, err
		}
		if !ok {
			return Interval[S]{}, ErrSingularInterval
		}
		return NewInterval(start, end)
	case 2:
		startPosition, err := ParsePosition[S](bounds[0])
		if err != nil {
			return Interval[S]{}, err
		}
		endPosition, err := ParsePosition[S](bounds[1])
		if err != nil {
			return Interval[S]{}, err
		}
		start, err := NewCoordinate(c, st, startPosition)
		if err != nil {
			return Interval[S]{}, err
		}
		end, err := NewCoordinate(c, st, endPosition)
		if err != nil {
			return Interval[S]{}, err
		}
		return NewInterval(start, end)
	}
	return Interval[S]{}, &ParseError{Input: rest, Stage: ErrInvalidFormat}
}

// locus splits s into its contig, strand and remaining position field.  The
// strand and position are taken from the right so that contig names may
// contain the separator, as in "HLA-A*01:01:+:5".
func (p Parser[S]) locus(s string) (contig.Contig, strand.Strand, string, error) {
	i := strings.LastIndex(s, fieldSeparator)
	if i < 0 {
		return contig.Contig{}, 0, "", &ParseError{Input: s, Stage: ErrInvalidFormat}
	}
	j := strings.LastIndex(s[:i], fieldSeparator)
	if j < 0 {
		return contig.Contig{}, 0, "", &ParseError{Input: s, Stage: ErrInvalidFormat}
	}
	name, strandText, rest := s[:j], s[j+1:i], s[i+1:]

	c, err := p.contig(name)
	if err != nil {
		return contig.Contig{}, 0, "", &ParseError{name, ErrInvalidContig, err}
	}
	st, err := strand.Parse(strandText)
	if err != nil {
		return contig.Contig{}, 0, "", &ParseError{strandText, ErrInvalidStrand, err}
	}
	return c, st, rest, nil
}

func (p Parser[S]) contig(name string) (contig.Contig, error) {
	if p.Contigs != nil {
		return p.Contigs.Contig(name)
	}
	return contig.New(name)
}
