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
	"fmt"
	"testing"

	"github.com/googlegenomics/omics/contig"
	"github.com/googlegenomics/omics/strand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinateErrors(t *testing.T) {
	testCases := []struct {
		input string
		errs  []error
	}{
		{"seq0:+", []error{ErrParse, ErrInvalidFormat}},
		{"seq0:+:10:5", []error{ErrParse, ErrInvalidStrand, strand.ErrInvalid}},
		{"", []error{ErrParse, ErrInvalidFormat}},
		{":+:10", []error{ErrParse, ErrInvalidContig, contig.ErrEmpty}},
		{"seq0::10", []error{ErrParse, ErrInvalidStrand, strand.ErrEmpty}},
		{"seq0:*:10", []error{ErrParse, ErrInvalidStrand, strand.ErrInvalid}},
		{"seq0:+:ten", []error{ErrParse, ErrInvalidPosition, ErrInvalidValue}},
		{"seq0:+:-1", []error{ErrParse, ErrInvalidPosition, ErrInvalidValue}},
		{"seq0:+:[", []error{ErrParse, ErrInvalidPosition, ErrInvalidCoordinate}},
		{"seq0", []error{ErrParse, ErrInvalidFormat}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseCoordinate[ZeroBased](tc.input)
			if err == nil {
				t.Fatalf("ParseCoordinate(%q) returned no error", tc.input)
			}
			for _, want := range tc.errs {
				if !errors.Is(err, want) {
					t.Errorf("ParseCoordinate(%q) returned %v, want %v", tc.input, err, want)
				}
			}
		})
	}
}

func TestParseOneBasedZero(t *testing.T) {
	_, err := ParseCoordinate[OneBased]("seq0:+:0")
	assert.ErrorIs(t, err, ErrInvalidPosition)
	assert.ErrorIs(t, err, ErrInvalidValue)

	var valueErr *ValueError
	require.ErrorAs(t, err, &valueErr)
	assert.Equal(t, Num(0), valueErr.Value)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "0", parseErr.Input)
}

func TestParseInterval(t *testing.T) {
	testCases := []struct {
		input string
		want  string
		err   error
	}{
		{"seq0:+:10-20", "seq0:+:10-20", nil},
		{"seq0:-:20-10", "seq0:-:20-10", nil},
		{"seq0:-:5-[", "seq0:-:5-[", nil},
		{"seq0:+:10", "seq0:+:10-11", nil},
		{"seq0:-:10", "seq0:-:10-9", nil},
		{"seq0:-:0", "seq0:-:0-[", nil},
		{"seq0:-:[", "", ErrSingularInterval},
		{fmt.Sprintf("seq0:+:%d", MaxNumber), "", ErrSingularInterval},
		{"seq0:+:1-2-3", "", ErrInvalidFormat},
		{"seq0:+:10-", "", ErrInvalidPosition},
		{"seq0:+:20-10", "", ErrNegativelySized},
		{"seq0:+:10-10", "", ErrZeroSized},
		{"seq0:+:[-10", "", ErrInvalidCoordinate},
		{"seq0:+:10-20:30", "", ErrInvalidStrand},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseInterval[ZeroBased](tc.input)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("ParseInterval(%q) returned %v, want %v", tc.input, err, tc.err)
				}
				if !errors.Is(err, ErrParse) {
					t.Fatalf("ParseInterval(%q) returned %v, want a parse error", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInterval(%q) returned unexpected error: %v", tc.input, err)
			}
			if got.String() != tc.want {
				t.Fatalf("Wrong interval: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseIntervalOneBased(t *testing.T) {
	testCases := []struct {
		input string
		want  string
		err   error
	}{
		{"seq0:+:1-1000", "seq0:+:1-1000", nil},
		{"seq0:+:10", "seq0:+:10-10", nil},
		{"seq0:+:10-10", "seq0:+:10-10", nil},
		{"seq0:-:10-1", "seq0:-:10-1", nil},
		{"seq0:+:0-10", "", ErrInvalidValue},
		{"seq0:-:10-[", "", ErrInvalidValue},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseInterval[OneBased](tc.input)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("ParseInterval(%q) returned %v, want %v", tc.input, err, tc.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInterval(%q) returned unexpected error: %v", tc.input, err)
			}
			if got.String() != tc.want {
				t.Fatalf("Wrong interval: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{"seq0:+:0", "seq0:-:[", "chr1:-:12345", fmt.Sprintf("chrX:+:%d", MaxNumber), "chr1:alt:+:5", "HLA-A*01:01:-:[", "::+:1"} {
		c := mustCoordinate[ZeroBased](t, s)
		again := mustCoordinate[ZeroBased](t, c.String())
		assert.True(t, again.Equal(c), "round trip of %s gave %v", s, again)
	}
	for _, s := range []string{"seq0:+:0-10", "seq0:-:5-[", "chr1:-:2000-1000", "HLA-A*01:01:+:5-10", "chr1:alt:-:7"} {
		i := mustInterval[ZeroBased](t, s)
		again := mustInterval[ZeroBased](t, i.String())
		assert.True(t, again.Equal(i), "round trip of %s gave %v", s, again)
	}
	for _, s := range []string{"seq0:+:1-1", "chr2:-:100-1", "chrM:+:7"} {
		i := mustInterval[OneBased](t, s)
		again := mustInterval[OneBased](t, i.String())
		assert.True(t, again.Equal(i), "round trip of %s gave %v", s, again)
	}
}

func TestParseContigWithSeparator(t *testing.T) {
	name, err := contig.New("HLA-A*01:01")
	require.NoError(t, err)
	five, err := NewNumber[ZeroBased](5)
	require.NoError(t, err)
	c, err := NewCoordinate(name, strand.Positive, five)
	require.NoError(t, err)

	got, err := ParseCoordinate[ZeroBased](c.String())
	require.NoError(t, err)
	assert.Equal(t, "HLA-A*01:01", got.Contig().Name())
	assert.True(t, got.Equal(c))
}

func TestParserWithRegistry(t *testing.T) {
	registry := contig.NewRegistry()
	parser := Parser[OneBased]{Contigs: registry}

	a, err := parser.Interval("chr1:+:1-100")
	require.NoError(t, err)
	b, err := parser.Coordinate("chr1:-:50")
	require.NoError(t, err)
	_, err = parser.Coordinate("chr2:+:1")
	require.NoError(t, err)

	assert.Equal(t, a.Contig(), b.Contig())
	assert.Equal(t, 2, registry.Len())

	_, err = parser.Coordinate(":+:1")
	assert.ErrorIs(t, err, ErrInvalidContig)
	assert.Equal(t, 2, registry.Len())
}
