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
	"testing"

	"github.com/googlegenomics/omics/contig"
	"github.com/googlegenomics/omics/strand"
	"github.com/stretchr/testify/require"
)

func mustContig(t testing.TB, name string) contig.Contig {
	t.Helper()
	c, err := contig.New(name)
	require.NoError(t, err)
	return c
}

func mustCoordinate[S System](t testing.TB, s string) Coordinate[S] {
	t.Helper()
	c, err := ParseCoordinate[S](s)
	require.NoError(t, err, "ParseCoordinate(%q)", s)
	return c
}

func mustInterval[S System](t testing.TB, s string) Interval[S] {
	t.Helper()
	i, err := ParseInterval[S](s)
	require.NoError(t, err, "ParseInterval(%q)", s)
	return i
}

// coordinateAt builds a coordinate on seq0 without going through the parser.
func coordinateAt[S System](t testing.TB, s strand.Strand, v Value) Coordinate[S] {
	t.Helper()
	p, err := NewPosition[S](v)
	require.NoError(t, err)
	c, err := NewCoordinate(mustContig(t, "seq0"), s, p)
	require.NoError(t, err)
	return c
}
