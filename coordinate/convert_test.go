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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNudge(t *testing.T) {
	testCases := []struct {
		input    string
		forward  string
		backward string
	}{
		{"seq0:+:0", "seq0:+:1", ""},
		{"seq0:+:5", "seq0:+:6", "seq0:+:5"},
		{fmt.Sprintf("seq0:+:%d", MaxNumber), "", fmt.Sprintf("seq0:+:%d", MaxNumber)},
		{"seq0:-:5", "seq0:-:5", "seq0:-:6"},
		{"seq0:-:0", "", "seq0:-:1"},
		{"seq0:-:[", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			c := mustCoordinate[ZeroBased](t, tc.input)

			got, ok := NudgeForward(c)
			if tc.forward == "" {
				assert.False(t, ok, "NudgeForward() = %v, want no result", got)
			} else if assert.True(t, ok) {
				assert.Equal(t, tc.forward, got.String())
			}

			got, ok = NudgeBackward(c)
			if tc.backward == "" {
				assert.False(t, ok, "NudgeBackward() = %v, want no result", got)
			} else if assert.True(t, ok) {
				assert.Equal(t, tc.backward, got.String())
			}
		})
	}
}

func TestInterbase(t *testing.T) {
	testCases := []struct {
		input    string
		forward  string
		backward string
	}{
		{"seq0:+:1", "seq0:+:1", "seq0:+:0"},
		{"seq0:+:5", "seq0:+:5", "seq0:+:4"},
		{"seq0:-:5", "seq0:-:4", "seq0:-:5"},
		{"seq0:-:1", "seq0:-:0", "seq0:-:1"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			c := mustCoordinate[OneBased](t, tc.input)

			got, ok := InterbaseForward(c)
			require.True(t, ok)
			assert.Equal(t, tc.forward, got.String())

			got, ok = InterbaseBackward(c)
			require.True(t, ok)
			assert.Equal(t, tc.backward, got.String())
		})
	}
}

func TestNudgeInterbaseRoundTrip(t *testing.T) {
	for _, s := range []string{"seq0:+:1", "seq0:+:5", "seq0:-:5", "seq0:-:1"} {
		c := mustCoordinate[ZeroBased](t, s)

		unit, ok := NudgeForward(c)
		require.True(t, ok)
		back, ok := InterbaseBackward(unit)
		require.True(t, ok)
		assert.True(t, back.Equal(c), "InterbaseBackward(NudgeForward(%v)) = %v", c, back)

		unit, ok = NudgeBackward(c)
		require.True(t, ok)
		back, ok = InterbaseForward(unit)
		require.True(t, ok)
		assert.True(t, back.Equal(c), "InterbaseForward(NudgeBackward(%v)) = %v", c, back)
	}
}

func TestContainsNextAndPrevEntity(t *testing.T) {
	testCases := []struct {
		interval   string
		coordinate string
		next, prev bool
	}{
		{"seq0:+:10-20", "seq0:+:10", true, false},
		{"seq0:+:10-20", "seq0:+:15", true, true},
		{"seq0:+:10-20", "seq0:+:20", false, true},
		{"seq0:-:20-10", "seq0:-:20", true, false},
		{"seq0:-:20-10", "seq0:-:10", false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.interval+" "+tc.coordinate, func(t *testing.T) {
			interval := mustInterval[ZeroBased](t, tc.interval)
			c := mustCoordinate[ZeroBased](t, tc.coordinate)

			next, ok := ContainsNextEntity(interval, c)
			require.True(t, ok)
			assert.Equal(t, tc.next, next, "ContainsNextEntity()")

			prev, ok := ContainsPrevEntity(interval, c)
			require.True(t, ok)
			assert.Equal(t, tc.prev, prev, "ContainsPrevEntity()")
		})
	}

	_, ok := ContainsPrevEntity(mustInterval[ZeroBased](t, "seq0:+:0-10"), mustCoordinate[ZeroBased](t, "seq0:+:0"))
	assert.False(t, ok, "there is no unit before position 0")
}
