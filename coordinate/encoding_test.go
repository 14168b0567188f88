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
	"encoding"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ encoding.BinaryMarshaler   = Position[ZeroBased]{}
	_ encoding.BinaryUnmarshaler = (*Position[OneBased])(nil)
	_ encoding.TextMarshaler     = Interval[OneBased]{}
	_ encoding.TextUnmarshaler   = (*Coordinate[ZeroBased])(nil)
)

func TestPositionBinary(t *testing.T) {
	for _, v := range []Value{LowerBound(), Num(0), Num(1), Num(MaxNumber)} {
		p, err := NewPosition[ZeroBased](v)
		require.NoError(t, err)

		data, err := p.MarshalBinary()
		require.NoError(t, err)
		assert.Len(t, data, 2+NumberWidth)
		assert.Equal(t, byte(NumberWidth), data[0])

		var got Position[ZeroBased]
		require.NoError(t, got.UnmarshalBinary(data))
		assert.True(t, got.Equal(p), "decoded %v, want %v", got, p)
	}
}

func TestPositionBinaryErrors(t *testing.T) {
	lb, err := LowerBoundPosition().MarshalBinary()
	require.NoError(t, err)
	zero, err := Position[ZeroBased]{}.MarshalBinary()
	require.NoError(t, err)

	var one Position[OneBased]
	assert.ErrorIs(t, one.UnmarshalBinary(lb), ErrInvalidValue)
	assert.ErrorIs(t, one.UnmarshalBinary(zero), ErrInvalidValue)

	wide := append([]byte{NumberWidth * 2}, zero[1:]...)
	var p Position[ZeroBased]
	assert.ErrorIs(t, p.UnmarshalBinary(wide), ErrWidthMismatch)
	assert.ErrorIs(t, p.UnmarshalBinary(nil), ErrWidthMismatch)

	assert.Error(t, p.UnmarshalBinary(zero[:len(zero)-1]), "truncated number")
	assert.Error(t, p.UnmarshalBinary(append(zero, 0)), "trailing bytes")

	unknown := append([]byte{}, zero...)
	unknown[1] = 7
	assert.Error(t, p.UnmarshalBinary(unknown), "unknown kind")

	bad := append([]byte{}, lb...)
	bad[2] = 1
	assert.ErrorIs(t, p.UnmarshalBinary(bad), ErrInvalidValue)
}

func TestTextEncoding(t *testing.T) {
	type record struct {
		Position   Position[OneBased]    `json:"position"`
		Coordinate Coordinate[ZeroBased] `json:"coordinate"`
		Interval   Interval[ZeroBased]   `json:"interval"`
	}

	in := record{
		Position:   mustCoordinate[OneBased](t, "seq0:+:7").Position(),
		Coordinate: mustCoordinate[ZeroBased](t, "seq0:-:["),
		Interval:   mustInterval[ZeroBased](t, "chr1:-:5-["),
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"position":"7","coordinate":"seq0:-:[","interval":"chr1:-:5-["}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.Position.Equal(in.Position))
	assert.True(t, out.Coordinate.Equal(in.Coordinate))
	assert.True(t, out.Interval.Equal(in.Interval))

	var p Position[OneBased]
	assert.ErrorIs(t, p.UnmarshalText([]byte("0")), ErrInvalidValue)
	var i Interval[ZeroBased]
	assert.ErrorIs(t, i.UnmarshalText([]byte("seq0:+:10-10")), ErrZeroSized)
}
