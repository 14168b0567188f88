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
	"bytes"
	"fmt"

	"github.com/googlegenomics/omics/internal/binary"
)

const (
	kindNumber     byte = 0
	kindLowerBound byte = 1
)

// MarshalBinary encodes the position as a width byte (NumberWidth), a kind
// byte (0 for a number, 1 for the lower bound) and the little endian number.
func (p Position[S]) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	kind := kindNumber
	if p.value.lower {
		kind = kindLowerBound
	}
	buf.Write([]byte{NumberWidth, kind})
	if err := binary.Write(&buf, p.value.number); err != nil {
		return nil, fmt.Errorf("writing number: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a position written by MarshalBinary.  Data written
// with a different NumberWidth is rejected with ErrWidthMismatch and values
// outside the system with an error wrapping ErrInvalidValue.
func (p *Position[S]) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	if err := binary.ExpectBytes(r, []byte{NumberWidth}); err != nil {
		return fmt.Errorf("%w: %v", ErrWidthMismatch, err)
	}
	kind, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("reading kind: %w", err)
	}
	var n Number
	if err := binary.Read(r, &n); err != nil {
		return fmt.Errorf("reading number: %w", err)
	}
	if r.Len() != 0 {
		return fmt.Errorf("%d trailing bytes after position", r.Len())
	}

	var v Value
	switch kind {
	case kindNumber:
		v = Num(n)
	case kindLowerBound:
		if n != 0 {
			return fmt.Errorf("%w: lower bound with number %d", ErrInvalidValue, n)
		}
		v = LowerBound()
	default:
		return fmt.Errorf("unknown position kind %d", kind)
	}

	position, err := NewPosition[S](v)
	if err != nil {
		return err
	}
	*p = position
	return nil
}

func (p Position[S]) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Position[S]) UnmarshalText(text []byte) error {
	position, err := ParsePosition[S](string(text))
	if err != nil {
		return err
	}
	*p = position
	return nil
}

func (c Coordinate[S]) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Coordinate[S]) UnmarshalText(text []byte) error {
	coordinate, err := ParseCoordinate[S](string(text))
	if err != nil {
		return err
	}
	*c = coordinate
	return nil
}

func (i Interval[S]) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Interval[S]) UnmarshalText(text []byte) error {
	interval, err := ParseInterval[S](string(text))
	if err != nil {
		return err
	}
	*i = interval
	return nil
}
