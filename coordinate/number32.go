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

//go:build position32

package coordinate

import "math"

// Number is the fixed-width unsigned integer behind every numbered position.
type Number = uint32

const (
	// MaxNumber is the largest numbered position.
	MaxNumber Number = math.MaxUint32
	// NumberWidth is the size of a Number in bytes.
	NumberWidth = 4
)
