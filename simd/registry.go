// Copyright 2026 simd-sub000 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simd

import "fmt"

// RegShape describes the backing register for one (element kind, lane
// count) pair: its element size, total byte size and required alignment.
// Alignment always equals the total size so that any instance satisfies
// hardware register alignment, not merely element alignment.
type RegShape struct {
	ElemSize int
	Size     int
	Align    int
}

// LaneCounts lists the lane counts every element kind must support.
var LaneCounts = [...]int{1, 2, 4, 8, 16, 32, 64}

// registryKinds is the closed world of element kinds with a register
// representation. KindBool is absent: boolean vectors borrow the
// integral register of their companion element width.
var registryKinds = [...]Kind{
	KindInt8, KindInt16, KindInt32, KindInt64, KindInt128,
	KindUint8, KindUint16, KindUint32, KindUint64,
	KindFloat32, KindFloat64,
}

type regKey struct {
	kind  Kind
	lanes int
}

// registry is the static (kind, lanes) -> shape table, built once at
// package init. A lookup miss means the combination has no register
// representation and vector construction must fail.
var registry map[regKey]RegShape

func init() {
	registry = make(map[regKey]RegShape, len(registryKinds)*len(LaneCounts))
	for _, k := range registryKinds {
		es := k.Size()
		for _, n := range LaneCounts {
			registry[regKey{k, n}] = RegShape{
				ElemSize: es,
				Size:     n * es,
				Align:    n * es,
			}
		}
	}
}

// ShapeOf returns the register shape for an (element kind, lane count)
// pair. Unsupported combinations return ErrNoRepresentation.
func ShapeOf(kind Kind, lanes int) (RegShape, error) {
	s, ok := registry[regKey{kind, lanes}]
	if !ok {
		return RegShape{}, fmt.Errorf("%w for %s x%d", ErrNoRepresentation, kind, lanes)
	}
	return s, nil
}

// mustShape is ShapeOf for constructors: a miss is a programming error
// (the Go analogue of the registry's compile-time rejection) and panics.
func mustShape(kind Kind, lanes int) RegShape {
	s, err := ShapeOf(kind, lanes)
	if err != nil {
		panic(err)
	}
	return s
}
