/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package shape

import (
	"math"
	"time"
)

// Equaler is implemented by every generated shape.
//
// Equal MUST return false when other is nil, a nil pointer, or a value of
// another shape type, and MUST be consistent with Hasher: two shapes that
// are Equal hash to the same value.
type Equaler interface {
	Equal(other any) bool
}

// EqualPtr reports whether two optional scalars are equal. An unset field
// equals only another unset field.
//
// The comparison is null-aware: when exactly one side is nil the result is
// false without looking at the other value, and two nils are equal. Only
// the pointed-to values are compared, never the pointers, so a shape and a
// copy made by Set or Clone compare equal.
//
// EqualPtr is used for strings, integers, longs and booleans. Doubles and
// timestamps have dedicated helpers because == is not the right notion of
// equality for them.
func EqualPtr[T comparable](a, b *T) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

// EqualFloat compares optional doubles by bit pattern, so NaN equals NaN and
// 0.0 differs from -0.0. This keeps Equal consistent with Hash.AddFloat64.
//
// Two NaN values with different payloads are not equal. The service never
// returns NaN, so this only matters for values built by callers.
func EqualFloat(a, b *float64) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || math.Float64bits(*a) == math.Float64bits(*b)
}

// EqualTime compares optional timestamps by instant.
//
// The location and the monotonic clock reading are ignored: 03:04:05Z and
// 05:04:05+02:00 are the same timestamp. Sub-millisecond differences are
// significant here even though TimeHash drops them; equal timestamps still
// hash equally, which is all Hasher requires.
func EqualTime(a, b *time.Time) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || a.Equal(*b)
}

// EqualSlice compares optional lists of scalars element by element. A nil
// list differs from an empty one.
//
// Order is significant. Lists are sequences on the wire, and a shape that
// lists the same values in another order is a different shape.
func EqualSlice[T comparable](a, b []T) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EqualShape compares optional nested shapes through their Equal method.
//
// The type parameters tie P to a pointer to a shape struct, so that a
// generated Equal can pass its fields without conversions:
//
//	shape.EqualShape(s.stoppingCondition, o.stoppingCondition)
func EqualShape[T any, P interface {
	*T
	Equaler
}](a, b P) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || a.Equal(b)
}

// EqualShapes compares optional lists of nested shapes element by element.
//
// As with EqualSlice, nil and empty lists differ and order is significant.
// A nil element equals only another nil element at the same position.
func EqualShapes[T any, P interface {
	*T
	Equaler
}](a, b []P) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualShape(a[i], b[i]) {
			return false
		}
	}
	return true
}
