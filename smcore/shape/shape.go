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

// Package shape is the field runtime that generated shape types call into.
//
// A shape keeps every field optional: scalars are stored behind pointers and
// lists as slices, with nil meaning "unset". This package supplies the
// operations every shape needs on such fields, so that generated code stays a
// flat list of calls:
//
//   - pointer constructors and accessors (String, Int32, Value, Copy)
//   - owned list handling (CopySlice, AppendSlice)
//   - null-aware equality (EqualPtr, EqualSlice, EqualShape, ...)
//   - JVM-compatible hash folding (Hash)
//   - diagnostic rendering (Printer)
//
// Nothing here is safe for concurrent mutation; the same holds for the shapes
// built on top of it.
package shape

import "time"

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// String returns a pointer to v.
func String(v string) *string { return &v }

// Int32 returns a pointer to v.
func Int32(v int32) *int32 { return &v }

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Time returns a pointer to v.
func Time(v time.Time) *time.Time { return &v }

// Value dereferences p, returning the zero value of T when p is nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Copy returns a new pointer holding *p, or nil when p is nil.
//
// Setters use it so that a shape never shares scalar storage with the caller.
func Copy[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CopySlice returns an owned copy of s.
//
// A nil input stays nil (the field is unset); a non-nil input, even an empty
// one, yields a non-nil slice so that "present but empty" survives the copy.
func CopySlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// AppendSlice appends values to s, creating the list when s is unset.
//
// Calling it with no values on an unset list still produces an empty,
// present list, matching the behaviour of the fluent Append methods.
func AppendSlice[T any](s []T, values ...T) []T {
	if s == nil {
		s = make([]T, 0, len(values))
	}
	return append(s, values...)
}

// CloneShape deep-copies a nested shape pointer through its Clone method.
func CloneShape[T any, P interface {
	*T
	Clone() *T
}](p P) *T {
	if p == nil {
		return nil
	}
	return p.Clone()
}

// CloneShapes deep-copies a list of nested shapes, keeping nil elements and
// the nil/empty distinction of the list itself.
func CloneShapes[T any, P interface {
	*T
	Clone() *T
}](s []P) []P {
	if s == nil {
		return nil
	}
	out := make([]P, len(s))
	for i, p := range s {
		if p != nil {
			out[i] = P(p.Clone())
		}
	}
	return out
}
