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

// Package enum implements the closed-set lookup tables behind every smapi
// enum type.
//
// An enum type is a named string whose constants are the exact wire values
// the service accepts (for example "ml.t2.medium" or "InService"). Each enum
// package declares one Table at initialisation; the table is never modified
// afterwards, so lookups are safe from any goroutine.
//
//	type RootAccess string
//
//	const (
//	    RootAccessEnabled  RootAccess = "Enabled"
//	    RootAccessDisabled RootAccess = "Disabled"
//	)
//
//	var rootAccessTable = enum.New("RootAccess", RootAccessEnabled, RootAccessDisabled)
//
//	func RootAccessFromValue(v string) (RootAccess, error) {
//	    return rootAccessTable.FromValue(v)
//	}
package enum

import (
	"fmt"

	"dirpx.dev/smapi/smcore/errors"
)

// Table maps wire strings to the constants of one enum type.
type Table[T ~string] struct {
	name   string
	values []T
	index  map[string]T
}

// New builds the table for the enum type called name. Values keep their
// declaration order. New panics on an empty or duplicate value, since both
// are mistakes in the enum declaration itself.
func New[T ~string](name string, values ...T) *Table[T] {
	t := &Table[T]{
		name:   name,
		values: make([]T, len(values)),
		index:  make(map[string]T, len(values)),
	}
	for i, v := range values {
		if v == "" {
			panic(fmt.Sprintf("enum: %s declares an empty value", name))
		}
		if _, dup := t.index[string(v)]; dup {
			panic(fmt.Sprintf("enum: %s declares %q twice", name, string(v)))
		}
		t.values[i] = v
		t.index[string(v)] = v
	}
	return t
}

// Name returns the enum type name.
func (t *Table[T]) Name() string {
	return t.name
}

// FromValue returns the constant whose wire value is exactly v.
//
// Matching is case-sensitive and does not trim. An empty v fails with an
// *errors.EnumError whose Empty flag is set; an unknown v fails with an
// *errors.EnumError carrying the value. Both match errors.ErrInvalidArgument.
func (t *Table[T]) FromValue(v string) (T, error) {
	if v == "" {
		return "", &errors.EnumError{Type: t.name, Empty: true}
	}
	c, ok := t.index[v]
	if !ok {
		return "", &errors.EnumError{Type: t.name, Value: v}
	}
	return c, nil
}

// FromPointer is FromValue for an optional field value; nil is treated like
// the empty string.
func (t *Table[T]) FromPointer(v *string) (T, error) {
	if v == nil {
		return t.FromValue("")
	}
	return t.FromValue(*v)
}

// Contains reports whether v is one of the table's wire values.
func (t *Table[T]) Contains(v string) bool {
	_, ok := t.index[v]
	return ok
}

// Values returns the constants in declaration order. The returned slice is a
// copy.
func (t *Table[T]) Values() []T {
	out := make([]T, len(t.values))
	copy(out, t.values)
	return out
}

// Strings returns the wire values in declaration order.
func (t *Table[T]) Strings() []string {
	out := make([]string, len(t.values))
	for i, v := range t.values {
		out[i] = string(v)
	}
	return out
}

// MarshalText returns v as text when it belongs to the table, or an
// *errors.MarshalError otherwise.
func (t *Table[T]) MarshalText(v T) ([]byte, error) {
	if !t.Contains(string(v)) {
		return nil, &errors.MarshalError{Type: t.name, Value: string(v)}
	}
	return []byte(v), nil
}
