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

// Package schema holds the advisory constraint metadata attached to every
// smapi shape.
//
// The service documents, for each request and response element, bounds such
// as a maximum length, a regular expression, a numeric range or a closed set
// of allowed values. Shapes never enforce these in their setters: a shape is
// a plain value holder. Instead each shape exposes its table through
// Schema(), and Validate walks the table with a Validator so that a
// transport collaborator can reject bad input before it is sent.
//
// Tables are built once at package initialisation and never mutated, which
// makes them safe for concurrent reads.
package schema

import (
	"fmt"
	"regexp"
)

// Kind is the semantic type of a field.
type Kind string

const (
	KindString    Kind = "string"
	KindInteger   Kind = "integer"
	KindLong      Kind = "long"
	KindDouble    Kind = "double"
	KindBoolean   Kind = "boolean"
	KindTimestamp Kind = "timestamp"
	KindStructure Kind = "structure"
	KindList      Kind = "list"
)

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindString, KindInteger, KindLong, KindDouble, KindBoolean,
		KindTimestamp, KindStructure, KindList:
		return true
	default:
		return false
	}
}

// Scalar reports whether k is neither a structure nor a list.
func (k Kind) Scalar() bool {
	return k.Valid() && k != KindStructure && k != KindList
}

// Field describes one member of a shape and the constraints its value should
// satisfy.
//
// For lists of strings, the string constraints (length, pattern, allowed
// values) apply to every element while MinItems and MaxItems apply to the
// list itself.
type Field struct {
	// Name is the wire name, for example "NotebookInstanceName".
	Name string `yaml:"name"`

	// Kind is the semantic type.
	Kind Kind `yaml:"kind"`

	// Elem is the element kind of a list.
	Elem Kind `yaml:"elem,omitempty"`

	// Shape names the nested shape of a structure or list of structures.
	// It may be qualified with a package ("common.Tag").
	Shape string `yaml:"shape,omitempty"`

	// Enum names the enum type backing a string field.
	Enum string `yaml:"enum,omitempty"`

	// Values is the closed set of wire values a string accepts.
	Values []string `yaml:"values,omitempty"`

	MinLength *int     `yaml:"minLength,omitempty"`
	MaxLength *int     `yaml:"maxLength,omitempty"`
	Pattern   string   `yaml:"pattern,omitempty"`
	Min       *float64 `yaml:"min,omitempty"`
	Max       *float64 `yaml:"max,omitempty"`
	MinItems  *int     `yaml:"minItems,omitempty"`
	MaxItems  *int     `yaml:"maxItems,omitempty"`

	// Sensitive marks values that Redacted output must hide.
	Sensitive bool `yaml:"sensitive,omitempty"`

	re *regexp.Regexp
}

// Option sets one constraint on a Field.
type Option func(*Field)

// MinLength sets the minimum string length, in characters.
func MinLength(n int) Option {
	return func(f *Field) { f.MinLength = &n }
}

// MaxLength sets the maximum string length, in characters.
func MaxLength(n int) Option {
	return func(f *Field) { f.MaxLength = &n }
}

// Length sets both string length bounds.
func Length(lo, hi int) Option {
	return func(f *Field) {
		f.MinLength = &lo
		f.MaxLength = &hi
	}
}

// Pattern sets the regular expression a string must match in full.
func Pattern(expr string) Option {
	return func(f *Field) { f.Pattern = expr }
}

// Min sets the lower numeric bound.
func Min(v float64) Option {
	return func(f *Field) { f.Min = &v }
}

// Max sets the upper numeric bound.
func Max(v float64) Option {
	return func(f *Field) { f.Max = &v }
}

// Range sets both numeric bounds.
func Range(lo, hi float64) Option {
	return func(f *Field) {
		f.Min = &lo
		f.Max = &hi
	}
}

// MinItems sets the minimum list size.
func MinItems(n int) Option {
	return func(f *Field) { f.MinItems = &n }
}

// MaxItems sets the maximum list size.
func MaxItems(n int) Option {
	return func(f *Field) { f.MaxItems = &n }
}

// Items sets both list size bounds.
func Items(lo, hi int) Option {
	return func(f *Field) {
		f.MinItems = &lo
		f.MaxItems = &hi
	}
}

// OneOf ties a string field to an enum type and its wire values.
func OneOf(enum string, values ...string) Option {
	return func(f *Field) {
		f.Enum = enum
		f.Values = append([]string(nil), values...)
	}
}

// Sensitive marks the field as sensitive.
func Sensitive() Option {
	return func(f *Field) { f.Sensitive = true }
}

func newField(name string, kind Kind, opts []Option) Field {
	f := Field{Name: name, Kind: kind}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// String declares a string field.
func String(name string, opts ...Option) Field {
	return newField(name, KindString, opts)
}

// Integer declares a 32-bit integer field.
func Integer(name string, opts ...Option) Field {
	return newField(name, KindInteger, opts)
}

// Long declares a 64-bit integer field.
func Long(name string, opts ...Option) Field {
	return newField(name, KindLong, opts)
}

// Double declares a floating point field.
func Double(name string, opts ...Option) Field {
	return newField(name, KindDouble, opts)
}

// Boolean declares a boolean field.
func Boolean(name string, opts ...Option) Field {
	return newField(name, KindBoolean, opts)
}

// Timestamp declares a timestamp field.
func Timestamp(name string, opts ...Option) Field {
	return newField(name, KindTimestamp, opts)
}

// Structure declares a nested shape field.
func Structure(name, shape string, opts ...Option) Field {
	f := newField(name, KindStructure, opts)
	f.Shape = shape
	return f
}

// List declares a list of scalars.
func List(name string, elem Kind, opts ...Option) Field {
	f := newField(name, KindList, opts)
	f.Elem = elem
	return f
}

// StructureList declares a list of nested shapes.
func StructureList(name, shape string, opts ...Option) Field {
	f := newField(name, KindList, opts)
	f.Elem = KindStructure
	f.Shape = shape
	return f
}

// compile prepares the field for validation. The pattern is anchored at both
// ends so that it has to match the whole value.
func (f *Field) compile() error {
	if !f.Kind.Valid() {
		return fmt.Errorf("field %s: unknown kind %q", f.Name, f.Kind)
	}
	if f.Kind == KindList && !f.Elem.Valid() {
		return fmt.Errorf("field %s: list has unknown element kind %q", f.Name, f.Elem)
	}
	if (f.Kind == KindStructure || f.Elem == KindStructure) && f.Shape == "" {
		return fmt.Errorf("field %s: structure without shape name", f.Name)
	}
	if f.Pattern == "" {
		return nil
	}
	re, err := regexp.Compile("^(?:" + f.Pattern + ")$")
	if err != nil {
		return fmt.Errorf("field %s: %w", f.Name, err)
	}
	f.re = re
	return nil
}

// Allows reports whether s is in Values. A field without Values allows any
// string.
func (f *Field) Allows(s string) bool {
	if len(f.Values) == 0 {
		return true
	}
	for _, v := range f.Values {
		if v == s {
			return true
		}
	}
	return false
}

// Matches reports whether s matches the field pattern in full. A field
// without a pattern matches any string.
func (f *Field) Matches(s string) bool {
	if f.re == nil {
		return true
	}
	return f.re.MatchString(s)
}
