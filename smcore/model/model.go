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

// Package model defines the contract that every smapi shape MUST implement,
// and generic helpers that operate on any shape through that contract.
//
// A shape is the typed request or response payload of one service operation
// (for example CreateNotebookInstanceRequest) or a nested structure carried
// inside one (for example CheckpointConfig). Shapes live in the generated
// packages below this one: common, training, notebook, labeling and coderepo.
// Each of them implements Model, which combines validation against the
// attached constraint table, JSON and YAML serialization with the service
// element names, safe and unsafe rendering, type identification, zero-value
// detection, structural equality and hashing.
//
// Shapes are plain mutable value holders. They perform no validation in
// their setters and carry no synchronization; callers MUST NOT mutate a shape
// while another goroutine reads it. The constraint tables returned by Schema
// are immutable and safe for concurrent reads.
//
// The generic helpers in this package (ValidateAll, FilterZero, ToJSON,
// ToYAML, FromJSON, FromYAML, Clone, Equal) rely on the Model contract and
// fail at compile time if applied to types that do not implement it.
package model

import (
	"encoding/json"

	"dirpx.dev/smapi/smcore/schema"
	"gopkg.in/yaml.v3"
)

// Model is the root interface combining the contracts of an smapi shape.
//
// Every generated shape implements Model on its pointer type and carries a
// compile-time assertion:
//
//	var _ model.Model = (*CheckpointConfig)(nil)
//
// Methods defined on Model MUST NOT mutate the receiver.
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
	Equatable
	Hashable
	Describable
}

// Validatable is implemented by shapes that check their field values against
// their constraint table.
//
// Validation is advisory: the service is the final authority, and shapes
// accept any value through their setters. Validate MUST report every
// violation rather than stopping at the first one, MUST recurse into nested
// shapes and lists of shapes, and MUST treat unset fields as valid. When it
// fails, the returned error combines *errors.ValidationError values with
// go.uber.org/multierr; use multierr.Errors to split them.
//
// Validate MUST be fast, deterministic and free of side effects. In
// particular it MUST NOT log.
type Validatable interface {
	Validate() error
}

// Serializable is implemented by shapes that encode to and from JSON and
// YAML using the service element names ("S3Uri", "NotebookInstanceName").
//
// Unset fields are omitted from the output. In JSON an empty list is kept,
// so that "present but empty" survives a round trip; YAML does not keep that
// distinction and drops empty lists.
//
// Marshaling validates first and fails with the validation error when the
// shape is invalid. Unmarshaling does not validate, since responses are
// authored by the service; callers that accept input from elsewhere SHOULD
// use FromJSON or FromYAML, which do.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is implemented by shapes that render themselves for diagnostics.
//
// String renders every set field, in declaration order, as
// "{Name: value,Name: value}". It is UNSAFE for logs since it includes
// fields the service flags as sensitive. Redacted renders the same layout
// with sensitive values replaced by "[REDACTED]" and MUST be the only form
// written to logs.
type Loggable interface {
	Redacted() string
	String() string
}

// Identifiable is implemented by shapes that report their service shape
// name, for example "DescribeNotebookInstanceResult".
type Identifiable interface {
	TypeName() string
}

// ZeroCheckable is implemented by shapes that report whether no field is
// set.
type ZeroCheckable interface {
	IsZero() bool
}

// Equatable is implemented by shapes with structural equality.
//
// Equal MUST return true if and only if other is a non-nil pointer to the
// same shape type and every field is pairwise equal: both unset, or both set
// to equal values. Lists are equal when both are unset or both hold equal
// elements in the same order; an unset list is not equal to an empty one.
// Equal MUST return false for nil, typed nil pointers and other types.
type Equatable interface {
	Equal(other any) bool
}

// Hashable is implemented by shapes whose hash code is consistent with
// Equal: shapes that are Equal MUST return the same HashCode.
//
// The value is the fold h = 31*h + fieldHash over the declared field order,
// starting from h = 1, with 0 for unset fields. Field hashes are the ones a
// JVM client computes for the same values, so hash codes match across
// clients.
type Hashable interface {
	HashCode() int32
}

// Describable is implemented by shapes that expose their constraint table.
type Describable interface {
	Schema() *schema.Shape
}

// Cloneable is implemented by shapes that deep copy themselves. The copy
// MUST NOT share any list or nested shape with the original.
type Cloneable[T any] interface {
	Clone() T
}
