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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a batch of shapes and returns every failure.
//
// Each failure is wrapped with the position of the shape in the slice and
// its type name, for example "shape[2] (Tag): smapi: invalid Tag.Key: ...".
// All shapes are processed even when early ones fail. Empty slices are
// valid.
//
//	if err := model.ValidateAll(req.Tags()); err != nil {
//	    return err
//	}
func ValidateAll[T Model](shapes []T) error {
	c := rxmerr.NewCollector()

	for i, m := range shapes {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("shape[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice holding only the shapes with at least one
// field set. The result never shares storage with the input and is non-nil
// even when every shape is zero.
func FilterZero[T Model](shapes []T) []T {
	result := make([]T, 0, len(shapes))

	for _, m := range shapes {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a shape and panics if validation fails. It is meant
// for tests and fixed package-level fixtures, never for request handling.
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("shape validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns the redacted rendering of m, or the full rendering when
// unsafe is true. Callers MUST only pass unsafe=true for local debugging.
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON validates m and encodes it as JSON.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates m and encodes it as YAML.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON decodes data into m and validates the result. Unlike the shape's
// own UnmarshalJSON it rejects values that violate the constraint table,
// which makes it the entry point for input that does not come from the
// service.
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled shape is invalid: %w", err)
	}
	return nil
}

// FromYAML is FromJSON for YAML input.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled shape is invalid: %w", err)
	}
	return nil
}

// Clone returns a deep copy of m through its own Clone method. Unlike a
// round trip through ToJSON it never fails, so invalid shapes can be copied
// too. A nil m yields nil.
//
//	draft := model.Clone(req).WithTrainingJobName("job-2")
func Clone[T interface {
	Model
	Cloneable[T]
}](m T) T {
	return m.Clone()
}

// Equal reports whether a and b are structurally equal.
func Equal[T Model](a, b T) bool {
	return a.Equal(b)
}
