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

package schema

import "fmt"

// Shape is the constraint table of one shape: its fields in declaration
// order.
//
// Generated packages build one Shape per generated type at package
// initialisation with MustShape, and expose them through Schemas(). The
// table is the machine-readable form of the constraints documented on the
// getters, for a request executor that wants to validate before sending.
//
// A Shape MUST NOT be modified after construction. It is then safe for
// concurrent use by multiple goroutines. Tables loaded from YAML are
// recompiled through NewShape; a Shape decoded directly has no field index
// and no compiled patterns.
type Shape struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`

	index map[string]int
}

// NewShape builds a shape table and compiles its patterns.
//
// It returns an error when:
//   - two fields share a name,
//   - a field or list element has an unknown kind,
//   - a structure field does not name its shape,
//   - a pattern does not compile.
func NewShape(name string, fields ...Field) (*Shape, error) {
	s := &Shape{
		Name:   name,
		Fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("schema: %s declares field %s twice", name, f.Name)
		}
		if err := f.compile(); err != nil {
			return nil, fmt.Errorf("schema: %s: %w", name, err)
		}
		s.Fields[i] = f
		s.index[f.Name] = i
	}
	return s, nil
}

// MustShape is NewShape for package-level tables; it panics on error.
//
//	var tagSchema = schema.MustShape("Tag",
//		schema.String("Key", schema.Length(1, 128)),
//		schema.String("Value", schema.Length(0, 256)),
//	)
func MustShape(name string, fields ...Field) *Shape {
	s, err := NewShape(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Field returns the named field. The returned pointer refers into the
// table and MUST NOT be modified.
func (s *Shape) Field(name string) (*Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return &s.Fields[i], true
}

// FieldNames returns the field names in declaration order. The slice is a
// fresh copy.
func (s *Shape) FieldNames() []string {
	out := make([]string, len(s.Fields))
	for i := range s.Fields {
		out[i] = s.Fields[i].Name
	}
	return out
}

// Sensitive reports whether the named field is marked sensitive. Unknown
// fields are not sensitive.
//
// Sensitive fields print as shape.RedactedText in Redacted output.
func (s *Shape) Sensitive(name string) bool {
	f, ok := s.Field(name)
	return ok && f.Sensitive
}

// Validator returns a Validator that checks values against s.
//
// Each call returns a new Validator; a generated Validate method creates one,
// feeds it every set field and returns its Err.
func (s *Shape) Validator() *Validator {
	return &Validator{shape: s}
}
