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

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"dirpx.dev/smapi/smcore/errors"
	"go.uber.org/multierr"
)

// Validator checks the field values of one shape instance against its table
// and collects every violation.
//
// Unset fields are never violations: the service tables carry no
// requiredness, only bounds on values that are present.
//
//	func (c *CheckpointConfig) Validate() error {
//	    return checkpointConfigSchema.Validator().
//	        String("S3Uri", c.s3Uri).
//	        String("LocalPath", c.localPath).
//	        Err()
//	}
type Validator struct {
	shape *Shape
	err   error
}

// Err returns the combined violations, or nil. Individual violations are
// *errors.ValidationError values; use multierr.Errors to split them.
func (v *Validator) Err() error {
	return v.err
}

func (v *Validator) fail(field, reason string, value any) {
	v.err = multierr.Append(v.err, &errors.ValidationError{
		Type:   v.shape.Name,
		Field:  field,
		Reason: reason,
		Value:  value,
	})
}

func (v *Validator) field(name string) (*Field, bool) {
	f, ok := v.shape.Field(name)
	if !ok {
		v.fail(name, "is not declared in the shape schema", nil)
	}
	return f, ok
}

// String checks an optional string field.
func (v *Validator) String(name string, p *string) *Validator {
	if p == nil {
		return v
	}
	if f, ok := v.field(name); ok {
		v.checkString(f, name, *p)
	}
	return v
}

// Strings checks an optional list of strings: its size, then each element.
func (v *Validator) Strings(name string, s []string) *Validator {
	if s == nil {
		return v
	}
	f, ok := v.field(name)
	if !ok {
		return v
	}
	v.checkItems(f, name, len(s))
	for i, e := range s {
		v.checkString(f, name+"["+strconv.Itoa(i)+"]", e)
	}
	return v
}

// Int32 checks an optional integer field.
func (v *Validator) Int32(name string, p *int32) *Validator {
	if p == nil {
		return v
	}
	if f, ok := v.field(name); ok {
		v.checkNumber(f, name, float64(*p), *p)
	}
	return v
}

// Int64 checks an optional long field.
func (v *Validator) Int64(name string, p *int64) *Validator {
	if p == nil {
		return v
	}
	if f, ok := v.field(name); ok {
		v.checkNumber(f, name, float64(*p), *p)
	}
	return v
}

// Float64 checks an optional double field.
func (v *Validator) Float64(name string, p *float64) *Validator {
	if p == nil {
		return v
	}
	if f, ok := v.field(name); ok {
		v.checkNumber(f, name, *p, *p)
	}
	return v
}

// Nested validates an optional nested shape and reports its violations under
// this shape, with the field name as a path prefix.
func Nested[T any, P interface {
	*T
	Validate() error
}](v *Validator, name string, p P) *Validator {
	if p == nil {
		return v
	}
	if _, ok := v.field(name); ok {
		v.adopt(name, p.Validate())
	}
	return v
}

// NestedList validates an optional list of nested shapes: its size, then
// each non-nil element.
func NestedList[T any, P interface {
	*T
	Validate() error
}](v *Validator, name string, s []P) *Validator {
	if s == nil {
		return v
	}
	f, ok := v.field(name)
	if !ok {
		return v
	}
	v.checkItems(f, name, len(s))
	for i, p := range s {
		if p == nil {
			continue
		}
		v.adopt(name+"["+strconv.Itoa(i)+"]", p.Validate())
	}
	return v
}

// adopt re-homes the violations of a nested shape under path.
func (v *Validator) adopt(path string, err error) {
	for _, e := range multierr.Errors(err) {
		ve, ok := e.(*errors.ValidationError)
		if !ok {
			v.err = multierr.Append(v.err, fmt.Errorf("%s.%s: %w", v.shape.Name, path, e))
			continue
		}
		field := path
		if ve.Field != "" {
			field = path + "." + ve.Field
		}
		v.fail(field, ve.Reason, ve.Value)
	}
}

func (v *Validator) checkString(f *Field, path, s string) {
	n := utf8.RuneCountInString(s)
	if f.MinLength != nil && n < *f.MinLength {
		v.fail(path, fmt.Sprintf("length %d is below minimum %d", n, *f.MinLength), s)
	}
	if f.MaxLength != nil && n > *f.MaxLength {
		v.fail(path, fmt.Sprintf("length %d exceeds maximum %d", n, *f.MaxLength), s)
	}
	if !f.Matches(s) {
		v.fail(path, fmt.Sprintf("does not match pattern %s", f.Pattern), s)
	}
	if !f.Allows(s) {
		v.fail(path, fmt.Sprintf("%q is not one of [%s]", s, strings.Join(f.Values, ", ")), s)
	}
}

func (v *Validator) checkNumber(f *Field, path string, n float64, raw any) {
	if f.Min != nil && n < *f.Min {
		v.fail(path, fmt.Sprintf("value %v is below minimum %v", raw, *f.Min), raw)
	}
	if f.Max != nil && n > *f.Max {
		v.fail(path, fmt.Sprintf("value %v exceeds maximum %v", raw, *f.Max), raw)
	}
}

func (v *Validator) checkItems(f *Field, path string, n int) {
	if f.MinItems != nil && n < *f.MinItems {
		v.fail(path, fmt.Sprintf("has %d items, minimum is %d", n, *f.MinItems), n)
	}
	if f.MaxItems != nil && n > *f.MaxItems {
		v.fail(path, fmt.Sprintf("has %d items, maximum is %d", n, *f.MaxItems), n)
	}
}
