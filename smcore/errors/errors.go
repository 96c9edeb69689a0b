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

// Package errors provides the error value carriers shared by every smapi
// shape and enum package.
//
// The types here are deliberately small: they carry the name of the shape or
// enum involved plus the offending value, and format a stable message with
// the "smapi:" prefix. Callers recognise them with errors.As, or with
// errors.Is against ErrInvalidArgument for the enum lookup failures.
//
// # Error Types
//
//   - EnumError
//     Returned by enum lookup (XxxFromValue, Table.FromValue) when the wire
//     value is empty, absent, or not part of the closed set.
//
//   - MarshalError
//     Returned when a value cannot be encoded, for example an enum constant
//     outside its closed set.
//
//   - UnmarshalError
//     Returned when a JSON or YAML payload cannot be decoded into a shape.
//
//   - ValidationError
//     Returned by Validate methods for a single advisory constraint that a
//     field value violates. Several of them are usually combined into one
//     error with go.uber.org/multierr.
//
// # Usage
//
//	import smerrors "dirpx.dev/smapi/smcore/errors"
//
//	func RootAccessFromValue(v string) (RootAccess, error) {
//	    if v == "" {
//	        return "", &smerrors.EnumError{Type: "RootAccess", Empty: true}
//	    }
//	    ...
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the error kind shared by all enum lookup failures.
//
// EnumError matches it through errors.Is regardless of which of its two
// messages it carries, so callers can test for the kind without parsing text.
var ErrInvalidArgument = errors.New("smapi: invalid argument")

// EnumError is returned when a wire string cannot be turned into a constant of
// a closed enum type.
//
// Empty distinguishes the two failure modes: true when the input was empty or
// absent, false when it was present but unknown. Both are the same kind of
// error (see ErrInvalidArgument); only the message differs.
type EnumError struct {
	// Type is the enum type name (for example, "InstanceType").
	Type string

	// Value is the rejected wire string. It is empty when Empty is true.
	Value string

	// Empty reports whether the input was empty or absent.
	Empty bool
}

// Error implements the error interface for EnumError.
//
// The message formats are:
//
//	"smapi: {Type} value cannot be null or empty"
//	"smapi: cannot create {Type} enum from {Value} value"
func (e *EnumError) Error() string {
	if e.Empty {
		return "smapi: " + e.Type + " value cannot be null or empty"
	}
	return "smapi: cannot create " + e.Type + " enum from " + e.Value + " value"
}

// Is reports whether target is ErrInvalidArgument.
func (e *EnumError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// MarshalError is returned when a value cannot be encoded because it lies
// outside the set of values its type accepts.
//
// Value holds the textual form of the rejected value. In most cases a
// MarshalError points at a programming error, such as an enum converted from
// an arbitrary string and never checked with Valid.
type MarshalError struct {
	// Type is the name of the type being marshaled.
	Type string

	// Value is the rejected value.
	Value string
}

// Error implements the error interface for MarshalError.
//
// The message format is:
//
//	"smapi: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "smapi: cannot marshal invalid " + e.Type + " value: " + e.Value
}

// UnmarshalError is returned when decoding data into a shape or enum fails.
//
// Data keeps the raw payload for callers that want to log it; it is not part
// of the formatted message, since payloads may be large or carry secrets.
type UnmarshalError struct {
	// Type is the name of the type being decoded into.
	Type string

	// Data is the raw input that failed to decode.
	Data []byte

	// Reason is a short explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The message format is:
//
//	"smapi: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "smapi: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError reports one advisory constraint violated by a shape field.
//
// Type is the shape name, Field the wire name of the field (empty when the
// violation concerns the shape as a whole), Reason a short description of the
// constraint and Value, when set, the offending value.
type ValidationError struct {
	Type   string
	Field  string
	Reason string
	Value  any
}

// Error implements the error interface for ValidationError.
//
// The message formats are:
//
//	"smapi: invalid {Type}.{Field}: {Reason}"
//	"smapi: invalid {Type}: {Reason}"
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "smapi: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "smapi: invalid " + e.Type + ": " + e.Reason
}

// Path returns "{Type}.{Field}", or Type alone when Field is empty.
func (e *ValidationError) Path() string {
	if e.Field == "" {
		return e.Type
	}
	return fmt.Sprintf("%s.%s", e.Type, e.Field)
}
