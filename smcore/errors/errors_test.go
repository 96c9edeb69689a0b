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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestEnumError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *EnumError
		want string
	}{
		{
			"empty input",
			&EnumError{Type: "InstanceType", Empty: true},
			"smapi: InstanceType value cannot be null or empty",
		},
		{
			"unknown input",
			&EnumError{Type: "InstanceType", Value: "ml.bogus"},
			"smapi: cannot create InstanceType enum from ml.bogus value",
		},
		{
			"unknown input with spaces",
			&EnumError{Type: "RootAccess", Value: " Enabled "},
			"smapi: cannot create RootAccess enum from  Enabled  value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("EnumError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnumError_IsInvalidArgument(t *testing.T) {
	for _, err := range []error{
		&EnumError{Type: "A", Empty: true},
		&EnumError{Type: "A", Value: "x"},
		fmt.Errorf("wrapped: %w", &EnumError{Type: "A", Value: "x"}),
	} {
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("errors.Is(%v, ErrInvalidArgument) = false, want true", err)
		}
	}

	if errors.Is(&ValidationError{Type: "A"}, ErrInvalidArgument) {
		t.Error("ValidationError must not match ErrInvalidArgument")
	}
}

func TestMarshalError_Error(t *testing.T) {
	err := &MarshalError{Type: "RootAccess", Value: "Sometimes"}
	want := "smapi: cannot marshal invalid RootAccess value: Sometimes"
	if got := err.Error(); got != want {
		t.Errorf("MarshalError.Error() = %q, want %q", got, want)
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UnmarshalError
		want string
	}{
		{
			"syntax error",
			&UnmarshalError{Type: "CheckpointConfig", Data: []byte(`{`), Reason: "unexpected end of JSON input"},
			"smapi: cannot unmarshal CheckpointConfig: unexpected end of JSON input",
		},
		{
			"data is not rendered",
			&UnmarshalError{Type: "Tag", Data: []byte(`{"Key":"secret"}`), Reason: "bad"},
			"smapi: cannot unmarshal Tag: bad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UnmarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		wantMsg  string
		wantPath string
	}{
		{
			"with field",
			&ValidationError{Type: "CheckpointConfig", Field: "S3Uri", Reason: "does not match pattern"},
			"smapi: invalid CheckpointConfig.S3Uri: does not match pattern",
			"CheckpointConfig.S3Uri",
		},
		{
			"without field",
			&ValidationError{Type: "USD", Reason: "must not be empty"},
			"smapi: invalid USD: must not be empty",
			"USD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Path(); got != tt.wantPath {
				t.Errorf("Path() = %q, want %q", got, tt.wantPath)
			}
		})
	}
}
