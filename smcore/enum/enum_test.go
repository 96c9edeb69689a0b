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

package enum_test

import (
	stderrors "errors"
	"testing"

	"dirpx.dev/smapi/smcore/enum"
	"dirpx.dev/smapi/smcore/errors"
	"github.com/google/go-cmp/cmp"
)

type access string

const (
	accessEnabled  access = "Enabled"
	accessDisabled access = "Disabled"
)

var table = enum.New("RootAccess", accessEnabled, accessDisabled)

func TestTable_FromValue(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      access
		wantEmpty bool
		wantErr   string
	}{
		{"first value", "Enabled", accessEnabled, false, ""},
		{"second value", "Disabled", accessDisabled, false, ""},
		{"empty", "", "", true, "smapi: RootAccess value cannot be null or empty"},
		{"unknown", "UNKNOWN", "", false, "smapi: cannot create RootAccess enum from UNKNOWN value"},
		{"case sensitive", "enabled", "", false, "smapi: cannot create RootAccess enum from enabled value"},
		{"no trimming", " Enabled", "", false, "smapi: cannot create RootAccess enum from  Enabled value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.FromValue(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("FromValue(%q) error = %v", tt.input, err)
				}
				if got != tt.want {
					t.Errorf("FromValue(%q) = %q, want %q", tt.input, got, tt.want)
				}
				if string(got) != tt.input {
					t.Errorf("wire value did not round-trip: %q vs %q", got, tt.input)
				}
				return
			}

			if err == nil {
				t.Fatalf("FromValue(%q) = %q, want error", tt.input, got)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
			}
			if !stderrors.Is(err, errors.ErrInvalidArgument) {
				t.Errorf("error %v is not ErrInvalidArgument", err)
			}
			var ee *errors.EnumError
			if !stderrors.As(err, &ee) {
				t.Fatalf("error %T is not *EnumError", err)
			}
			if ee.Empty != tt.wantEmpty {
				t.Errorf("Empty = %v, want %v", ee.Empty, tt.wantEmpty)
			}
		})
	}
}

func TestTable_FromPointer(t *testing.T) {
	if _, err := table.FromPointer(nil); err == nil || err.Error() != "smapi: RootAccess value cannot be null or empty" {
		t.Errorf("FromPointer(nil) error = %v", err)
	}
	v := "Disabled"
	got, err := table.FromPointer(&v)
	if err != nil || got != accessDisabled {
		t.Errorf("FromPointer(Disabled) = %q, %v", got, err)
	}
}

func TestTable_Values(t *testing.T) {
	if diff := cmp.Diff([]access{accessEnabled, accessDisabled}, table.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Enabled", "Disabled"}, table.Strings()); diff != "" {
		t.Errorf("Strings mismatch (-want +got):\n%s", diff)
	}

	values := table.Values()
	values[0] = "changed"
	if !table.Contains("Enabled") || table.Values()[0] != accessEnabled {
		t.Error("Values exposed internal storage")
	}
}

func TestTable_MarshalText(t *testing.T) {
	b, err := table.MarshalText(accessEnabled)
	if err != nil || string(b) != "Enabled" {
		t.Errorf("MarshalText(Enabled) = %q, %v", b, err)
	}

	_, err = table.MarshalText("Sometimes")
	var me *errors.MarshalError
	if !stderrors.As(err, &me) {
		t.Fatalf("MarshalText(invalid) error = %v, want *MarshalError", err)
	}
}

func TestNew_PanicsOnBadDeclaration(t *testing.T) {
	tests := []struct {
		name   string
		values []access
	}{
		{"empty value", []access{""}},
		{"duplicate", []access{accessEnabled, accessEnabled}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("New did not panic")
				}
			}()
			enum.New("Bad", tt.values...)
		})
	}
}
