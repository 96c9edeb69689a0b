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

package schema_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"dirpx.dev/smapi/smcore/errors"
	"dirpx.dev/smapi/smcore/schema"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var tagSchema = schema.MustShape("Tag",
	schema.String("Key", schema.Length(1, 128)),
	schema.String("Value", schema.Length(0, 256)),
)

var configSchema = schema.MustShape("NotebookConfig",
	schema.String("Name", schema.MaxLength(63), schema.Pattern(`[a-zA-Z0-9](-*[a-zA-Z0-9])*`)),
	schema.String("RootAccess", schema.OneOf("RootAccess", "Enabled", "Disabled")),
	schema.String("KmsKeyId", schema.MaxLength(2048), schema.Sensitive()),
	schema.Integer("VolumeSizeInGB", schema.Range(5, 16384)),
	schema.Long("MaxRuntimeInSeconds", schema.Min(1)),
	schema.Double("Value", schema.Max(100)),
	schema.List("SecurityGroupIds", schema.KindString, schema.MaxItems(2), schema.MaxLength(32)),
	schema.StructureList("Tags", "Tag", schema.MaxItems(50)),
	schema.Structure("Primary", "Tag"),
)

type tag struct {
	key, value *string
}

func (t *tag) Validate() error {
	return tagSchema.Validator().
		String("Key", t.key).
		String("Value", t.value).
		Err()
}

func ptr[T any](v T) *T { return &v }

func violations(err error) []string {
	var out []string
	for _, e := range multierr.Errors(err) {
		out = append(out, e.Error())
	}
	return out
}

func TestNewShape_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		fields  []schema.Field
		wantErr string
	}{
		{"duplicate field", []schema.Field{schema.String("A"), schema.Integer("A")}, "declares field A twice"},
		{"bad pattern", []schema.Field{schema.String("A", schema.Pattern("(["))}, "field A"},
		{"unknown kind", []schema.Field{{Name: "A", Kind: "blob"}}, `unknown kind "blob"`},
		{"list without elem", []schema.Field{{Name: "A", Kind: schema.KindList}}, "unknown element kind"},
		{"structure without shape", []schema.Field{{Name: "A", Kind: schema.KindStructure}}, "structure without shape name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.NewShape("Bad", tt.fields...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("NewShape error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestShape_Lookup(t *testing.T) {
	want := []string{"Name", "RootAccess", "KmsKeyId", "VolumeSizeInGB", "MaxRuntimeInSeconds", "Value", "SecurityGroupIds", "Tags", "Primary"}
	if diff := cmp.Diff(want, configSchema.FieldNames()); diff != "" {
		t.Errorf("FieldNames mismatch (-want +got):\n%s", diff)
	}
	if !configSchema.Sensitive("KmsKeyId") || configSchema.Sensitive("Name") || configSchema.Sensitive("Missing") {
		t.Error("Sensitive flags wrong")
	}
	f, ok := configSchema.Field("RootAccess")
	if !ok || f.Enum != "RootAccess" || !f.Allows("Enabled") || f.Allows("enabled") {
		t.Errorf("RootAccess field = %+v", f)
	}
}

func TestField_PatternIsAnchored(t *testing.T) {
	f, _ := configSchema.Field("Name")
	tests := []struct {
		input string
		want  bool
	}{
		{"my-notebook", true},
		{"a--b", true},
		{"-leading", false},
		{"trailing-", false},
		{"bad name", false},
	}
	for _, tt := range tests {
		if got := f.Matches(tt.input); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidator_Scalars(t *testing.T) {
	tests := []struct {
		name string
		run  func(v *schema.Validator) *schema.Validator
		want []string
	}{
		{
			name: "unset fields pass",
			run: func(v *schema.Validator) *schema.Validator {
				return v.String("Name", nil).Int32("VolumeSizeInGB", nil).Strings("SecurityGroupIds", nil)
			},
		},
		{
			name: "valid values pass",
			run: func(v *schema.Validator) *schema.Validator {
				return v.String("Name", ptr("nb-1")).
					String("RootAccess", ptr("Disabled")).
					Int32("VolumeSizeInGB", ptr(int32(5))).
					Int64("MaxRuntimeInSeconds", ptr(int64(3600))).
					Float64("Value", ptr(99.5))
			},
		},
		{
			name: "too long and pattern",
			run: func(v *schema.Validator) *schema.Validator {
				return v.String("Name", ptr(strings.Repeat("a", 63)+"_"))
			},
			want: []string{
				"smapi: invalid NotebookConfig.Name: length 64 exceeds maximum 63",
				"smapi: invalid NotebookConfig.Name: does not match pattern [a-zA-Z0-9](-*[a-zA-Z0-9])*",
			},
		},
		{
			name: "length counts characters",
			run: func(v *schema.Validator) *schema.Validator {
				return v.String("Name", ptr(strings.Repeat("é", 63)))
			},
			want: []string{
				"smapi: invalid NotebookConfig.Name: does not match pattern [a-zA-Z0-9](-*[a-zA-Z0-9])*",
			},
		},
		{
			name: "enum value",
			run: func(v *schema.Validator) *schema.Validator {
				return v.String("RootAccess", ptr("Sometimes"))
			},
			want: []string{`smapi: invalid NotebookConfig.RootAccess: "Sometimes" is not one of [Enabled, Disabled]`},
		},
		{
			name: "numeric bounds",
			run: func(v *schema.Validator) *schema.Validator {
				return v.Int32("VolumeSizeInGB", ptr(int32(4))).
					Int64("MaxRuntimeInSeconds", ptr(int64(0))).
					Float64("Value", ptr(100.25))
			},
			want: []string{
				"smapi: invalid NotebookConfig.VolumeSizeInGB: value 4 is below minimum 5",
				"smapi: invalid NotebookConfig.MaxRuntimeInSeconds: value 0 is below minimum 1",
				"smapi: invalid NotebookConfig.Value: value 100.25 exceeds maximum 100",
			},
		},
		{
			name: "list size and elements",
			run: func(v *schema.Validator) *schema.Validator {
				return v.Strings("SecurityGroupIds", []string{"sg-1", strings.Repeat("x", 33), "sg-3"})
			},
			want: []string{
				"smapi: invalid NotebookConfig.SecurityGroupIds: has 3 items, maximum is 2",
				"smapi: invalid NotebookConfig.SecurityGroupIds[1]: length 33 exceeds maximum 32",
			},
		},
		{
			name: "undeclared field",
			run: func(v *schema.Validator) *schema.Validator {
				return v.String("Nope", ptr("x"))
			},
			want: []string{"smapi: invalid NotebookConfig.Nope: is not declared in the shape schema"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(configSchema.Validator()).Err()
			if diff := cmp.Diff(tt.want, violations(err)); diff != "" {
				t.Errorf("violations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidator_Nested(t *testing.T) {
	v := configSchema.Validator()
	schema.Nested(v, "Primary", &tag{key: ptr("")})
	schema.NestedList(v, "Tags", []*tag{
		{key: ptr("ok")},
		nil,
		{key: ptr("k"), value: ptr(strings.Repeat("v", 257))},
	})
	schema.Nested[tag](v, "Primary", nil)

	want := []string{
		"smapi: invalid NotebookConfig.Primary.Key: length 0 is below minimum 1",
		"smapi: invalid NotebookConfig.Tags[2].Value: length 257 exceeds maximum 256",
	}
	err := v.Err()
	if diff := cmp.Diff(want, violations(err)); diff != "" {
		t.Errorf("violations mismatch (-want +got):\n%s", diff)
	}

	var ve *errors.ValidationError
	if !stderrors.As(err, &ve) {
		t.Fatalf("error %T does not carry *ValidationError", err)
	}
	if ve.Path() != "NotebookConfig.Primary.Key" || ve.Value != "" {
		t.Errorf("first violation = %+v", ve)
	}
}

func TestRegistry(t *testing.T) {
	r, err := schema.NewRegistry("1.2.0")
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if err := r.Include("common", "1.0.0", tagSchema); err != nil {
		t.Fatalf("Include(common): %v", err)
	}
	if err := r.Include("notebook", "1.2.0", configSchema); err != nil {
		t.Fatalf("Include(notebook): %v", err)
	}

	// Unqualified references resolve inside the referring package.
	if err := r.Resolve(); err == nil || !strings.Contains(err.Error(), "notebook.NotebookConfig.Tags references unknown shape notebook.Tag") {
		t.Errorf("Resolve error = %v", err)
	}
	if err := r.Include("notebook", "1.1.0", tagSchema); err != nil {
		t.Fatalf("Include(notebook Tag): %v", err)
	}
	if err := r.Resolve(); err != nil {
		t.Errorf("Resolve after include: %v", err)
	}

	if diff := cmp.Diff([]string{"common.Tag", "notebook.NotebookConfig", "notebook.Tag"}, r.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
	if s, ok := r.Lookup("common.Tag"); !ok || s != tagSchema {
		t.Error("Lookup(common.Tag) failed")
	}
	if name, ok := r.NameOf(tagSchema); !ok || name != "common.Tag" {
		t.Errorf("NameOf(Tag) = %q, %v", name, ok)
	}
	if _, ok := r.NameOf(schema.MustShape("Other")); ok {
		t.Error("NameOf found an unregistered table")
	}

	for _, tt := range []struct{ pkg, version, wantErr string }{
		{"old", "0.9.0", "not compatible"},
		{"new", "2.0.0", "not compatible"},
		{"newer", "1.3.0", "not compatible"},
		{"bad", "one", "version"},
		{"common", "1.0.0", "registered twice"},
	} {
		err := r.Include(tt.pkg, tt.version, tagSchema)
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("Include(%s, %s) error = %v, want %q", tt.pkg, tt.version, err, tt.wantErr)
		}
	}

	if _, err := schema.NewRegistry("v1"); err == nil {
		t.Error("NewRegistry accepted a non-semver version")
	}
}

func TestRegistry_YAMLRoundTrip(t *testing.T) {
	r, _ := schema.NewRegistry("1.0.0")
	if err := r.Include("notebook", "1.0.0", tagSchema, configSchema); err != nil {
		t.Fatalf("Include: %v", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "version: 1.0.0") || !strings.Contains(string(data), "maxLength: 63") {
		t.Errorf("unexpected export:\n%s", data)
	}

	var back schema.Registry
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Version().String() != "1.0.0" {
		t.Errorf("Version = %s", back.Version())
	}
	s, ok := back.Lookup("notebook.NotebookConfig")
	if !ok {
		t.Fatal("NotebookConfig missing after round trip")
	}
	f, _ := s.Field("Name")
	if f.Matches("bad name") {
		t.Error("pattern not recompiled after round trip")
	}
	if !s.Sensitive("KmsKeyId") {
		t.Error("sensitivity lost after round trip")
	}

	unqualified := "version: 1.0.0\nshapes:\n  Tag: {name: Tag, fields: [{name: Key, kind: string}]}\n"
	var bad schema.Registry
	err = yaml.Unmarshal([]byte(unqualified), &bad)
	if err == nil || !strings.Contains(err.Error(), "shape key Tag is not package-qualified") {
		t.Errorf("Unmarshal(unqualified key) = %v", err)
	}
	if err := bad.Resolve(); err != nil {
		t.Errorf("Resolve() on an empty registry = %v", err)
	}
}
