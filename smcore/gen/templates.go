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

package gen

import "text/template"

const header = `/*
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

// Code generated by shapegen. DO NOT EDIT.
`

var funcs = template.FuncMap{
	"comment": comment,
}

var docTemplate = template.Must(template.New("doc").Funcs(funcs).Parse(header + `
{{ comment .Doc "" -}}
package {{ .Package }}
`))

var schemaTemplate = template.Must(template.New("schema").Parse(header + `
package {{ .Package }}

import "dirpx.dev/smapi/smcore/schema"

// SchemaVersion is the version of the definitions this package was
// generated from.
const SchemaVersion = "{{ .Version }}"

// Schemas returns the constraint tables of every shape in this package, in
// definition order.
func Schemas() []*schema.Shape {
	return []*schema.Shape{
{{- range .Vars }}
		{{ . }},
{{- end }}
	}
}
`))

var enumTemplate = template.Must(template.New("enum").Parse(header + `
package {{ .Package }}

import "dirpx.dev/smapi/smcore/enum"

{{ .Doc -}}
type {{ .Name }} string

const (
{{- range .Consts }}
	{{ .Name }} {{ $.Name }} = {{ .Value }}
{{- end }}
)

var {{ .Table }} = enum.New("{{ .Name }}",
{{- range .Consts }}
	{{ .Name }},
{{- end }}
)

// {{ .Name }}FromValue returns the {{ .Name }} whose wire value is exactly v.
// It fails with an *errors.EnumError when v is empty or unknown.
func {{ .Name }}FromValue(v string) ({{ .Name }}, error) {
	return {{ .Table }}.FromValue(v)
}

// {{ .Name }}FromPointer is {{ .Name }}FromValue for an optional field; nil is
// treated as empty.
func {{ .Name }}FromPointer(v *string) ({{ .Name }}, error) {
	return {{ .Table }}.FromPointer(v)
}

// {{ .Name }}Values returns every {{ .Name }} in declaration order.
func {{ .Name }}Values() []{{ .Name }} {
	return {{ .Table }}.Values()
}

// {{ .Name }}Strings returns every {{ .Name }} wire value in declaration order.
func {{ .Name }}Strings() []string {
	return {{ .Table }}.Strings()
}

// String returns the wire value.
func (e {{ .Name }}) String() string {
	return string(e)
}

// Valid reports whether e is one of the declared values.
func (e {{ .Name }}) Valid() bool {
	return {{ .Table }}.Contains(string(e))
}

// MarshalText implements encoding.TextMarshaler. Undeclared values fail.
func (e {{ .Name }}) MarshalText() ([]byte, error) {
	return {{ .Table }}.MarshalText(e)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *{{ .Name }}) UnmarshalText(text []byte) error {
	v, err := {{ .Table }}.FromValue(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
`))

var shapeTemplate = template.Must(template.New("shape").Parse(header + `
package {{ .Package }}

import (
	"encoding/json"
{{- range .Imports }}{{ if eq . "time" }}
	"time"
{{- end }}{{ end }}

	"dirpx.dev/smapi/smcore/errors"
	"dirpx.dev/smapi/smcore/model"
{{- range .Imports }}{{ if ne . "time" }}
	"{{ . }}"
{{- end }}{{ end }}
	"dirpx.dev/smapi/smcore/schema"
	"dirpx.dev/smapi/smcore/shape"
	"gopkg.in/yaml.v3"
)

{{ .Doc -}}
{{ if .Fields -}}
type {{ .Name }} struct {
{{- range .Fields }}
	{{ .Ident }} {{ .Storage }}
{{- end }}
}
{{- else -}}
type {{ .Name }} struct{}
{{- end }}

var _ model.Model = (*{{ .Name }})(nil)
{{ if .Fields }}
var {{ .Var }} = schema.MustShape("{{ .Name }}",
{{- range .Fields }}
	{{ .Schema }},
{{- end }}
)
{{- else }}
var {{ .Var }} = schema.MustShape("{{ .Name }}")
{{- end }}

// New{{ .Name }} returns an empty {{ .Name }}.
func New{{ .Name }}() *{{ .Name }} {
	return &{{ .Name }}{}
}
{{ range .Fields }}
// {{ .Name }} returns the {{ .Name }} field, or nil when it is unset.
{{- if .Doc }}
//
{{ .Doc }}
{{- end }}
func (s *{{ $.Name }}) {{ .Name }}() {{ .Storage }} {
	return s.{{ .Ident }}
}
{{ if .EnumType }}
// {{ .Name }}Enum resolves {{ .Name }} to a {{ .EnumType }}.
func (s *{{ $.Name }}) {{ .Name }}Enum() ({{ .EnumType }}, error) {
	return {{ .EnumFrom }}
}
{{ end }}
// Set{{ .Name }} sets {{ .Name }}. A nil value clears the field.
func (s *{{ $.Name }}) Set{{ .Name }}(v {{ .SetType }}) {
	{{ .SetBody }}
}

// With{{ .Name }} sets {{ .Name }} and returns s.
{{- if .ElemType }} The list is replaced.{{ end }}
func (s *{{ $.Name }}) With{{ .Name }}(v {{ .WithType }}) *{{ $.Name }} {
	{{ .WithBody }}
	return s
}
{{ if .ElemType }}
// Append{{ .Name }} appends to {{ .Name }}, creating the list when it is
// unset, and returns s.
func (s *{{ $.Name }}) Append{{ .Name }}(v ...{{ .ElemType }}) *{{ $.Name }} {
	s.{{ .Ident }} = shape.AppendSlice(s.{{ .Ident }}, v...)
	return s
}
{{ end }}
{{- end }}
// TypeName returns "{{ .Name }}".
func (s *{{ .Name }}) TypeName() string {
	return "{{ .Name }}"
}

// Schema returns the constraint table of {{ .Name }}.
func (s *{{ .Name }}) Schema() *schema.Shape {
	return {{ .Var }}
}

// IsZero reports whether no field is set.
func (s *{{ .Name }}) IsZero() bool {
{{- if .Fields }}
	return s == nil || ({{ range $i, $f := .Fields }}{{ if $i }} &&
		{{ end }}s.{{ $f.Ident }} == nil{{ end }})
{{- else }}
	return true
{{- end }}
}

// Validate checks the set fields against the constraint table.
func (s *{{ .Name }}) Validate() error {
	if s == nil {
		return nil
	}
	v := {{ .Var }}.Validator()
{{- range .Fields }}{{ if .Check }}
	{{ .Check }}
{{- end }}{{ end }}
	return v.Err()
}

// Equal reports whether other is a *{{ .Name }} with equal fields.
func (s *{{ .Name }}) Equal(other any) bool {
	o, ok := other.(*{{ .Name }})
	if !ok || s == nil || o == nil {
		return false
	}
{{- if .Fields }}
	return {{ range $i, $f := .Fields }}{{ if $i }} &&
		{{ end }}{{ $f.Equal }}{{ end }}
{{- else }}
	return true
{{- end }}
}

// HashCode returns a hash code consistent with Equal.
func (s *{{ .Name }}) HashCode() int32 {
	h := shape.NewHash()
{{- range .Fields }}
	{{ .Hash }}
{{- end }}
	return h.Sum()
}

// String renders every set field. It includes sensitive values; log
// Redacted instead.
func (s *{{ .Name }}) String() string {
	return s.render(false)
}

// Redacted renders every set field with sensitive values hidden.
func (s *{{ .Name }}) Redacted() string {
	return s.render(true)
}

func (s *{{ .Name }}) render(redact bool) string {
	p := shape.NewPrinter(redact)
{{- range .Fields }}
	{{ .Print }}
{{- end }}
	return p.String()
}

// Clone returns a deep copy of s.
func (s *{{ .Name }}) Clone() *{{ .Name }} {
	if s == nil {
		return nil
	}
	c := &{{ .Name }}{}
{{- range .Fields }}
	{{ .Clone }}
{{- end }}
	return c
}

{{ if .Fields -}}
type {{ .Wire }} struct {
{{- range .Fields }}
	{{ .Name }} {{ .Storage }} ` + "`" + `json:"{{ .Name }},omitzero" yaml:"{{ .Name }},omitempty"` + "`" + `
{{- end }}
}
{{- else -}}
type {{ .Wire }} struct{}
{{- end }}

func (s *{{ .Name }}) wire() *{{ .Wire }} {
	w := &{{ .Wire }}{}
{{- range .Fields }}
	w.{{ .Name }} = s.{{ .Ident }}
{{- end }}
	return w
}

func (s *{{ .Name }}) fromWire(w *{{ .Wire }}) {
{{- range .Fields }}
	s.{{ .Ident }} = w.{{ .Name }}
{{- end }}
}

// MarshalJSON validates s and encodes it with the service element names.
func (s *{{ .Name }}) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(s.wire())
}

// UnmarshalJSON decodes s without validating it.
func (s *{{ .Name }}) UnmarshalJSON(data []byte) error {
	w := &{{ .Wire }}{}
	if err := json.Unmarshal(data, w); err != nil {
		return &errors.UnmarshalError{Type: "{{ .Name }}", Data: data, Reason: err.Error()}
	}
	s.fromWire(w)
	return nil
}

// MarshalYAML validates s and returns its YAML form.
func (s *{{ .Name }}) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.wire(), nil
}

// UnmarshalYAML decodes s without validating it.
func (s *{{ .Name }}) UnmarshalYAML(node *yaml.Node) error {
	w := &{{ .Wire }}{}
	if err := node.Decode(w); err != nil {
		return &errors.UnmarshalError{Type: "{{ .Name }}", Data: []byte(node.Value), Reason: err.Error()}
	}
	s.fromWire(w)
	return nil
}
`))
