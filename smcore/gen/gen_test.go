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

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
version: 1.2.0
package: paint
doc: Package paint is a test package.
enums:
  - name: Color
    values: [red, dark-blue]
shapes:
  - name: Brush
    fields:
      - name: Color
        kind: string
        enum: Color
      - name: Width
        kind: double
        min: 0.5
        max: 10
      - name: Owner
        kind: string
        maxLength: 8
        sensitive: true
      - name: Tags
        kind: list
        elem: string
        maxItems: 3
  - name: Palette
    fields:
      - name: Brushes
        kind: list
        elem: structure
        shape: Brush
  - name: PaintResult
`

func loadSample(t *testing.T) *File {
	t.Helper()
	f, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	return f
}

func TestLowerFirst(t *testing.T) {
	tests := map[string]string{
		"S3Uri":                 "s3Uri",
		"USD":                   "usd",
		"KMSKey":                "kmsKey",
		"NotebookInstanceName":  "notebookInstanceName",
		"Type":                  "type_",
		"Url":                   "url",
		"TenthFractionsOfACent": "tenthFractionsOfACent",
	}
	for in, want := range tests {
		assert.Equal(t, want, lowerFirst(in), in)
	}
}

func TestSnake(t *testing.T) {
	tests := map[string]string{
		"DescribeNotebookInstanceRequest": "describe_notebook_instance_request",
		"USD":                             "usd",
		"GitConfigForUpdate":              "git_config_for_update",
		"S3Uri":                           "s3_uri",
		"HTTPServer":                      "http_server",
	}
	for in, want := range tests {
		assert.Equal(t, want, snake(in), in)
	}
}

func TestEnumConst(t *testing.T) {
	assert.Equal(t, "InstanceTypeMlT2Medium", enumConst("InstanceType", "ml.t2.medium"))
	assert.Equal(t, "ColorDarkBlue", enumConst("Color", "dark-blue"))
	assert.Equal(t, "SortOrderAscending", enumConst("SortOrder", "Ascending"))
}

func TestComment(t *testing.T) {
	assert.Equal(t, "", comment("  ", ""))
	assert.Equal(t, "// Short text.\n", comment("Short text.", ""))

	long := strings.Repeat("word ", 30)
	for _, line := range strings.Split(strings.TrimSuffix(comment(long, "\t"), "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "\t// "), line)
		assert.LessOrEqual(t, len(line), 77)
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := Load(strings.NewReader("version: 1.0.0\npackage: x\ncolour: red\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check(loadSample(t)))

	tests := []struct {
		name   string
		mutate func(f *File)
		want   string
	}{
		{"bad version", func(f *File) { f.Version = "one" }, `version "one"`},
		{"bad package", func(f *File) { f.Package = "Paint" }, `package "Paint" is not a valid package name`},
		{"duplicate type", func(f *File) { f.Shapes[1].Name = "Brush" }, "type Brush declared twice"},
		{"unknown shape", func(f *File) { f.Shapes[1].Fields[0].Shape = "Roller" }, "Palette.Brushes references unknown shape Roller"},
		{"unknown enum", func(f *File) { f.Shapes[0].Fields[0].Enum = "other.Color" }, "Brush.Color references unknown enum other.Color"},
		{"reserved name", func(f *File) { f.Shapes[0].Fields[1].Name = "String" }, "field String collides with a shape method"},
		{"sensitive number", func(f *File) { f.Shapes[0].Fields[1].Sensitive = true }, "only string fields can be sensitive"},
		{"colliding values", func(f *File) { f.Enums[0].Values = append(f.Enums[0].Values, "dark.blue") }, "both map to ColorDarkBlue"},
		{"bad pattern", func(f *File) { f.Shapes[0].Fields[2].Pattern = "(" }, "Owner"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := loadSample(t)
			tt.mutate(f)
			err := Check(f)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCheck_AcrossFiles(t *testing.T) {
	a := loadSample(t)
	b := loadSample(t)
	b.Package = "canvas"
	b.Shapes[1].Fields[0].Shape = "paint.Brush"
	require.NoError(t, Check(a, b))

	b.Version = "2.0.0"
	err := Check(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version 2.0.0 has major 2")

	b.Version = a.Version
	b.Package = "paint"
	err = Check(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package paint already defined")
}

func TestRender(t *testing.T) {
	out, err := Render(loadSample(t))
	require.NoError(t, err)

	files := map[string]string{}
	var names []string
	for _, o := range out {
		files[o.Name] = string(o.Source)
		names = append(names, o.Name)
	}
	assert.Equal(t, []string{"brush.go", "color.go", "doc.go", "paint_result.go", "palette.go", "schema.go"}, names)

	for name, src := range files {
		assert.True(t, strings.HasPrefix(src, "/*\n   Copyright 2025 The DIRPX Authors"), name)
		assert.Contains(t, src, "// Code generated by shapegen. DO NOT EDIT.", name)
	}

	assert.Contains(t, files["schema.go"], `const SchemaVersion = "1.2.0"`)
	assert.Contains(t, files["color.go"], `ColorDarkBlue Color = "dark-blue"`)

	brush := files["brush.go"]
	assert.Contains(t, brush, "func (s *Brush) WithColor(v Color) *Brush {")
	assert.Contains(t, brush, "func (s *Brush) ColorEnum() (Color, error) {")
	assert.Contains(t, brush, "func (s *Brush) AppendTags(v ...string) *Brush {")
	assert.Contains(t, brush, `schema.Double("Width", schema.Range(0.5, 10))`)
	assert.Contains(t, brush, `schema.String("Owner", schema.MaxLength(8), schema.Sensitive())`)
	assert.Contains(t, brush, `p.Secret("Owner", s.owner)`)

	assert.Contains(t, files["palette.go"], "brushes []*Brush")
	assert.Contains(t, files["palette.go"], `schema.NestedList(v, "Brushes", s.brushes)`)

	empty := files["paint_result.go"]
	assert.Contains(t, empty, "// PaintResult is the output of the Paint operation.\ntype PaintResult struct{}")
	assert.Contains(t, empty, `var paintResultSchema = schema.MustShape("PaintResult")`)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "paint", "helpers.go")
	require.NoError(t, os.MkdirAll(filepath.Dir(keep), 0o755))
	require.NoError(t, os.WriteFile(keep, []byte("package paint\n"), 0o644))

	written, err := Write(loadSample(t), dir)
	require.NoError(t, err)
	assert.Len(t, written, 6)
	assert.FileExists(t, filepath.Join(dir, "paint", "brush.go"))
	assert.FileExists(t, keep)
}

// TestGenerated fails when a definition under api/ changed without the
// shape packages being regenerated.
func TestGenerated(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "api", "sagemaker", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	var files []*File
	for _, p := range paths {
		f, err := LoadFile(p)
		require.NoError(t, err)
		files = append(files, f)
	}
	require.NoError(t, Check(files...))

	for _, f := range files {
		out, err := Render(f)
		require.NoError(t, err)
		for _, o := range out {
			path := filepath.Join("..", "model", f.Package, o.Name)
			have, err := os.ReadFile(path)
			require.NoError(t, err, "missing generated file; run shapegen")
			assert.Equal(t, string(o.Source), string(have), "%s is stale; run shapegen", path)
		}
	}
}
