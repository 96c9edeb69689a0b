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

// Package gen turns shape definition files into the Go shape packages under
// smcore/model.
//
// A definition file is YAML and describes one output package:
//
//	version: 1.0.0
//	package: training
//	doc: Package training holds the training job shapes.
//	enums:
//	  - name: TrainingJobStatus
//	    values: [InProgress, Completed, Failed, Stopping, Stopped]
//	shapes:
//	  - name: CheckpointConfig
//	    fields:
//	      - name: S3Uri
//	        kind: string
//	        maxLength: 1024
//	        pattern: '^(https|s3)://([^/]+)/?(.*)$'
//
// Field entries use the schema.Field keys, plus doc. Shape and enum
// references may be qualified with another definition's package
// ("common.Tag"); Check resolves them across every loaded file.
package gen

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"dirpx.dev/rxmerr"
	"dirpx.dev/smapi/smcore/schema"
	"github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"
)

// File is one definition file.
type File struct {
	Version string  `yaml:"version"`
	Package string  `yaml:"package"`
	Doc     string  `yaml:"doc"`
	Enums   []Enum  `yaml:"enums"`
	Shapes  []Shape `yaml:"shapes"`

	// Path is where the file was loaded from, for messages.
	Path string `yaml:"-"`
}

// Enum defines a closed set of wire values.
type Enum struct {
	Name   string   `yaml:"name"`
	Doc    string   `yaml:"doc"`
	Values []string `yaml:"values"`
}

// Shape defines one request, response or nested structure.
type Shape struct {
	Name   string  `yaml:"name"`
	Doc    string  `yaml:"doc"`
	Fields []Field `yaml:"fields"`
}

// Field is a schema.Field with documentation.
type Field struct {
	schema.Field `yaml:",inline"`

	Doc string `yaml:"doc"`
}

var (
	packageName = regexp.MustCompile(`^[a-z][a-z0-9]*$`)
	exportName  = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
)

// reserved holds the method names every generated shape defines. A field
// with one of these names would collide with its getter.
var reserved = map[string]bool{
	"Equal": true, "HashCode": true, "String": true, "Redacted": true,
	"TypeName": true, "IsZero": true, "Validate": true, "Schema": true,
	"Clone": true, "MarshalJSON": true, "UnmarshalJSON": true,
	"MarshalYAML": true, "UnmarshalYAML": true,
}

// Load decodes one definition file. Unknown keys are rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("gen: decode definitions: %w", err)
	}
	return &f, nil
}

// LoadFile loads the definition file at path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gen: %w", err)
	}
	defer fh.Close()

	f, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// SchemaVersion returns the parsed definition version.
func (f *File) SchemaVersion() (semver.Version, error) {
	return semver.Parse(f.Version)
}

func (f *File) source() string {
	if f.Path != "" {
		return f.Path
	}
	return f.Package
}

// Check validates a set of definition files: every file on its own, then
// the references between them. It reports every problem found.
func Check(files ...*File) error {
	c := rxmerr.NewCollector()

	byPackage := make(map[string]*File, len(files))
	for _, f := range files {
		if prev, dup := byPackage[f.Package]; dup {
			c.Append(fmt.Errorf("%s: package %s already defined by %s", f.source(), f.Package, prev.source()))
			continue
		}
		byPackage[f.Package] = f
	}

	var major *uint64
	for _, f := range files {
		for _, err := range f.check() {
			c.Append(fmt.Errorf("%s: %w", f.source(), err))
		}
		if v, err := f.SchemaVersion(); err == nil {
			if major == nil {
				major = &v.Major
			} else if v.Major != *major {
				c.Append(fmt.Errorf("%s: version %s has major %d, other definitions use %d", f.source(), f.Version, v.Major, *major))
			}
		}
	}

	for _, f := range files {
		for _, s := range f.Shapes {
			for _, fd := range s.Fields {
				if fd.Shape != "" && !resolves(byPackage, f, fd.Shape, (*File).hasShape) {
					c.Append(fmt.Errorf("%s: %s.%s references unknown shape %s", f.source(), s.Name, fd.Name, fd.Shape))
				}
				if fd.Enum != "" && !resolves(byPackage, f, fd.Enum, (*File).hasEnum) {
					c.Append(fmt.Errorf("%s: %s.%s references unknown enum %s", f.source(), s.Name, fd.Name, fd.Enum))
				}
			}
		}
	}

	return c.Err()
}

func resolves(byPackage map[string]*File, from *File, ref string, has func(*File, string) bool) bool {
	pkg, name, ok := strings.Cut(ref, ".")
	if !ok {
		return has(from, ref)
	}
	target, found := byPackage[pkg]
	return found && has(target, name)
}

func (f *File) hasShape(name string) bool {
	for _, s := range f.Shapes {
		if s.Name == name {
			return true
		}
	}
	return false
}

func (f *File) hasEnum(name string) bool {
	for _, e := range f.Enums {
		if e.Name == name {
			return true
		}
	}
	return false
}

func (f *File) check() []error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if _, err := f.SchemaVersion(); err != nil {
		add("version %q: %v", f.Version, err)
	}
	if !packageName.MatchString(f.Package) {
		add("package %q is not a valid package name", f.Package)
	}

	types := make(map[string]bool)
	for _, e := range f.Enums {
		if !exportName.MatchString(e.Name) {
			add("enum %q is not an exported name", e.Name)
		}
		if types[e.Name] {
			add("type %s declared twice", e.Name)
		}
		types[e.Name] = true
		if len(e.Values) == 0 {
			add("enum %s has no values", e.Name)
		}
		consts := make(map[string]string, len(e.Values))
		for _, v := range e.Values {
			if v == "" {
				add("enum %s has an empty value", e.Name)
				continue
			}
			id := enumConst(e.Name, v)
			if prev, dup := consts[id]; dup {
				add("enum %s values %q and %q both map to %s", e.Name, prev, v, id)
			}
			consts[id] = v
		}
	}

	for _, s := range f.Shapes {
		if !exportName.MatchString(s.Name) {
			add("shape %q is not an exported name", s.Name)
		}
		if types[s.Name] {
			add("type %s declared twice", s.Name)
		}
		types[s.Name] = true

		fields := make([]schema.Field, len(s.Fields))
		for i, fd := range s.Fields {
			fields[i] = fd.Field
			if !exportName.MatchString(fd.Name) {
				add("%s: field %q is not an exported name", s.Name, fd.Name)
			}
			if reserved[fd.Name] {
				add("%s: field %s collides with a shape method", s.Name, fd.Name)
			}
			if fd.Sensitive && fd.Kind != schema.KindString {
				add("%s.%s: only string fields can be sensitive", s.Name, fd.Name)
			}
			if strings.Contains(fd.Pattern, "`") {
				add("%s.%s: pattern contains a backquote", s.Name, fd.Name)
			}
			if fd.Kind == schema.KindList && fd.Elem != schema.KindString && fd.Elem != schema.KindStructure {
				add("%s.%s: lists of %s are not supported", s.Name, fd.Name, fd.Elem)
			}
			if fd.Enum != "" && fd.Kind != schema.KindString && fd.Elem != schema.KindString {
				add("%s.%s: enum %s on a %s field", s.Name, fd.Name, fd.Enum, fd.Kind)
			}
			if fd.Enum != "" && len(fd.Values) > 0 {
				add("%s.%s: values are taken from enum %s", s.Name, fd.Name, fd.Enum)
			}
		}
		if _, err := schema.NewShape(s.Name, fields...); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}
