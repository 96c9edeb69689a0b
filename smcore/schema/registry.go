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
	"sort"
	"strings"

	"github.com/blang/semver/v4"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Registry is a versioned collection of shape tables, typically the tables
// of every generated package, keyed by qualified name ("notebook.Tag").
//
// A Registry is built with NewRegistry and Include and is read-only once
// handed out; it is then safe for concurrent use.
type Registry struct {
	version semver.Version
	shapes  map[string]*Shape
	names   map[*Shape]string
}

// NewRegistry returns an empty registry for schema version v.
func NewRegistry(v string) (*Registry, error) {
	ver, err := semver.Parse(v)
	if err != nil {
		return nil, fmt.Errorf("schema: registry version %q: %w", v, err)
	}
	return &Registry{
		version: ver,
		shapes:  make(map[string]*Shape),
		names:   make(map[*Shape]string),
	}, nil
}

// Version returns the registry schema version.
func (r *Registry) Version() semver.Version {
	return r.version
}

// Include adds the tables of package pkg, generated for schema version v.
//
// Tables from a different major version are refused, as are tables newer
// than the registry itself, and shape names already present.
func (r *Registry) Include(pkg, v string, shapes ...*Shape) error {
	ver, err := semver.Parse(v)
	if err != nil {
		return fmt.Errorf("schema: package %s version %q: %w", pkg, v, err)
	}
	if ver.Major != r.version.Major || ver.GT(r.version) {
		return fmt.Errorf("schema: package %s version %s is not compatible with registry version %s", pkg, ver, r.version)
	}

	var errs error
	for _, s := range shapes {
		key := pkg + "." + s.Name
		if _, dup := r.shapes[key]; dup {
			errs = multierr.Append(errs, fmt.Errorf("schema: shape %s registered twice", key))
			continue
		}
		r.shapes[key] = s
		if _, ok := r.names[s]; !ok {
			r.names[s] = key
		}
	}
	return errs
}

// Lookup returns the table registered under a qualified name.
func (r *Registry) Lookup(name string) (*Shape, bool) {
	s, ok := r.shapes[name]
	return s, ok
}

// NameOf returns the qualified name a table was first registered under.
func (r *Registry) NameOf(s *Shape) (string, bool) {
	name, ok := r.names[s]
	return name, ok
}

// Names returns the qualified shape names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Resolve checks that every nested shape reference points at a registered
// table. References without a package qualifier resolve within the package
// of the referring shape.
func (r *Registry) Resolve() error {
	var errs error
	for _, name := range r.Names() {
		pkg, _, ok := strings.Cut(name, ".")
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("schema: shape key %s is not package-qualified", name))
			continue
		}
		for _, f := range r.shapes[name].Fields {
			if f.Shape == "" {
				continue
			}
			ref := f.Shape
			if !strings.Contains(ref, ".") {
				ref = pkg + "." + ref
			}
			if _, ok := r.shapes[ref]; !ok {
				errs = multierr.Append(errs, fmt.Errorf("schema: %s.%s references unknown shape %s", name, f.Name, ref))
			}
		}
	}
	return errs
}

type registryDoc struct {
	Version string            `yaml:"version"`
	Shapes  map[string]*Shape `yaml:"shapes"`
}

// MarshalYAML exports the registry as a YAML document that external
// validators can load.
func (r *Registry) MarshalYAML() (any, error) {
	return registryDoc{Version: r.version.String(), Shapes: r.shapes}, nil
}

// UnmarshalYAML loads a document written by MarshalYAML, recompiling every
// table.
func (r *Registry) UnmarshalYAML(node *yaml.Node) error {
	var doc registryDoc
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("schema: decode registry: %w", err)
	}
	ver, err := semver.Parse(doc.Version)
	if err != nil {
		return fmt.Errorf("schema: registry version %q: %w", doc.Version, err)
	}
	shapes := make(map[string]*Shape, len(doc.Shapes))
	names := make(map[*Shape]string, len(doc.Shapes))
	for name, s := range doc.Shapes {
		if s == nil {
			return fmt.Errorf("schema: shape %s is empty", name)
		}
		if !strings.Contains(name, ".") {
			return fmt.Errorf("schema: shape key %s is not package-qualified", name)
		}
		compiled, err := NewShape(s.Name, s.Fields...)
		if err != nil {
			return err
		}
		shapes[name] = compiled
		names[compiled] = name
	}
	r.version = ver
	r.shapes = shapes
	r.names = names
	return nil
}
