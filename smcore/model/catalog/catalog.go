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
// Package catalog registers the constraint tables of every generated shape
// package in one schema.Registry.
//
//	checker := boundary.New(
//	    boundary.WithLogger(logger),
//	    boundary.WithRegistry(catalog.MustRegistry()),
//	)
//
//go:generate go run ../../../cmd/shapegen -out .. ../../../api/sagemaker
package catalog

import (
	"sync"

	"dirpx.dev/smapi/smcore/model/coderepo"
	"dirpx.dev/smapi/smcore/model/common"
	"dirpx.dev/smapi/smcore/model/labeling"
	"dirpx.dev/smapi/smcore/model/notebook"
	"dirpx.dev/smapi/smcore/model/training"
	"dirpx.dev/smapi/smcore/schema"
	"go.uber.org/multierr"
)

// Version is the schema version of the catalog. Packages generated for a
// newer minor version, or another major version, are refused.
const Version = "1.0.0"

type pkg struct {
	name    string
	version string
	shapes  func() []*schema.Shape
}

var packages = []pkg{
	{"common", common.SchemaVersion, common.Schemas},
	{"training", training.SchemaVersion, training.Schemas},
	{"notebook", notebook.SchemaVersion, notebook.Schemas},
	{"labeling", labeling.SchemaVersion, labeling.Schemas},
	{"coderepo", coderepo.SchemaVersion, coderepo.Schemas},
}

// Packages returns the names of the registered packages.
func Packages() []string {
	out := make([]string, len(packages))
	for i, p := range packages {
		out[i] = p.name
	}
	return out
}

// Registry returns the shared registry, building it on first use. The
// result is read-only and safe for concurrent use.
var Registry = sync.OnceValues(build)

// MustRegistry is Registry for package initialisation; it panics when the
// generated packages do not fit together.
func MustRegistry() *schema.Registry {
	r, err := Registry()
	if err != nil {
		panic(err)
	}
	return r
}

func build() (*schema.Registry, error) {
	r, err := schema.NewRegistry(Version)
	if err != nil {
		return nil, err
	}
	var errs error
	for _, p := range packages {
		errs = multierr.Append(errs, r.Include(p.name, p.version, p.shapes()...))
	}
	if errs != nil {
		return nil, errs
	}
	if err := r.Resolve(); err != nil {
		return nil, err
	}
	return r, nil
}
