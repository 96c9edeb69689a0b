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
package catalog_test

import (
	"testing"

	"dirpx.dev/smapi/smcore/model/catalog"
	"dirpx.dev/smapi/smcore/model/coderepo"
	"dirpx.dev/smapi/smcore/model/common"
	"dirpx.dev/smapi/smcore/model/labeling"
	"dirpx.dev/smapi/smcore/model/notebook"
	"dirpx.dev/smapi/smcore/model/training"
	"dirpx.dev/smapi/smcore/schema"
	"gopkg.in/yaml.v3"
)

func TestRegistry(t *testing.T) {
	r, err := catalog.Registry()
	if err != nil {
		t.Fatalf("Registry() error = %v", err)
	}
	again, _ := catalog.Registry()
	if again != r {
		t.Error("Registry() built twice")
	}
	if got := r.Version().String(); got != catalog.Version {
		t.Errorf("Version() = %s, want %s", got, catalog.Version)
	}

	for _, name := range []string{
		"common.Tag",
		"training.CreateTrainingJobRequest",
		"notebook.DescribeNotebookInstanceResult",
		"labeling.USD",
		"coderepo.ListCodeRepositoriesResult",
	} {
		if _, ok := r.Lookup(name); !ok {
			t.Errorf("Lookup(%q) failed", name)
		}
	}

	want := len(common.Schemas()) + len(training.Schemas()) + len(notebook.Schemas()) +
		len(labeling.Schemas()) + len(coderepo.Schemas())
	if got := len(r.Names()); got != want {
		t.Errorf("len(Names()) = %d, want %d", got, want)
	}
}

func TestRegistry_NameOf(t *testing.T) {
	r := catalog.MustRegistry()

	tests := []struct {
		shape interface{ Schema() *schema.Shape }
		want  string
	}{
		{common.NewTag(), "common.Tag"},
		{training.NewResourceConfig(), "training.ResourceConfig"},
		{notebook.NewUpdateNotebookInstanceResult(), "notebook.UpdateNotebookInstanceResult"},
		{coderepo.NewGitConfig(), "coderepo.GitConfig"},
	}
	for _, tt := range tests {
		got, ok := r.NameOf(tt.shape.Schema())
		if !ok || got != tt.want {
			t.Errorf("NameOf() = %q, %v, want %q", got, ok, tt.want)
		}
	}
}

func TestRegistry_Export(t *testing.T) {
	data, err := yaml.Marshal(catalog.MustRegistry())
	if err != nil {
		t.Fatalf("yaml.Marshal error = %v", err)
	}

	var loaded schema.Registry
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("yaml.Unmarshal error = %v", err)
	}
	if err := loaded.Resolve(); err != nil {
		t.Errorf("Resolve() of the exported catalog = %v", err)
	}

	s, ok := loaded.Lookup("notebook.CreateNotebookInstanceRequest")
	if !ok || !s.Sensitive("KmsKeyId") {
		t.Error("exported table lost the sensitive marker")
	}
}

func TestPackages(t *testing.T) {
	if got := len(catalog.Packages()); got != 5 {
		t.Errorf("len(Packages()) = %d, want 5", got)
	}
}
