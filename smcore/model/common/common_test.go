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
package common_test

import (
	"encoding/json"
	"testing"

	"dirpx.dev/smapi/smcore/model/common"
	"dirpx.dev/smapi/smcore/shape"
	"gopkg.in/yaml.v3"
)

func TestTag_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tag     *common.Tag
		wantErr string
	}{
		{"valid", common.NewTag().WithKey("team").WithValue("ml"), ""},
		{"unicode", common.NewTag().WithKey("équipe").WithValue("données"), ""},
		{"empty value", common.NewTag().WithKey("flag").WithValue(""), ""},
		{"unset fields", common.NewTag(), ""},
		{"empty key", common.NewTag().WithKey(""), "smapi: invalid Tag.Key: length 0 is below minimum 1"},
		{"bad char", common.NewTag().WithKey("a*b"), "smapi: invalid Tag.Key: does not match pattern ^([\\p{L}\\p{Z}\\p{N}_.:/=+\\-@]*)$"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tag.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Validate() = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestTag_Equal(t *testing.T) {
	a := common.NewTag().WithKey("k").WithValue("v")
	b := common.NewTag().WithKey("k").WithValue("v")
	c := common.NewTag().WithKey("k")

	if !a.Equal(b) || a.HashCode() != b.HashCode() {
		t.Error("equal tags differ")
	}
	if a.Equal(c) || c.Equal(a) {
		t.Error("tags differing in Value compare equal")
	}
	empty := common.NewTag().WithValue("")
	if empty.Equal(common.NewTag()) {
		t.Error("empty string compares equal to unset")
	}
}

func TestTag_Codecs(t *testing.T) {
	tag := common.NewTag().WithKey("team").WithValue("")

	data, err := json.Marshal(tag)
	if err != nil || string(data) != `{"Key":"team","Value":""}` {
		t.Errorf("MarshalJSON() = %s, %v", data, err)
	}

	out, err := yaml.Marshal(tag)
	if err != nil || string(out) != "Key: team\nValue: \"\"\n" {
		t.Errorf("MarshalYAML() = %q, %v", out, err)
	}

	var back common.Tag
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("UnmarshalYAML error = %v", err)
	}
	if !back.Equal(tag) || shape.Value(back.Key()) != "team" {
		t.Errorf("YAML round trip = %v", &back)
	}
}

func TestSortOrder(t *testing.T) {
	if got := common.SortOrderStrings(); len(got) != 2 || got[0] != "Ascending" {
		t.Errorf("SortOrderStrings() = %v", got)
	}
	if _, err := common.SortOrderFromValue("ascending"); err == nil {
		t.Error("SortOrderFromValue is not case sensitive")
	}
}
