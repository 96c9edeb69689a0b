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
package coderepo_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"dirpx.dev/smapi/smcore/model/coderepo"
	"dirpx.dev/smapi/smcore/model/common"
	"dirpx.dev/smapi/smcore/shape"
	"github.com/google/go-cmp/cmp"
)

const secretArn = "arn:aws:secretsmanager:us-east-1:123456789012:secret:git-creds-AbCdEf"

func TestGitConfig_Redacted(t *testing.T) {
	g := coderepo.NewGitConfig().
		WithRepositoryUrl("https://github.com/org/repo").
		WithBranch("main").
		WithSecretArn(secretArn)

	want := "{RepositoryUrl: https://github.com/org/repo,Branch: main,SecretArn: [REDACTED]}"
	if got := g.Redacted(); got != want {
		t.Errorf("Redacted() = %q, want %q", got, want)
	}
	if got := g.String(); !strings.Contains(got, secretArn) {
		t.Errorf("String() = %q, want the secret ARN", got)
	}

	req := coderepo.NewUpdateCodeRepositoryRequest().
		WithCodeRepositoryName("repo").
		WithGitConfig(coderepo.NewGitConfigForUpdate().WithSecretArn(secretArn))
	if got := req.Redacted(); strings.Contains(got, secretArn) {
		t.Errorf("nested Redacted() leaks the secret: %q", got)
	}
}

func TestListCodeRepositoriesRequest_SortOrder(t *testing.T) {
	after := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	req := coderepo.NewListCodeRepositoriesRequest().
		WithCreationTimeAfter(after).
		WithMaxResults(10).
		WithSortBy(coderepo.CodeRepositorySortByLastModifiedTime).
		WithSortOrder(common.SortOrderDescending)

	order, err := req.SortOrderEnum()
	if err != nil || order != common.SortOrderDescending {
		t.Errorf("SortOrderEnum() = %q, %v", order, err)
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("MarshalJSON error = %v", err)
	}
	want := `{"CreationTimeAfter":"2024-01-01T00:00:00Z","MaxResults":10,"SortBy":"LastModifiedTime","SortOrder":"Descending"}`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}

	req.SetSortOrder(shape.String("Sideways"))
	if err := req.Validate(); err == nil {
		t.Error("Validate() accepted an undeclared sort order")
	}
	if _, err := req.SortOrderEnum(); err == nil {
		t.Error("SortOrderEnum() accepted an undeclared sort order")
	}
}

func TestListCodeRepositoriesResult_Page(t *testing.T) {
	data := []byte(`{"CodeRepositorySummaryList":[
		{"CodeRepositoryName":"a","CodeRepositoryArn":"arn:aws:sagemaker:us-east-1:123456789012:code-repository/a"},
		{"CodeRepositoryName":"b","GitConfig":{"Branch":"dev"}}
	],"NextToken":"page-2"}`)

	var res coderepo.ListCodeRepositoriesResult
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("UnmarshalJSON error = %v", err)
	}

	var names []string
	for _, s := range res.CodeRepositorySummaryList() {
		names = append(names, shape.Value(s.CodeRepositoryName()))
	}
	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if got := shape.Value(res.CodeRepositorySummaryList()[1].GitConfig().Branch()); got != "dev" {
		t.Errorf("nested branch = %q", got)
	}
	if err := res.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	other := res.Clone()
	if !other.Equal(&res) || other.HashCode() != res.HashCode() {
		t.Error("Clone() is not equal with the same hash")
	}
	other.WithNextToken("page-3")
	if other.Equal(&res) {
		t.Error("results differing in NextToken compare equal")
	}
}

func TestDeleteCodeRepositoryResult_Empty(t *testing.T) {
	var res coderepo.DeleteCodeRepositoryResult
	if err := json.Unmarshal([]byte(`{"Unexpected":1}`), &res); err != nil {
		t.Fatalf("UnmarshalJSON error = %v", err)
	}
	if !res.IsZero() || res.Validate() != nil {
		t.Error("empty result is not zero and valid")
	}
	if res.TypeName() != "DeleteCodeRepositoryResult" {
		t.Errorf("TypeName() = %q", res.TypeName())
	}
}
