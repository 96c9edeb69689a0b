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
package notebook_test

import (
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"dirpx.dev/smapi/smcore/errors"
	"dirpx.dev/smapi/smcore/model/common"
	"dirpx.dev/smapi/smcore/model/notebook"
	"dirpx.dev/smapi/smcore/shape"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

func createRequest() *notebook.CreateNotebookInstanceRequest {
	return notebook.NewCreateNotebookInstanceRequest().
		WithNotebookInstanceName("research-nb").
		WithInstanceType(notebook.InstanceTypeMlT2Medium).
		WithRoleArn("arn:aws:iam::123456789012:role/NotebookRole").
		WithKmsKeyId("1234abcd-12ab-34cd-56ef-1234567890ab").
		WithDirectInternetAccess(notebook.DirectInternetAccessDisabled).
		WithVolumeSizeInGB(20).
		WithSecurityGroupIds([]string{"sg-0a1b2c3d"}).
		AppendTags(common.NewTag().WithKey("team").WithValue("research"))
}

func TestInstanceType_FromValue(t *testing.T) {
	tests := []struct {
		in      string
		want    notebook.InstanceType
		wantErr string
	}{
		{"ml.t2.medium", notebook.InstanceTypeMlT2Medium, ""},
		{"ml.p3.16xlarge", notebook.InstanceTypeMlP316xlarge, ""},
		{"", "", "smapi: InstanceType value cannot be null or empty"},
		{"ml.t2.huge", "", "smapi: cannot create InstanceType enum from ml.t2.huge value"},
		{"ML.T2.MEDIUM", "", "smapi: cannot create InstanceType enum from ML.T2.MEDIUM value"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := notebook.InstanceTypeFromValue(tt.in)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("InstanceTypeFromValue(%q) error = %v, want %q", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("InstanceTypeFromValue(%q) = %q, %v", tt.in, got, err)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestInstanceType_Values(t *testing.T) {
	values := notebook.InstanceTypeValues()
	strs := notebook.InstanceTypeStrings()
	if len(values) != len(strs) || len(values) == 0 {
		t.Fatalf("Values() has %d entries, Strings() %d", len(values), len(strs))
	}
	if values[0] != notebook.InstanceTypeMlT2Medium {
		t.Errorf("first value = %q, want declaration order", values[0])
	}
	for i, v := range values {
		if string(v) != strs[i] {
			t.Errorf("Values()[%d] = %q, Strings()[%d] = %q", i, v, i, strs[i])
		}
		if !v.Valid() {
			t.Errorf("%q.Valid() = false", v)
		}
	}
	if notebook.InstanceType("ml.t2.huge").Valid() {
		t.Error("undeclared value reports Valid")
	}
}

func TestRootAccess_Text(t *testing.T) {
	text, err := notebook.RootAccessEnabled.MarshalText()
	if err != nil || string(text) != "Enabled" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}

	_, err = notebook.RootAccess("Sometimes").MarshalText()
	var me *errors.MarshalError
	if !stderrors.As(err, &me) {
		t.Errorf("MarshalText() of undeclared value error = %v, want *MarshalError", err)
	}

	var ra notebook.RootAccess
	if err := ra.UnmarshalText([]byte("Disabled")); err != nil || ra != notebook.RootAccessDisabled {
		t.Errorf("UnmarshalText() = %q, %v", ra, err)
	}
	if err := ra.UnmarshalText([]byte("disabled")); !stderrors.Is(err, errors.ErrInvalidArgument) {
		t.Errorf("UnmarshalText() of wrong case error = %v", err)
	}
}

func TestCreateNotebookInstanceRequest_Validate(t *testing.T) {
	if err := createRequest().Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	req := createRequest().
		WithVolumeSizeInGB(2).
		WithSecurityGroupIds([]string{"sg-1", "sg-2", "sg-3", "sg-4", "sg-5", "sg-6"}).
		WithAcceleratorTypes([]string{"ml.eia1.medium", "ml.eia9.giant"})

	var paths []string
	for _, err := range multierr.Errors(req.Validate()) {
		var ve *errors.ValidationError
		if !stderrors.As(err, &ve) {
			t.Fatalf("error %v is not a *ValidationError", err)
		}
		paths = append(paths, ve.Field)
	}
	want := []string{"SecurityGroupIds", "VolumeSizeInGB", "AcceleratorTypes[1]"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateNotebookInstanceRequest_Redacted(t *testing.T) {
	req := createRequest()

	if s := req.Redacted(); strings.Contains(s, "1234abcd") || !strings.Contains(s, "KmsKeyId: [REDACTED]") {
		t.Errorf("Redacted() = %q", s)
	}
	if s := req.String(); !strings.Contains(s, "KmsKeyId: 1234abcd-12ab-34cd-56ef-1234567890ab") {
		t.Errorf("String() = %q", s)
	}
	if got := req.Redacted(); !strings.HasPrefix(got, "{NotebookInstanceName: research-nb,InstanceType: ml.t2.medium,") {
		t.Errorf("Redacted() = %q, fields out of declaration order", got)
	}
}

func TestCreateNotebookInstanceRequest_YAML(t *testing.T) {
	req := createRequest()

	data, err := yaml.Marshal(req)
	if err != nil {
		t.Fatalf("yaml.Marshal error = %v", err)
	}
	if !strings.Contains(string(data), "NotebookInstanceName: research-nb\n") {
		t.Errorf("YAML does not use the element names:\n%s", data)
	}

	got := notebook.NewCreateNotebookInstanceRequest()
	if err := yaml.Unmarshal(data, got); err != nil {
		t.Fatalf("yaml.Unmarshal error = %v", err)
	}
	if !got.Equal(req) {
		t.Errorf("YAML round trip = %v, want %v", got.Redacted(), req.Redacted())
	}

	if _, err := yaml.Marshal(createRequest().WithVolumeSizeInGB(1)); err == nil {
		t.Error("yaml.Marshal accepted an invalid request")
	}
}

func TestDescribeNotebookInstanceResult_Status(t *testing.T) {
	var res notebook.DescribeNotebookInstanceResult
	data := []byte(`{"NotebookInstanceName":"research-nb","NotebookInstanceStatus":"Updating","VolumeSizeInGB":5}`)
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("UnmarshalJSON error = %v", err)
	}

	status, err := res.NotebookInstanceStatusEnum()
	if err != nil {
		t.Fatalf("NotebookInstanceStatusEnum() error = %v", err)
	}
	if status != notebook.NotebookInstanceStatusUpdating || !status.Transitional() {
		t.Errorf("status = %q, Transitional = %v", status, status.Transitional())
	}
	if got := shape.Value(res.VolumeSizeInGB()); got != 5 {
		t.Errorf("VolumeSizeInGB = %d, want 5", got)
	}
	if res.Url() != nil {
		t.Error("absent Url decoded as set")
	}
}

func TestNotebookInstanceStatus_Transitional(t *testing.T) {
	stable := []notebook.NotebookInstanceStatus{
		notebook.NotebookInstanceStatusInService,
		notebook.NotebookInstanceStatusStopped,
		notebook.NotebookInstanceStatusFailed,
	}
	for _, s := range stable {
		if s.Transitional() {
			t.Errorf("%s.Transitional() = true", s)
		}
	}
	if !notebook.NotebookInstanceStatusPending.Transitional() {
		t.Error("Pending.Transitional() = false")
	}
}

func TestUpdateNotebookInstanceResult_Empty(t *testing.T) {
	a, b := notebook.NewUpdateNotebookInstanceResult(), notebook.NewUpdateNotebookInstanceResult()

	if !a.IsZero() || !a.Equal(b) || a.HashCode() != b.HashCode() {
		t.Error("empty results are not zero and equal")
	}
	if a.String() != "{}" {
		t.Errorf("String() = %q", a.String())
	}
	data, err := json.Marshal(a)
	if err != nil || string(data) != "{}" {
		t.Errorf("MarshalJSON() = %s, %v", data, err)
	}
}

func TestUpdateNotebookInstanceRequest_AppendAndWith(t *testing.T) {
	req := notebook.NewUpdateNotebookInstanceRequest().
		AppendAdditionalCodeRepositories("https://github.com/org/a").
		AppendAdditionalCodeRepositories("repo-b")

	want := []string{"https://github.com/org/a", "repo-b"}
	if diff := cmp.Diff(want, req.AdditionalCodeRepositories()); diff != "" {
		t.Errorf("after Append (-want +got):\n%s", diff)
	}

	src := []string{"repo-c"}
	req.WithAdditionalCodeRepositories(src)
	src[0] = "changed"
	if diff := cmp.Diff([]string{"repo-c"}, req.AdditionalCodeRepositories()); diff != "" {
		t.Errorf("after With (-want +got):\n%s", diff)
	}

	req.WithDisassociateAdditionalCodeRepositories(false)
	if v := req.DisassociateAdditionalCodeRepositories(); v == nil || *v {
		t.Error("false boolean was not kept as a set value")
	}
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("MarshalJSON error = %v", err)
	}
	if !strings.Contains(string(data), `"DisassociateAdditionalCodeRepositories":false`) {
		t.Errorf("set false boolean omitted: %s", data)
	}
}
