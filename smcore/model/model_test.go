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
package model_test

import (
	"strings"
	"testing"

	"dirpx.dev/smapi/smcore/model"
	"dirpx.dev/smapi/smcore/model/common"
	"dirpx.dev/smapi/smcore/model/training"
	"go.uber.org/multierr"
)

func tag(k, v string) *common.Tag {
	return common.NewTag().WithKey(k).WithValue(v)
}

func TestValidateAll(t *testing.T) {
	if err := model.ValidateAll([]*common.Tag{}); err != nil {
		t.Errorf("ValidateAll(empty) = %v", err)
	}

	tags := []*common.Tag{tag("a", "1"), tag("", "2"), tag("c", "3"), tag("d*", "4")}
	err := model.ValidateAll(tags)
	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("ValidateAll returned %d errors, want 2: %v", len(errs), err)
	}
	if !strings.HasPrefix(errs[0].Error(), "shape[1] (Tag): smapi: invalid Tag.Key") {
		t.Errorf("errs[0] = %q", errs[0])
	}
	if !strings.HasPrefix(errs[1].Error(), "shape[3] (Tag): ") {
		t.Errorf("errs[1] = %q", errs[1])
	}
}

func TestFilterZero(t *testing.T) {
	in := []*common.Tag{common.NewTag(), tag("a", "1"), nil, common.NewTag().WithValue("")}

	got := model.FilterZero(in)
	if len(got) != 2 {
		t.Fatalf("FilterZero kept %d shapes, want 2", len(got))
	}
	if got[0] != in[1] || got[1] != in[3] {
		t.Error("FilterZero did not keep the set shapes in order")
	}

	if out := model.FilterZero([]*common.Tag{common.NewTag()}); out == nil || len(out) != 0 {
		t.Errorf("FilterZero(all zero) = %v, want empty non-nil", out)
	}
}

func TestMustValidate(t *testing.T) {
	ok := tag("a", "b")
	if model.MustValidate(ok) != ok {
		t.Error("MustValidate did not return its argument")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustValidate did not panic on an invalid shape")
		}
	}()
	model.MustValidate(tag("", ""))
}

func TestSafeString(t *testing.T) {
	cfg := training.NewOutputDataConfig().WithKmsKeyId("key-1")

	if got := model.SafeString(cfg, false); got != "{KmsKeyId: [REDACTED]}" {
		t.Errorf("SafeString(safe) = %q", got)
	}
	if got := model.SafeString(cfg, true); got != "{KmsKeyId: key-1}" {
		t.Errorf("SafeString(unsafe) = %q", got)
	}
}

func TestJSONHelpers(t *testing.T) {
	cfg := training.NewStoppingCondition().WithMaxRuntimeInSeconds(60)

	data, err := model.ToJSON(cfg)
	if err != nil || string(data) != `{"MaxRuntimeInSeconds":60}` {
		t.Fatalf("ToJSON() = %s, %v", data, err)
	}

	got := training.NewStoppingCondition()
	if err := model.FromJSON(data, &got); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if !model.Equal(got, cfg) {
		t.Errorf("FromJSON() = %v, want %v", got, cfg)
	}

	bad := training.NewStoppingCondition()
	if err := model.FromJSON([]byte(`{"MaxRuntimeInSeconds":0}`), &bad); err == nil {
		t.Error("FromJSON accepted a value below the minimum")
	}

	if _, err := model.ToJSON(training.NewStoppingCondition().WithMaxRuntimeInSeconds(-1)); err == nil {
		t.Error("ToJSON accepted an invalid shape")
	}
}

func TestYAMLHelpers(t *testing.T) {
	cfg := training.NewCheckpointConfig().WithS3Uri("s3://bucket/ckpt")

	data, err := model.ToYAML(cfg)
	if err != nil || string(data) != "S3Uri: s3://bucket/ckpt\n" {
		t.Fatalf("ToYAML() = %q, %v", data, err)
	}

	got := training.NewCheckpointConfig()
	if err := model.FromYAML(data, &got); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if !got.Equal(cfg) {
		t.Errorf("FromYAML() = %v, want %v", got, cfg)
	}

	bad := training.NewCheckpointConfig()
	if err := model.FromYAML([]byte("S3Uri: ftp://host/path\n"), &bad); err == nil {
		t.Error("FromYAML accepted an S3Uri with the wrong scheme")
	}
}

func TestClone(t *testing.T) {
	req := training.NewCreateTrainingJobRequest().
		WithTrainingJobName("job-1").
		WithTags([]*common.Tag{tag("k", "v")})

	c := model.Clone(req)
	if c == req || !c.Equal(req) {
		t.Fatal("Clone() is not an equal, distinct shape")
	}
	c.Tags()[0].WithValue("changed")
	if *req.Tags()[0].Value() != "v" {
		t.Error("Clone() shares nested shapes")
	}

	invalid := training.NewCreateTrainingJobRequest().WithTrainingJobName("bad name")
	if got := model.Clone(invalid); !got.Equal(invalid) {
		t.Errorf("Clone() of an invalid shape = %v, want %v", got, invalid)
	}

	var none *training.CreateTrainingJobRequest
	if got := model.Clone(none); got != nil {
		t.Errorf("Clone(nil) = %v", got)
	}
}
