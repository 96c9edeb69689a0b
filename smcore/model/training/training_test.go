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
package training_test

import (
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"dirpx.dev/smapi/smcore/errors"
	"dirpx.dev/smapi/smcore/model/common"
	"dirpx.dev/smapi/smcore/model/training"
	"dirpx.dev/smapi/smcore/shape"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"
)

func checkpoint() *training.CheckpointConfig {
	return training.NewCheckpointConfig().
		WithS3Uri("s3://bucket/prefix").
		WithLocalPath("/opt/ml/checkpoints/")
}

func TestCheckpointConfig_String(t *testing.T) {
	got := checkpoint().String()
	want := "{S3Uri: s3://bucket/prefix,LocalPath: /opt/ml/checkpoints/}"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got := training.NewCheckpointConfig().String(); got != "{}" {
		t.Errorf("empty String() = %q, want {}", got)
	}
}

func TestCheckpointConfig_EqualAndHash(t *testing.T) {
	a, b := checkpoint(), checkpoint()

	if !a.Equal(a) {
		t.Error("Equal is not reflexive")
	}
	if !a.Equal(b) || !b.Equal(a) {
		t.Fatal("equal configs compare unequal")
	}
	if a.HashCode() != b.HashCode() {
		t.Errorf("HashCode differs for equal configs: %d vs %d", a.HashCode(), b.HashCode())
	}

	b.SetLocalPath(nil)
	if a.Equal(b) {
		t.Error("configs differing in LocalPath compare equal")
	}

	var typedNil *training.CheckpointConfig
	for name, other := range map[string]any{
		"nil":        nil,
		"typed nil":  typedNil,
		"other type": training.NewStoppingCondition(),
		"value":      *checkpoint(),
	} {
		if a.Equal(other) {
			t.Errorf("Equal(%s) = true", name)
		}
	}

	if training.NewCheckpointConfig().HashCode() != training.NewCheckpointConfig().HashCode() {
		t.Error("empty configs hash differently")
	}
}

func TestCheckpointConfig_SetCopiesAndClears(t *testing.T) {
	uri := "s3://bucket/a"
	c := training.NewCheckpointConfig()
	c.SetS3Uri(&uri)
	uri = "s3://bucket/b"

	if got := shape.Value(c.S3Uri()); got != "s3://bucket/a" {
		t.Errorf("S3Uri = %q, setter shares storage with the caller", got)
	}

	c.SetS3Uri(nil)
	if c.S3Uri() != nil {
		t.Error("SetS3Uri(nil) did not clear the field")
	}
	if !c.IsZero() {
		t.Error("IsZero = false after clearing every field")
	}
}

func TestCreateTrainingJobRequest_Lists(t *testing.T) {
	tag := func(k, v string) *common.Tag { return common.NewTag().WithKey(k).WithValue(v) }

	req := training.NewCreateTrainingJobRequest()
	if req.Tags() != nil {
		t.Fatal("Tags of a new request is not nil")
	}

	req.AppendTags(tag("team", "ml"))
	req.AppendTags(tag("env", "dev"))
	if got := len(req.Tags()); got != 2 {
		t.Fatalf("len(Tags) after two appends = %d, want 2", got)
	}

	req.WithTags([]*common.Tag{tag("owner", "ops")})
	if got := len(req.Tags()); got != 1 {
		t.Fatalf("len(Tags) after WithTags = %d, want 1", got)
	}

	req.SetTags([]*common.Tag{})
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("MarshalJSON error = %v", err)
	}
	if got, want := string(data), `{"Tags":[]}`; got != want {
		t.Errorf("empty list JSON = %s, want %s", got, want)
	}
	if req.IsZero() {
		t.Error("IsZero = true with an empty but present list")
	}

	req.SetTags(nil)
	data, err = json.Marshal(req)
	if err != nil {
		t.Fatalf("MarshalJSON error = %v", err)
	}
	if got := string(data); got != "{}" {
		t.Errorf("unset list JSON = %s, want {}", got)
	}
}

func TestResourceConfig_InstanceType(t *testing.T) {
	rc := training.NewResourceConfig().WithInstanceType(training.TrainingInstanceTypeMlM5Large)

	if got := shape.Value(rc.InstanceType()); got != "ml.m5.large" {
		t.Errorf("InstanceType = %q, want ml.m5.large", got)
	}
	it, err := rc.InstanceTypeEnum()
	if err != nil || it != training.TrainingInstanceTypeMlM5Large {
		t.Errorf("InstanceTypeEnum() = %q, %v", it, err)
	}

	rc.SetInstanceType(shape.String("ml.bogus"))
	if _, err := rc.InstanceTypeEnum(); !stderrors.Is(err, errors.ErrInvalidArgument) {
		t.Errorf("InstanceTypeEnum() error = %v, want ErrInvalidArgument", err)
	}

	errs := multierr.Errors(rc.Validate())
	if len(errs) != 1 {
		t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
	}
	var ve *errors.ValidationError
	if !stderrors.As(errs[0], &ve) || ve.Path() != "ResourceConfig.InstanceType" {
		t.Errorf("Validate() error = %v, want a ResourceConfig.InstanceType violation", errs[0])
	}

	rc.SetInstanceType(nil)
	if _, err := rc.InstanceTypeEnum(); err == nil || err.Error() != "smapi: TrainingInstanceType value cannot be null or empty" {
		t.Errorf("InstanceTypeEnum() of unset field error = %v", err)
	}
}

func TestCreateTrainingJobRequest_ValidateNested(t *testing.T) {
	req := training.NewCreateTrainingJobRequest().
		WithTrainingJobName("xgboost-2024").
		WithRoleArn("arn:aws:iam::123456789012:role/SageMakerRole").
		WithResourceConfig(training.NewResourceConfig().WithInstanceCount(0)).
		WithCheckpointConfig(checkpoint())

	errs := multierr.Errors(req.Validate())
	if len(errs) != 1 {
		t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
	}
	want := "smapi: invalid CreateTrainingJobRequest.ResourceConfig.InstanceCount: value 0 is below minimum 1"
	if got := errs[0].Error(); got != want {
		t.Errorf("error = %q, want %q", got, want)
	}

	req.ResourceConfig().SetInstanceCount(shape.Int32(2))
	if err := req.Validate(); err != nil {
		t.Errorf("Validate() after fix = %v", err)
	}

	if _, err := json.Marshal(req.WithTrainingJobName("no spaces allowed")); err == nil {
		t.Error("MarshalJSON accepted an invalid job name")
	}
}

func TestCreateTrainingJobRequest_JSONRoundTrip(t *testing.T) {
	req := training.NewCreateTrainingJobRequest().
		WithTrainingJobName("xgboost-2024").
		WithOutputDataConfig(training.NewOutputDataConfig().WithS3OutputPath("s3://bucket/out")).
		WithStoppingCondition(training.NewStoppingCondition().WithMaxRuntimeInSeconds(3600)).
		WithEnableManagedSpotTraining(true).
		AppendTags(common.NewTag().WithKey("team").WithValue("ml"))

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("MarshalJSON error = %v", err)
	}
	want := `{"TrainingJobName":"xgboost-2024",` +
		`"OutputDataConfig":{"S3OutputPath":"s3://bucket/out"},` +
		`"StoppingCondition":{"MaxRuntimeInSeconds":3600},` +
		`"Tags":[{"Key":"team","Value":"ml"}],` +
		`"EnableManagedSpotTraining":true}`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}

	got := training.NewCreateTrainingJobRequest()
	if err := json.Unmarshal(data, got); err != nil {
		t.Fatalf("UnmarshalJSON error = %v", err)
	}
	if !got.Equal(req) {
		t.Errorf("round trip = %v, want %v", got, req)
	}
	if got.HashCode() != req.HashCode() {
		t.Error("round trip changed HashCode")
	}
}

func TestUnmarshalJSON_DoesNotValidate(t *testing.T) {
	var req training.StopTrainingJobRequest
	if err := json.Unmarshal([]byte(`{"TrainingJobName":"not valid!"}`), &req); err != nil {
		t.Fatalf("UnmarshalJSON error = %v", err)
	}
	if err := req.Validate(); err == nil {
		t.Error("Validate() accepted an invalid job name")
	}

	err := json.Unmarshal([]byte(`{"TrainingJobName":7}`), &req)
	var ue *errors.UnmarshalError
	if !stderrors.As(err, &ue) || ue.Type != "StopTrainingJobRequest" {
		t.Errorf("type mismatch error = %v, want *UnmarshalError", err)
	}
}

func TestMetricData_Timestamp(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 500_000_000, time.UTC)
	m := training.NewMetricData().WithMetricName("validation:rmse").WithValue(0.25).WithTimestamp(ts)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("MarshalJSON error = %v", err)
	}
	want := `{"MetricName":"validation:rmse","Value":0.25,"Timestamp":"2024-01-02T03:04:05.5Z"}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}

	if got, want := m.String(), "{MetricName: validation:rmse,Value: 0.25,Timestamp: 2024-01-02T03:04:05.5Z}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	other := training.NewMetricData().WithMetricName("validation:rmse").WithValue(0.25).
		WithTimestamp(ts.In(time.FixedZone("CET", 3600)))
	if !m.Equal(other) || m.HashCode() != other.HashCode() {
		t.Error("the same instant in another zone compares unequal")
	}
}

func TestOutputDataConfig_Redacted(t *testing.T) {
	c := training.NewOutputDataConfig().
		WithKmsKeyId("arn:aws:kms:us-east-1:123456789012:key/abcd").
		WithS3OutputPath("s3://bucket/out")

	if got, want := c.Redacted(), "{KmsKeyId: [REDACTED],S3OutputPath: s3://bucket/out}"; got != want {
		t.Errorf("Redacted() = %q, want %q", got, want)
	}

	req := training.NewCreateTrainingJobRequest().WithOutputDataConfig(c)
	if got, want := req.Redacted(), "{OutputDataConfig: {KmsKeyId: [REDACTED],S3OutputPath: s3://bucket/out}}"; got != want {
		t.Errorf("nested Redacted() = %q, want %q", got, want)
	}
}

func TestCreateTrainingJobRequest_Clone(t *testing.T) {
	req := training.NewCreateTrainingJobRequest().
		WithResourceConfig(training.NewResourceConfig().WithInstanceCount(1)).
		AppendTags(common.NewTag().WithKey("team"))

	c := req.Clone()
	if !c.Equal(req) {
		t.Fatal("Clone() is not equal to the original")
	}

	c.ResourceConfig().SetInstanceCount(shape.Int32(4))
	c.Tags()[0].SetKey(shape.String("owner"))

	if got := shape.Value(req.ResourceConfig().InstanceCount()); got != 1 {
		t.Errorf("original InstanceCount = %d after mutating the clone", got)
	}
	if got := shape.Value(req.Tags()[0].Key()); got != "team" {
		t.Errorf("original tag key = %q after mutating the clone", got)
	}

	var nilReq *training.CreateTrainingJobRequest
	if nilReq.Clone() != nil {
		t.Error("Clone() of nil is not nil")
	}
}

func TestTrainingJobStatus_Terminal(t *testing.T) {
	terminal := map[training.TrainingJobStatus]bool{
		training.TrainingJobStatusCompleted: true,
		training.TrainingJobStatusFailed:    true,
		training.TrainingJobStatusStopped:   true,
	}
	for _, s := range training.TrainingJobStatusValues() {
		if got := s.Terminal(); got != terminal[s] {
			t.Errorf("%s.Terminal() = %v, want %v", s, got, terminal[s])
		}
	}
}

func TestSchemas(t *testing.T) {
	var names []string
	for _, s := range training.Schemas() {
		names = append(names, s.Name)
	}
	want := []string{
		"CheckpointConfig", "StoppingCondition", "ResourceConfig", "OutputDataConfig",
		"MetricData", "CreateTrainingJobRequest", "CreateTrainingJobResult",
		"DescribeTrainingJobRequest", "DescribeTrainingJobResult", "StopTrainingJobRequest",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Schemas() mismatch (-want +got):\n%s", diff)
	}

	if !training.NewResourceConfig().Schema().Sensitive("VolumeKmsKeyId") {
		t.Error("VolumeKmsKeyId is not marked sensitive")
	}
}
