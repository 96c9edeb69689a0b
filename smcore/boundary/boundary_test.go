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
package boundary_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"dirpx.dev/smapi/smcore/boundary"
	"dirpx.dev/smapi/smcore/errors"
	"dirpx.dev/smapi/smcore/model/catalog"
	"dirpx.dev/smapi/smcore/model/coderepo"
	"dirpx.dev/smapi/smcore/model/notebook"
	"dirpx.dev/smapi/smcore/model/training"
	"dirpx.dev/smapi/smcore/schema"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newChecker(opts ...boundary.Option) (*boundary.Checker, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	opts = append([]boundary.Option{boundary.WithLogger(zap.New(core))}, opts...)
	return boundary.New(opts...), logs
}

func invalidNotebook() *notebook.CreateNotebookInstanceRequest {
	return notebook.NewCreateNotebookInstanceRequest().
		WithNotebookInstanceName("nb").
		WithKmsKeyId("secret-key-id").
		WithVolumeSizeInGB(1)
}

func TestCheck_Valid(t *testing.T) {
	c, logs := newChecker()

	if err := c.Check(training.NewStopTrainingJobRequest().WithTrainingJobName("job-1")); err != nil {
		t.Fatalf("Check() = %v", err)
	}
	entries := logs.FilterMessage("shape accepted").All()
	if len(entries) != 1 || entries[0].ContextMap()["shape"] != "StopTrainingJobRequest" {
		t.Errorf("accepted entries = %v", entries)
	}
}

func TestCheck_Strict(t *testing.T) {
	c, logs := newChecker()

	err := c.Check(invalidNotebook())
	if err == nil {
		t.Fatal("Check() accepted an invalid request")
	}
	if !strings.HasPrefix(err.Error(), "boundary: CreateNotebookInstanceRequest: ") {
		t.Errorf("error = %q", err)
	}
	var ve *errors.ValidationError
	if !stderrors.As(err, &ve) || ve.Field != "VolumeSizeInGB" {
		t.Errorf("error %v does not carry the VolumeSizeInGB violation", err)
	}

	warns := logs.FilterMessage("shape constraint violated").All()
	if len(warns) != 1 {
		t.Fatalf("got %d violation entries, want 1", len(warns))
	}
	fields := warns[0].ContextMap()
	if fields["field"] != "VolumeSizeInGB" || fields["reason"] != "value 1 is below minimum 5" {
		t.Errorf("violation fields = %v", fields)
	}
	if warns[0].Level != zapcore.WarnLevel {
		t.Errorf("violation level = %v", warns[0].Level)
	}

	rejected := logs.FilterMessage("shape rejected").All()
	if len(rejected) != 1 {
		t.Fatalf("got %d rejection entries, want 1", len(rejected))
	}
	payload, _ := rejected[0].ContextMap()["payload"].(string)
	if strings.Contains(payload, "secret-key-id") || !strings.Contains(payload, "[REDACTED]") {
		t.Errorf("payload = %q, want the redacted form", payload)
	}
}

func TestCheck_Lenient(t *testing.T) {
	c, logs := newChecker(boundary.WithStrict(false))

	if err := c.Check(invalidNotebook()); err != nil {
		t.Errorf("lenient Check() = %v", err)
	}
	if logs.FilterMessage("shape constraint violated").Len() != 1 {
		t.Error("lenient Check() did not log the violation")
	}
}

func TestCheck_Nil(t *testing.T) {
	c, logs := newChecker()
	if err := c.Check(nil); !stderrors.Is(err, errors.ErrInvalidArgument) {
		t.Errorf("Check(nil) = %v", err)
	}

	var typed *training.StopTrainingJobRequest
	if err := c.Check(typed); !stderrors.Is(err, errors.ErrInvalidArgument) {
		t.Errorf("Check(typed nil) = %v", err)
	}
	if data, err := c.Encode(typed); !stderrors.Is(err, errors.ErrInvalidArgument) || data != nil {
		t.Errorf("Encode(typed nil) = %q, %v", data, err)
	}
	if err := c.Decode([]byte(`{"TrainingJobName":"job-1"}`), typed); !stderrors.Is(err, errors.ErrInvalidArgument) {
		t.Errorf("Decode(typed nil) = %v", err)
	}
	if logs.FilterMessage("shape accepted").Len() != 0 {
		t.Error("a nil shape was logged as accepted")
	}
}

func TestCheck_Registry(t *testing.T) {
	c, logs := newChecker(boundary.WithRegistry(catalog.MustRegistry()))

	if err := c.Check(coderepo.NewDescribeCodeRepositoryRequest().WithCodeRepositoryName("repo")); err != nil {
		t.Fatalf("Check() = %v", err)
	}
	if got := logs.FilterMessage("shape accepted").All()[0].ContextMap()["shape"]; got != "coderepo.DescribeCodeRepositoryRequest" {
		t.Errorf("logged shape = %v, want the qualified name", got)
	}

	empty, err := schema.NewRegistry("1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	c, logs = newChecker(boundary.WithRegistry(empty), boundary.WithStrict(false))
	err = c.Check(training.NewStopTrainingJobRequest())
	if !stderrors.Is(err, boundary.ErrUnregistered) {
		t.Errorf("Check() of an unregistered shape = %v", err)
	}
	if logs.FilterMessage("shape not registered").Len() != 1 {
		t.Error("unregistered shape was not logged")
	}
}

func TestCheckAll(t *testing.T) {
	c, _ := newChecker()

	err := c.CheckAll(
		training.NewStopTrainingJobRequest().WithTrainingJobName("ok"),
		invalidNotebook(),
		training.NewStoppingCondition().WithMaxRuntimeInSeconds(0),
	)
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("CheckAll() returned %d errors, want 2: %v", got, err)
	}
}

func TestEncodeDecode(t *testing.T) {
	c, logs := newChecker()

	req := training.NewStopTrainingJobRequest().WithTrainingJobName("job-1")
	data, err := c.Encode(req)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if string(data) != `{"TrainingJobName":"job-1"}` {
		t.Errorf("Encode() = %s", data)
	}
	if logs.FilterMessage("shape encoded").Len() != 1 {
		t.Error("Encode() did not log")
	}

	got := training.NewStopTrainingJobRequest()
	if err := c.Decode(data, got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !got.Equal(req) {
		t.Errorf("Decode() = %v, want %v", got, req)
	}

	if _, err := c.Encode(invalidNotebook()); err == nil {
		t.Error("Encode() accepted an invalid request")
	}

	err = c.Decode([]byte(`{"TrainingJobName":"not valid!"}`), training.NewStopTrainingJobRequest())
	if err == nil {
		t.Error("strict Decode() accepted an invalid response")
	}

	err = c.Decode([]byte(`{"TrainingJobName":`), training.NewStopTrainingJobRequest())
	var ue *errors.UnmarshalError
	if !stderrors.As(err, &ue) || ue.Type != "StopTrainingJobRequest" {
		t.Errorf("Decode() of broken JSON = %v", err)
	}
	if logs.FilterMessage("shape decode failed").Len() != 1 {
		t.Error("decode failure was not logged")
	}
}
