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
package labeling_test

import (
	"encoding/json"
	"testing"

	"dirpx.dev/smapi/smcore/model/labeling"
	"go.uber.org/multierr"
)

func TestUSD_TenthsOfACent(t *testing.T) {
	tests := []struct {
		name string
		usd  *labeling.USD
		want int64
	}{
		{"nil", nil, 0},
		{"empty", labeling.NewUSD(), 0},
		{"full", labeling.NewUSD().WithDollars(1).WithCents(20).WithTenthFractionsOfACent(5), 1205},
		{"cents only", labeling.NewUSD().WithCents(36), 360},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.usd.TenthsOfACent(); got != tt.want {
				t.Errorf("TenthsOfACent() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUSD_Validate(t *testing.T) {
	usd := labeling.NewUSD().WithDollars(3).WithCents(100).WithTenthFractionsOfACent(9)

	errs := multierr.Errors(usd.Validate())
	if len(errs) != 2 {
		t.Fatalf("Validate() returned %d errors, want 2: %v", len(errs), errs)
	}
	want := []string{
		"smapi: invalid USD.Dollars: value 3 exceeds maximum 2",
		"smapi: invalid USD.Cents: value 100 exceeds maximum 99",
	}
	for i, err := range errs {
		if err.Error() != want[i] {
			t.Errorf("error[%d] = %q, want %q", i, err.Error(), want[i])
		}
	}
}

func TestHumanTaskConfig_NestedPrice(t *testing.T) {
	price := labeling.NewPublicWorkforceTaskPrice().
		WithAmountInUsd(labeling.NewUSD().WithCents(12).WithTenthFractionsOfACent(10))
	cfg := labeling.NewHumanTaskConfig().
		WithTaskTitle("Label cars").
		WithPublicWorkforceTaskPrice(price)

	err := cfg.Validate()
	want := "smapi: invalid HumanTaskConfig.PublicWorkforceTaskPrice.AmountInUsd.TenthFractionsOfACent: value 10 exceeds maximum 9"
	if err == nil || err.Error() != want {
		t.Errorf("Validate() = %v, want %q", err, want)
	}

	if got, want := cfg.String(), "{TaskTitle: Label cars,PublicWorkforceTaskPrice: {AmountInUsd: {Cents: 12,TenthFractionsOfACent: 10}}}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestHumanTaskConfig_NestedByReference(t *testing.T) {
	ui := labeling.NewUiConfig().WithUiTemplateS3Uri("s3://bucket/template.liquid")
	cfg := labeling.NewHumanTaskConfig().WithUiConfig(ui)

	ui.WithHumanTaskUiArn("arn:aws:sagemaker:us-east-1:123456789012:human-task-ui/cars")
	if cfg.UiConfig().HumanTaskUiArn() == nil {
		t.Error("nested shape was copied by the setter")
	}

	clone := cfg.Clone()
	ui.SetUiTemplateS3Uri(nil)
	if clone.UiConfig().UiTemplateS3Uri() == nil {
		t.Error("Clone() shares the nested shape")
	}
}

func TestDescribeLabelingJobResult_JSON(t *testing.T) {
	data := []byte(`{
		"LabelingJobStatus": "Completed",
		"LabelingJobName": "cars",
		"CreationTime": "2024-05-01T10:00:00Z",
		"HumanTaskConfig": {"TaskTitle": "Label cars", "TaskKeywords": ["Images"]},
		"Tags": []
	}`)

	var res labeling.DescribeLabelingJobResult
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("UnmarshalJSON error = %v", err)
	}

	status, err := res.LabelingJobStatusEnum()
	if err != nil || !status.Terminal() {
		t.Errorf("status = %q, %v, want a terminal status", status, err)
	}
	if res.Tags() == nil || len(res.Tags()) != 0 {
		t.Errorf("Tags = %v, want empty and present", res.Tags())
	}
	if got := res.HumanTaskConfig().TaskKeywords(); len(got) != 1 || got[0] != "Images" {
		t.Errorf("TaskKeywords = %v", got)
	}
	if err := res.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	out, err := json.Marshal(&res)
	if err != nil {
		t.Fatalf("MarshalJSON error = %v", err)
	}
	var back labeling.DescribeLabelingJobResult
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("UnmarshalJSON error = %v", err)
	}
	if !back.Equal(&res) || back.HashCode() != res.HashCode() {
		t.Errorf("round trip = %v, want %v", &back, &res)
	}
}

func TestLabelingJobStatus_Terminal(t *testing.T) {
	for _, s := range []labeling.LabelingJobStatus{
		labeling.LabelingJobStatusInitializing,
		labeling.LabelingJobStatusInProgress,
		labeling.LabelingJobStatusStopping,
	} {
		if s.Terminal() {
			t.Errorf("%s.Terminal() = true", s)
		}
	}
}
