package vision

import (
	"testing"

	"straysense/pkg/triage"
)

func TestParseResultFenced(t *testing.T) {
	raw := "```json\n{\"bodyCondition\":\"thin\",\"openWound\":true,\"woundLocation\":\"hindlimb\",\"confidence\":\"medium\"}\n```"
	res, err := parseResult(raw)
	if err != nil {
		t.Fatal(err)
	}
	if res.BodyCondition != "thin" || !res.OpenWound || res.WoundLocation != "hindlimb" {
		t.Errorf("parsed = %+v", res)
	}
	if res.Confidence != "medium" {
		t.Errorf("confidence = %q, want medium", res.Confidence)
	}
}

func TestParseResultNullLocation(t *testing.T) {
	res, err := parseResult(`{"bodyCondition":"normal","openWound":false,"woundLocation":null}`)
	if err != nil {
		t.Fatal(err)
	}
	if res.WoundLocation != "" {
		t.Errorf("wound location = %q, want empty", res.WoundLocation)
	}
}

func TestParseResultInvalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "not json at all", "```\n```"} {
		if _, err := parseResult(raw); err == nil {
			t.Errorf("parseResult(%q) succeeded, want error", raw)
		}
	}
}

func TestSignalsValidation(t *testing.T) {
	tests := []struct {
		name string
		in   Result
		want triage.VisualSignals
	}{
		{
			name: "known values pass through",
			in:   Result{BodyCondition: "severely_thin", OpenWound: true, WoundLocation: "head", InfectionRisk: true},
			want: triage.VisualSignals{BodyCondition: triage.BodySeverelyThin, OpenWound: true, WoundLocation: triage.WoundHead, InfectionRisk: true},
		},
		{
			name: "unknown enums fall back to baseline",
			in:   Result{BodyCondition: "skeletal", OpenWound: true, WoundLocation: "wing"},
			want: triage.VisualSignals{BodyCondition: triage.BodyNormal, OpenWound: true},
		},
		{
			name: "case and whitespace tolerated",
			in:   Result{BodyCondition: " Thin ", WoundLocation: "HINDLIMB"},
			want: triage.VisualSignals{BodyCondition: triage.BodyThin, WoundLocation: triage.WoundHindlimb},
		},
		{
			name: "empty result is the baseline",
			in:   Result{},
			want: triage.VisualSignals{BodyCondition: triage.BodyNormal},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Signals(); got != tt.want {
				t.Errorf("Signals() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSignalsNilResult(t *testing.T) {
	var r *Result
	got := r.Signals()
	if got.BodyCondition != triage.BodyNormal || got.OpenWound {
		t.Errorf("nil result must map to baseline, got %+v", got)
	}
}

func TestConfidenceNeverAffectsSignals(t *testing.T) {
	low := Result{BodyCondition: "thin", Confidence: "low"}
	high := Result{BodyCondition: "thin", Confidence: "high"}
	if low.Signals() != high.Signals() {
		t.Error("confidence is display-only and must not change signals")
	}
}
