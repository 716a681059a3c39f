// Package vision extracts structured visual signals from a photo of a stray
// animal by calling a vision-capable model. It is a collaborator of the
// triage engine, never part of it: a failed extraction is reported to the
// caller, who falls back to manually entered signals.
package vision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"

	"straysense/pkg/triage"
	"straysense/pkg/utils"
)

// ErrUnavailable is returned when no provider is configured.
var ErrUnavailable = errors.New("vision extraction unavailable")

// Extractor runs one image through a vision model and returns the structured
// signal estimate.
type Extractor interface {
	Extract(ctx context.Context, image []byte, mimeType string) (*Result, error)
}

// Result is the fixed response shape requested from the model. Confidence
// and ImageQualityNote are display-only; scoring never reads them.
type Result struct {
	BodyCondition    string `json:"bodyCondition"`
	OpenWound        bool   `json:"openWound"`
	WoundLocation    string `json:"woundLocation,omitempty"`
	InfectionRisk    bool   `json:"infectionRisk"`
	AbnormalPosture  bool   `json:"abnormalPosture"`
	LimbAsymmetry    bool   `json:"limbAsymmetry"`
	Confidence       string `json:"confidence,omitempty"`
	ImageQualityNote string `json:"imageQualityNote,omitempty"`
}

// Signals converts the model's estimate into validated visual signals.
// Anything outside the known enums falls back to the normal/false baseline.
func (r *Result) Signals() triage.VisualSignals {
	if r == nil {
		return triage.VisualSignals{BodyCondition: triage.BodyNormal}
	}

	cond := triage.BodyCondition(strings.ToLower(strings.TrimSpace(r.BodyCondition)))
	switch cond {
	case triage.BodyThin, triage.BodySeverelyThin:
	default:
		cond = triage.BodyNormal
	}

	loc := triage.WoundLocation(strings.ToLower(strings.TrimSpace(r.WoundLocation)))
	switch loc {
	case triage.WoundHead, triage.WoundNeck, triage.WoundTorso,
		triage.WoundForelimb, triage.WoundHindlimb, triage.WoundTail:
	default:
		loc = triage.WoundNone
	}

	return triage.VisualSignals{
		BodyCondition:   cond,
		OpenWound:       r.OpenWound,
		WoundLocation:   loc,
		InfectionRisk:   r.InfectionRisk,
		AbnormalPosture: r.AbnormalPosture,
		LimbAsymmetry:   r.LimbAsymmetry,
	}
}

const extractionPrompt = `You are a veterinary triage assistant analyzing a stray animal photo. This is NOT a diagnosis tool.
Return ONLY valid JSON (no markdown):
{"bodyCondition":"normal"|"thin"|"severely_thin","openWound":boolean,"woundLocation":"head"|"neck"|"torso"|"forelimb"|"hindlimb"|"tail"|null,"infectionRisk":boolean,"abnormalPosture":boolean,"limbAsymmetry":boolean,"confidence":"low"|"medium"|"high","imageQualityNote":"string"}
Be conservative. Default false/normal if unclear.`

func generateSchema[T any]() any {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

// ResultSchema is advertised to providers that support strict structured
// outputs.
var ResultSchema = generateSchema[Result]()

// parseResult cleans and unmarshals a raw model response.
func parseResult(raw string) (*Result, error) {
	raw = utils.CleanJSON(raw)
	if raw == "" {
		return nil, errors.New("empty model response")
	}
	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}
	return &res, nil
}
