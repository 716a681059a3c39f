package triage

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestConcernSetOrder(t *testing.T) {
	var s ConcernSet
	s.Add(ConcernPainDistress)
	s.Add(ConcernTrauma)
	s.Add(ConcernPainDistress) // duplicate add is a no-op
	s.Add(ConcernNutritional)

	want := []Concern{ConcernTrauma, ConcernNutritional, ConcernPainDistress}
	if got := s.Slice(); !reflect.DeepEqual(got, want) {
		t.Errorf("Slice() = %v, want %v", got, want)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if !s.Has(ConcernTrauma) || s.Has(ConcernInfectionRisk) {
		t.Error("membership checks wrong")
	}
}

func TestConcernSetIgnoresUnknown(t *testing.T) {
	var s ConcernSet
	s.Add("zoonotic")
	if s.Len() != 0 {
		t.Errorf("unknown concern must be ignored, got %v", s.Slice())
	}
}

func TestConcernSetJSON(t *testing.T) {
	var s ConcernSet
	s.Add(ConcernInfectionRisk)
	s.Add(ConcernTrauma)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `["trauma","infection_risk"]` {
		t.Errorf("marshal = %s, want fixed-order array", data)
	}

	var back ConcernSet
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, s) {
		t.Errorf("round trip = %v, want %v", back.Slice(), s.Slice())
	}
}

func TestReportJSONFieldNames(t *testing.T) {
	report := GenerateReport(VisualSignals{BodyCondition: BodyThin}, BehavioralSignals{}, "")
	data, err := json.Marshal(report)
	if err != nil {
		t.Fatal(err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{
		"urgency", "urgencyScore",
		"physicalObservations", "behavioralObservations",
		"nlpObservations", "nlpMatched",
		"concernFlags", "concernSummary",
		"actions", "disclaimer",
	} {
		if _, ok := fields[key]; !ok {
			t.Errorf("report JSON missing %q", key)
		}
	}
}
