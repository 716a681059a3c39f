package triage

import "encoding/json"

// Urgency is the primary triage outcome.
type Urgency string

const (
	UrgencyLow    Urgency = "LOW"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyHigh   Urgency = "HIGH"
)

// BodyCondition is the assessed nutritional state. Values outside the three
// known ones are treated as normal and contribute nothing.
type BodyCondition string

const (
	BodyNormal       BodyCondition = "normal"
	BodyThin         BodyCondition = "thin"
	BodySeverelyThin BodyCondition = "severely_thin"
)

// WoundLocation is the anatomical region of an open wound.
type WoundLocation string

const (
	WoundHead     WoundLocation = "head"
	WoundNeck     WoundLocation = "neck"
	WoundTorso    WoundLocation = "torso"
	WoundForelimb WoundLocation = "forelimb"
	WoundHindlimb WoundLocation = "hindlimb"
	WoundTail     WoundLocation = "tail"
	WoundNone     WoundLocation = ""
)

// VisualSignals are the structured observations from a photo or manual entry.
type VisualSignals struct {
	BodyCondition   BodyCondition `json:"bodyCondition"`
	OpenWound       bool          `json:"openWound"`
	WoundLocation   WoundLocation `json:"woundLocation,omitempty"`
	InfectionRisk   bool          `json:"infectionRisk"`
	AbnormalPosture bool          `json:"abnormalPosture"`
	LimbAsymmetry   bool          `json:"limbAsymmetry"`
}

// BehavioralSignals are operator-reported behavior flags. The JSON keys are
// snake_case to match the intake form payload.
type BehavioralSignals struct {
	Limping          bool `json:"limping"`
	Lethargic        bool `json:"lethargic"`
	Aggressive       bool `json:"aggressive"`
	AvoidsContact    bool `json:"avoids_contact"`
	ExcessiveLicking bool `json:"excessive_licking"`
}

// Concern is a coarse clinical grouping driving summary text and actions.
type Concern string

const (
	ConcernTrauma        Concern = "trauma"
	ConcernInfectionRisk Concern = "infection_risk"
	ConcernNutritional   Concern = "nutritional"
	ConcernPainDistress  Concern = "pain_distress"
)

// concernOrder is the fixed enumeration and display order for concerns.
var concernOrder = [...]Concern{
	ConcernTrauma,
	ConcernInfectionRisk,
	ConcernNutritional,
	ConcernPainDistress,
}

// ConcernSet is a small ordered membership set over the four concern
// categories. Iteration is always in concernOrder regardless of insertion
// order, so no sorting happens at display time.
type ConcernSet struct {
	present [len(concernOrder)]bool
}

func (s *ConcernSet) Add(c Concern) {
	for i, known := range concernOrder {
		if known == c {
			s.present[i] = true
			return
		}
	}
}

func (s ConcernSet) Has(c Concern) bool {
	for i, known := range concernOrder {
		if known == c {
			return s.present[i]
		}
	}
	return false
}

func (s ConcernSet) Len() int {
	var n int
	for _, p := range s.present {
		if p {
			n++
		}
	}
	return n
}

// Slice returns the present concerns in the fixed enumeration order.
func (s ConcernSet) Slice() []Concern {
	out := make([]Concern, 0, len(concernOrder))
	for i, p := range s.present {
		if p {
			out = append(out, concernOrder[i])
		}
	}
	return out
}

// Summary returns one human-readable sentence per present concern, in the
// fixed enumeration order.
func (s ConcernSet) Summary() []string {
	out := make([]string, 0, s.Len())
	for _, c := range s.Slice() {
		out = append(out, concernSummaries[c])
	}
	return out
}

func (s ConcernSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *ConcernSet) UnmarshalJSON(data []byte) error {
	var concerns []Concern
	if err := json.Unmarshal(data, &concerns); err != nil {
		return err
	}
	*s = ConcernSet{}
	for _, c := range concerns {
		s.Add(c)
	}
	return nil
}

// TriageReport is the complete output of one analysis. It is constructed
// fresh on every call and never mutated afterwards. The JSON field names
// match the intake client's report contract.
type TriageReport struct {
	Urgency                Urgency    `json:"urgency"`
	UrgencyScore           int        `json:"urgencyScore"`
	PhysicalObservations   []string   `json:"physicalObservations"`
	BehavioralObservations []string   `json:"behavioralObservations"`
	NLPObservations        []string   `json:"nlpObservations"`
	NLPMatched             []string   `json:"nlpMatched"`
	ConcernFlags           ConcernSet `json:"concernFlags"`
	ConcernSummary         []string   `json:"concernSummary"`
	Actions                []string   `json:"actions"`
	Disclaimer             string     `json:"disclaimer"`
}
