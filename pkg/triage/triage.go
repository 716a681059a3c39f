// Package triage turns structured observations about a stray animal into a
// prioritized report. The whole package is pure data transformation: no I/O,
// no shared state, and the same inputs always produce the same report, so it
// is safe to call from any number of goroutines.
package triage

// Disclaimer is attached to every report.
const Disclaimer = "NOT a veterinary diagnosis. Consult a licensed veterinarian."

// Per-signal score contributions. Each rule is evaluated independently and
// the contributions sum; the total is never negative.
const (
	scoreThin         = 1
	scoreSeverelyThin = 3
	scoreOpenWound    = 2
	scoreInfection    = 2
	scorePosture      = 1
	scoreAsymmetry    = 2
	scoreLimping      = 2
	scoreLethargic    = 2
	scoreAggressive   = 1
	scoreAvoidance    = 1
	scoreLicking      = 1
)

// Urgency thresholds: a score of exactly 4 is HIGH, exactly 2 is MEDIUM.
const (
	highThreshold   = 4
	mediumThreshold = 2
)

// Classify maps a cumulative urgency score onto the three-level scale.
func Classify(score int) Urgency {
	switch {
	case score >= highThreshold:
		return UrgencyHigh
	case score >= mediumThreshold:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// GenerateReport runs the full pipeline: signal aggregation, free-text
// extraction, urgency classification, and action planning. It never fails;
// unrecognized enum values simply contribute nothing, and all-default inputs
// yield a LOW report with empty observation lists.
func GenerateReport(vis VisualSignals, beh BehavioralSignals, description string) TriageReport {
	var (
		flags ConcernSet
		score int
	)
	physical := []string{}
	behavioral := []string{}

	switch vis.BodyCondition {
	case BodyThin:
		physical = append(physical, visualPhrases["body_thin"])
		flags.Add(ConcernNutritional)
		score += scoreThin
	case BodySeverelyThin:
		physical = append(physical, visualPhrases["body_severely_thin"])
		flags.Add(ConcernNutritional)
		score += scoreSeverelyThin
	}

	if vis.OpenWound {
		physical = append(physical, visualPhrases["open_wound"])
		flags.Add(ConcernTrauma)
		score += scoreOpenWound
		if loc, ok := woundLocationPhrases[vis.WoundLocation]; ok {
			physical = append(physical, "Wound location: "+loc)
		}
	}

	if vis.InfectionRisk {
		physical = append(physical, visualPhrases["infection_risk"])
		flags.Add(ConcernInfectionRisk)
		score += scoreInfection
	}

	if vis.AbnormalPosture {
		physical = append(physical, visualPhrases["abnormal_posture"])
		flags.Add(ConcernPainDistress)
		score += scorePosture
	}

	if vis.LimbAsymmetry {
		physical = append(physical, visualPhrases["limb_asymmetry"])
		flags.Add(ConcernTrauma)
		score += scoreAsymmetry
	}

	if beh.Limping {
		behavioral = append(behavioral, behaviorPhrases["limping"])
		flags.Add(ConcernTrauma)
		flags.Add(ConcernPainDistress)
		score += scoreLimping
	}

	if beh.Lethargic {
		behavioral = append(behavioral, behaviorPhrases["lethargic"])
		flags.Add(ConcernPainDistress)
		score += scoreLethargic
	}

	if beh.Aggressive {
		behavioral = append(behavioral, behaviorPhrases["aggressive"])
		flags.Add(ConcernPainDistress)
		score += scoreAggressive
	}

	if beh.AvoidsContact {
		behavioral = append(behavioral, behaviorPhrases["avoids_contact"])
		score += scoreAvoidance
	}

	if beh.ExcessiveLicking {
		behavioral = append(behavioral, behaviorPhrases["excessive_licking"])
		flags.Add(ConcernInfectionRisk)
		score += scoreLicking
	}

	extraction := ExtractText(description)
	score += extraction.ScoreBoost

	urgency := Classify(score)

	return TriageReport{
		Urgency:                urgency,
		UrgencyScore:           score,
		PhysicalObservations:   physical,
		BehavioralObservations: behavioral,
		NLPObservations:        extraction.Observations,
		NLPMatched:             extraction.Matched,
		ConcernFlags:           flags,
		ConcernSummary:         flags.Summary(),
		Actions:                BuildActions(urgency, flags),
		Disclaimer:             Disclaimer,
	}
}
