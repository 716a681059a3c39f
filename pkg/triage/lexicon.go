package triage

// The phrase tables below are the clinical wording used verbatim in reports.
// Changing any string changes every report produced from that signal.

var behaviorPhrases = map[string]string{
	"limping":           "Observed locomotion asymmetry consistent with limb pain or structural injury.",
	"lethargic":         "Subject displays marked reduction in activity and responsiveness; possible systemic illness or severe pain.",
	"aggressive":        "Defensive aggression noted; may indicate pain-induced reactivity or neurological involvement.",
	"avoids_contact":    "Contact avoidance behavior observed; consistent with fear response, pain sensitization, or prior trauma.",
	"excessive_licking": "Repetitive licking behavior noted at unspecified site; indicative of localized irritation, wound, or anxiety.",
}

var visualPhrases = map[string]string{
	"body_thin":          "Body condition score assessed as below-normal; visible prominence of ribs and/or spine suggesting suboptimal nutritional status.",
	"body_severely_thin": "Severe cachexia observed; marked muscle wasting, prominent bony prominences, and critically low body condition score.",
	"open_wound":         "Visible integumentary breach observed. Open wound presents infection risk and requires prompt evaluation.",
	"infection_risk":     "Signs consistent with infection risk: erythema, discharge, or tissue breakdown observed at wound site.",
	"abnormal_posture":   "Postural abnormality detected; guarded stance or spinal deviation may indicate musculoskeletal or neurological compromise.",
	"limb_asymmetry":     "Limb asymmetry or unequal weight distribution observed; consistent with fracture, dislocation, or soft tissue injury.",
}

var woundLocationPhrases = map[WoundLocation]string{
	WoundHead:     "Cranial or facial region.",
	WoundNeck:     "Cervical region.",
	WoundTorso:    "Thoracic or abdominal region.",
	WoundForelimb: "Forelimb; possible impact on gait and limb function.",
	WoundHindlimb: "Hindlimb; gait compromise likely.",
	WoundTail:     "Caudal region.",
}

var concernSummaries = map[Concern]string{
	ConcernTrauma:        "Physical trauma / structural injury",
	ConcernInfectionRisk: "Infection risk / wound contamination",
	ConcernNutritional:   "Nutritional deficiency / cachexia",
	ConcernPainDistress:  "Pain and/or systemic distress",
}

// severityTier buckets free-text keywords by clinical severity.
type severityTier string

const (
	tierCritical severityTier = "critical"
	tierHigh     severityTier = "high"
	tierMedium   severityTier = "medium"
	tierLow      severityTier = "low"
)

type symptomKeyword struct {
	tier   severityTier
	phrase string
	weight int
}

// symptomLexicon is scanned in a single pass, one entry at a time, so both
// match order and scoring are deterministic. Tiers are listed from critical
// down to low; phrases keep their table order within a tier. Entries are
// matched by plain substring containment: a phrase that contains another
// listed phrase as a substring counts twice on purpose.
var symptomLexicon = []symptomKeyword{
	{tierCritical, "heavy bleeding", 3},
	{tierCritical, "unconscious", 3},
	{tierCritical, "seizure", 3},
	{tierCritical, "hit by car", 3},
	{tierCritical, "cannot walk", 3},
	{tierCritical, "convulsing", 3},

	{tierHigh, "vomiting", 2},
	{tierHigh, "not eating", 2},
	{tierHigh, "diarrhea", 2},
	{tierHigh, "open sore", 2},
	{tierHigh, "discharge", 2},
	{tierHigh, "swollen", 2},
	{tierHigh, "crying in pain", 2},

	{tierMedium, "scratching", 1},
	{tierMedium, "coughing", 1},
	{tierMedium, "sneezing", 1},
	{tierMedium, "labored breathing", 1},
	{tierMedium, "itching", 1},

	{tierLow, "thirsty", 0},
	{tierLow, "hungry", 0},
	{tierLow, "friendly", 0},
	{tierLow, "curious", 0},
	{tierLow, "alert", 0},
}
