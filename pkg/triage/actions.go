package triage

// Triage-network contact directory. Static reference data reproduced from
// the Moldova deployment; fork these strings for other regions.
const (
	contactHigh   = "Contact: Societatea Zoologica din Moldova (+373 22 28 34 56) or Clinica Veterinara Vet-Pro Chisinau (+373 22 940 940)."
	contactMedium = "Contact: Adapostul pentru Animale Chisinau (+373 22 49 96 82) or local vet in Cricova."
	contactLow    = "Contact: Animal Rescue Chisinau volunteers or Cricova Community Vet Outreach."
)

// BuildActions composes the recommended action list for an urgency level and
// concern set. The order is fixed: two tier directives and the tier contact
// line, then one line per present concern (infection risk, nutritional,
// trauma; pain/distress adds none), then the documentation line. Every plan
// therefore has at least four entries.
func BuildActions(urgency Urgency, flags ConcernSet) []string {
	actions := make([]string, 0, 7)

	switch urgency {
	case UrgencyHigh:
		actions = append(actions,
			"Immediate veterinary assessment required. Do not delay triage.",
			"Isolate animal and minimize handling stress.",
			contactHigh,
		)
	case UrgencyMedium:
		actions = append(actions,
			"Schedule veterinary evaluation within 24-48 hours.",
			"Monitor for deterioration; isolate if reactive.",
			contactMedium,
		)
	default:
		actions = append(actions,
			"Routine intake evaluation recommended.",
			"Monitor for changes in condition or behavior.",
			contactLow,
		)
	}

	if flags.Has(ConcernInfectionRisk) {
		actions = append(actions, "Wound should be cleaned and assessed for debridement or antibiotic intervention.")
	}
	if flags.Has(ConcernNutritional) {
		actions = append(actions, "Initiate gradual refeeding protocol; avoid refeeding syndrome.")
	}
	if flags.Has(ConcernTrauma) {
		actions = append(actions, "Radiographic imaging recommended to assess for fractures or internal injuries.")
	}

	actions = append(actions, "Document all findings with timestamped photos for shelter records.")
	return actions
}
