package analysis

const (
	baseScore          = 50
	actionVerbBonus    = 2
	actionVerbBonusCap = 15
	maxScore           = 100
	minScore           = 0
)

// Score computes the ATS compatibility score for a token sequence.
// Starts at 50, adds the lexicon weight of each section found (experience
// 15, education 10, skills 10 in the default lexicon), then 2 points per
// distinct action verb capped at 15. Distinct verbs, not total occurrences:
// repeating "developed" ten times earns the same 2 points as once. The
// result is clamped to [0,100] and fully deterministic.
func (a *Analyzer) Score(tokens []string) int {
	present := tokenSet(tokens)

	score := baseScore
	for _, marker := range a.lex.SectionMarkers {
		if anyStemPresent(marker.TriggerStems, present) {
			score += marker.Weight
		}
	}

	distinctVerbs := 0
	for _, verb := range a.lex.ActionVerbs {
		if present[verb.Stem] > 0 {
			distinctVerbs++
		}
	}
	score += min(distinctVerbs*actionVerbBonus, actionVerbBonusCap)

	if score > maxScore {
		score = maxScore
	}
	if score < minScore {
		score = minScore
	}
	return score
}
