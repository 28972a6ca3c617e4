package analysis

import "math"

// KeywordReport compares resume content against a job description in terms
// of the lexicon's technical keywords. Matched and Missing partition the
// set of JD-relevant keywords and both keep the lexicon's canonical order,
// so the report is reproducible regardless of job-description phrasing.
type KeywordReport struct {
	Matched         []string `json:"matched"`
	Missing         []string `json:"missing"`
	MatchPercentage int      `json:"match_percentage"`
}

// MatchKeywords classifies every technical keyword that appears in the job
// description as matched or missing depending on whether it also appears in
// the resume. Presence means any of the keyword's stemmed tokens occurs in
// the token sequence, the same policy feature extraction uses. A job
// description with no tokens (absent, or nothing survives normalization)
// yields an empty report with 0%, which callers treat as "no job
// description supplied" rather than an error.
func (a *Analyzer) MatchKeywords(resumeTokens, jobDescriptionTokens []string) KeywordReport {
	report := KeywordReport{
		Matched: []string{},
		Missing: []string{},
	}
	if len(jobDescriptionTokens) == 0 {
		return report
	}

	resumeSet := tokenSet(resumeTokens)
	jdSet := tokenSet(jobDescriptionTokens)

	for _, kw := range a.lex.TechnicalKeywords {
		// Keywords with no surviving stems can never be relevant.
		if len(kw.Stems) == 0 || !anyStemPresent(kw.Stems, jdSet) {
			continue
		}
		if anyStemPresent(kw.Stems, resumeSet) {
			report.Matched = append(report.Matched, kw.Name)
		} else {
			report.Missing = append(report.Missing, kw.Name)
		}
	}

	total := len(report.Matched) + len(report.Missing)
	if total > 0 {
		report.MatchPercentage = int(math.Round(100 * float64(len(report.Matched)) / float64(total)))
	}
	return report
}
