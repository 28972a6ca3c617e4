package analysis

import (
	"regexp"
	"strings"
)

// Best-effort structured extraction from free-form resume text. These are
// pattern-matching heuristics over capitalized "Title at Company" /
// "Degree, Institution" lines inside the relevant section region; they
// produce a low-confidence list and their only failure mode is returning
// nothing. They never error.
var (
	experienceStartRe = regexp.MustCompile(`(?i)\b(work|experience|employment)\b`)
	experienceEndRe   = regexp.MustCompile(`(?i)\b(education|skills)\b`)
	educationStartRe  = regexp.MustCompile(`(?i)\b(education|academic)\b`)
	educationEndRe    = regexp.MustCompile(`(?i)\b(skills|experience)\b`)

	// Captures "Software Engineer at Google", "Staff Engineer, Stripe" or
	// "Research Assistant (MIT Media Lab" style lines.
	recordRe = regexp.MustCompile(`(?m)^[ \t]*([A-Z][A-Za-z ]+?)(?:\s+at\s+|,\s*|\()([A-Z][A-Za-z&,. ]+)`)
)

func extractExperienceEntries(rawText string) []ExperienceEntry {
	entries := []ExperienceEntry{}
	for _, rec := range extractRecords(rawText, experienceStartRe, experienceEndRe) {
		entries = append(entries, ExperienceEntry{Title: rec[0], Company: rec[1]})
	}
	return entries
}

func extractEducationEntries(rawText string) []EducationEntry {
	entries := []EducationEntry{}
	for _, rec := range extractRecords(rawText, educationStartRe, educationEndRe) {
		entries = append(entries, EducationEntry{Degree: rec[0], Institution: rec[1]})
	}
	return entries
}

// extractRecords slices out the section region between the start marker and
// the next section marker (or end of text), then applies the line pattern.
// Go's RE2 engine has no lookahead, so the region is located explicitly
// instead of with a lookahead anchor.
func extractRecords(rawText string, startRe, endRe *regexp.Regexp) [][2]string {
	loc := startRe.FindStringIndex(rawText)
	if loc == nil {
		return nil
	}
	region := rawText[loc[1]:]
	if end := endRe.FindStringIndex(region); end != nil {
		region = region[:end[0]]
	}

	var records [][2]string
	for _, m := range recordRe.FindAllStringSubmatch(region, -1) {
		first := strings.TrimSpace(m[1])
		second := cleanInstitutionName(m[2])
		if first == "" || second == "" {
			continue
		}
		records = append(records, [2]string{first, second})
	}
	return records
}

// cleanInstitutionName cuts trailing qualifiers ("Google, Mountain View"
// keeps "Google") and stray punctuation from a captured company or
// institution name.
func cleanInstitutionName(name string) string {
	if idx := strings.IndexAny(name, ",("); idx >= 0 {
		name = name[:idx]
	}
	return strings.Trim(strings.TrimSpace(name), ".")
}
