// Package analysis implements the resume text-analysis pipeline: feature
// extraction, ATS-style scoring, keyword matching against a job description,
// and suggestion generation. Every operation is a pure function over its
// inputs plus the immutable lexicon, so a single Analyzer serves any number
// of concurrent requests without coordination.
package analysis

import (
	"sort"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/textproc"
)

// Analyzer binds the lexicon and its tokenizer. Construct once, share freely.
type Analyzer struct {
	lex *lexicon.Lexicon
	tok *textproc.Tokenizer
}

// New creates an Analyzer over the given lexicon.
func New(lex *lexicon.Lexicon) *Analyzer {
	return &Analyzer{
		lex: lex,
		tok: textproc.NewTokenizer(lex.Stopwords),
	}
}

// VerbCount is one entry of the action-verb histogram.
type VerbCount struct {
	Verb  string `json:"verb"`
	Count int    `json:"count"`
}

// ExperienceEntry is a best-effort "title at company" capture from the
// experience section. See records.go for the heuristic's limits.
type ExperienceEntry struct {
	Title   string `json:"title"`
	Company string `json:"company"`
}

// EducationEntry is a best-effort "degree, institution" capture from the
// education section.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
}

// Result holds the structured features extracted from one resume.
type Result struct {
	Skills          []string          `json:"skills"`
	SoftSkills      []string          `json:"soft_skills"`
	SectionsPresent []string          `json:"sections_present"`
	ActionVerbs     []VerbCount       `json:"action_verbs"`
	Experience      []ExperienceEntry `json:"experience"`
	Education       []EducationEntry  `json:"education"`
	ATSScore        int               `json:"ats_score"`
}

// Tokenize normalizes raw text into the stemmed token sequence the rest of
// the pipeline consumes.
func (a *Analyzer) Tokenize(text string) []string {
	return a.tok.Tokenize(text)
}

// Analyze runs the full feature extraction plus scoring over one resume.
// Empty content is a valid degenerate case: no sections, no skills, base
// score.
func (a *Analyzer) Analyze(content string) Result {
	tokens := a.Tokenize(content)
	result := a.ExtractFeatures(tokens, content)
	result.ATSScore = a.Score(tokens)
	return result
}

// ExtractFeatures derives the structured features from a token sequence.
// rawText is consulted only by the regex-based experience/education
// heuristics; token-derived features use tokens alone.
func (a *Analyzer) ExtractFeatures(tokens []string, rawText string) Result {
	present := tokenSet(tokens)
	return Result{
		Skills:          matchLexiconKeywords(a.lex.TechnicalKeywords, present),
		SoftSkills:      matchLexiconKeywords(a.lex.SoftSkillKeywords, present),
		SectionsPresent: a.sectionsPresent(present),
		ActionVerbs:     a.actionVerbCounts(tokens),
		Experience:      extractExperienceEntries(rawText),
		Education:       extractEducationEntries(rawText),
	}
}

// sectionsPresent reports which section markers have at least one trigger
// stem in the token set. This is a heuristic, not a structural parse; a
// resume mentioning "work" anywhere counts as having an experience section.
func (a *Analyzer) sectionsPresent(present map[string]int) []string {
	sections := make([]string, 0, len(a.lex.SectionMarkers))
	for _, marker := range a.lex.SectionMarkers {
		if anyStemPresent(marker.TriggerStems, present) {
			sections = append(sections, marker.Name)
		}
	}
	return sections
}

// actionVerbCounts builds the per-verb occurrence histogram, sorted by
// count descending with alphabetical tie-breaking. Verbs with zero
// occurrences are excluded.
func (a *Analyzer) actionVerbCounts(tokens []string) []VerbCount {
	present := tokenSet(tokens)
	counts := make([]VerbCount, 0, len(a.lex.ActionVerbs))
	for _, verb := range a.lex.ActionVerbs {
		if n := present[verb.Stem]; n > 0 {
			counts = append(counts, VerbCount{Verb: verb.Verb, Count: n})
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Verb < counts[j].Verb
	})
	return counts
}

// matchLexiconKeywords returns the canonical names of keywords with at
// least one stem in the token set, preserving lexicon order.
func matchLexiconKeywords(keywords []lexicon.Keyword, present map[string]int) []string {
	matched := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if anyStemPresent(kw.Stems, present) {
			matched = append(matched, kw.Name)
		}
	}
	return matched
}

func anyStemPresent(stems []string, present map[string]int) bool {
	for _, stem := range stems {
		if present[stem] > 0 {
			return true
		}
	}
	return false
}

// tokenSet folds a token sequence into occurrence counts.
func tokenSet(tokens []string) map[string]int {
	set := make(map[string]int, len(tokens))
	for _, t := range tokens {
		set[t]++
	}
	return set
}
