package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// Category selects which family of suggestions to generate.
type Category string

// Supported suggestion categories.
const (
	CategoryATS      Category = "ats"
	CategoryVerbs    Category = "verbs"
	CategoryStar     Category = "star"
	CategoryKeywords Category = "keywords"
	CategoryGeneral  Category = "general"
)

// ParseCategory validates a category string from an API request or CLI flag.
// An empty string defaults to general; anything else outside the enumerated
// set is rejected.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryATS, CategoryVerbs, CategoryStar, CategoryKeywords, CategoryGeneral:
		return Category(s), nil
	case "":
		return CategoryGeneral, nil
	default:
		return "", &ErrUnsupportedCategory{Category: s}
	}
}

// SuggestionSet is an ordered list of up to maxSuggestions human-readable
// suggestions for one category, most impactful first.
type SuggestionSet struct {
	Category Category `json:"category"`
	Items    []string `json:"items"`
}

const maxSuggestions = 5

const maxListedKeywords = 5

// Fixed filler guidance per category. Each list carries exactly
// maxSuggestions entries so every branch returns a full set after the
// data-driven items are placed first and the result is truncated.
var (
	atsGuidance = []string{
		"Use standard section headings like 'Experience', 'Education', and 'Skills'",
		"Include quantifiable achievements (e.g., 'Increased performance by 30%')",
		"Keep formatting simple and avoid using headers/footers",
		"Save your resume in a widely parsed format such as PDF or DOCX",
		"Spell out acronyms at least once so automated scanners catch both forms",
	}

	verbGuidance = []string{
		"Start bullet points with action verbs in past tense for past roles",
		"Use present tense for current roles",
		"Vary your action verbs to make your resume more engaging",
		"Pair each action verb with a measurable outcome",
		"Avoid repeating the same verb in consecutive bullet points",
	}

	starGuidance = []string{
		"Use the STAR method (Situation, Task, Action, Result) to structure your bullet points",
		"For each achievement, explain the situation, your role, the actions you took, and the results you achieved",
		"Quantify your achievements with specific numbers and metrics when possible",
		"Focus on outcomes and impact rather than just responsibilities",
		"Use action verbs to start each bullet point in your experience section",
	}

	keywordGuidance = []string{
		"Ensure your skills section includes the required technologies",
		"Incorporate key terms naturally throughout your experience section",
		"Highlight relevant projects that demonstrate your expertise in these areas",
		"Mirror the job description's terminology for tools you have actually used",
		"List both the spelled-out and abbreviated forms of key technologies",
	}

	generalGuidance = []string{
		"Keep your resume concise (1-2 pages maximum)",
		"Use bullet points for better readability",
		"Include quantifiable achievements with numbers and metrics",
		"Tailor your resume for each job application",
		"Use a clean, professional format with consistent formatting",
	}
)

// missingSectionAdvice maps a section marker name to its "add this section"
// suggestion. Emission order follows the lexicon's marker order
// (experience, education, skills), which encodes the priority.
var missingSectionAdvice = map[string]string{
	"experience": "Add a dedicated 'Experience' section",
	"education":  "Include your education details",
	"skills":     "Add a 'Skills' section with relevant technologies",
}

// Suggest generates the ranked suggestion list for one category. Each call
// is an independent pure dispatch: data-driven suggestions first, fixed
// guidance after, truncated to five items. A job description that
// normalizes to zero tokens is treated as absent.
func (a *Analyzer) Suggest(category Category, content, jobDescription string) (SuggestionSet, error) {
	tokens := a.Tokenize(content)
	jdTokens := a.Tokenize(jobDescription)

	var items []string
	switch category {
	case CategoryATS:
		items = a.atsSuggestions(tokens, jdTokens)
	case CategoryVerbs:
		items = a.verbSuggestions(tokens)
	case CategoryStar:
		items = starGuidance
	case CategoryKeywords:
		items = a.keywordSuggestions(tokens, jdTokens)
	case CategoryGeneral:
		items = generalGuidance
	default:
		return SuggestionSet{}, &ErrUnsupportedCategory{Category: string(category)}
	}

	return SuggestionSet{Category: category, Items: truncate(items)}, nil
}

func (a *Analyzer) atsSuggestions(tokens, jdTokens []string) []string {
	present := tokenSet(tokens)

	var items []string
	for _, marker := range a.lex.SectionMarkers {
		if anyStemPresent(marker.TriggerStems, present) {
			continue
		}
		if advice, ok := missingSectionAdvice[marker.Name]; ok {
			items = append(items, advice)
		}
	}

	if len(jdTokens) > 0 {
		report := a.MatchKeywords(tokens, jdTokens)
		if len(report.Missing) > 0 {
			items = append(items, missingKeywordAdvice(report.Missing))
		}
	}

	return append(items, atsGuidance...)
}

func (a *Analyzer) verbSuggestions(tokens []string) []string {
	present := tokenSet(tokens)

	var items []string
	for _, weak := range a.lex.WeakVerbs {
		if present[weak.Stem] > 0 {
			items = append(items,
				fmt.Sprintf("Replace weak verbs like '%s' with stronger action verbs", weak.Verb),
				"Consider using more specific and impactful verbs to describe your achievements",
			)
			break
		}
	}

	return append(items, verbGuidance...)
}

func (a *Analyzer) keywordSuggestions(tokens, jdTokens []string) []string {
	if len(jdTokens) == 0 {
		return generalGuidance
	}

	var items []string
	report := a.MatchKeywords(tokens, jdTokens)
	if len(report.Missing) > 0 {
		items = append(items, missingKeywordAdvice(report.Missing))
	}

	return append(items, keywordGuidance...)
}

func missingKeywordAdvice(missing []string) string {
	listed := missing
	if len(listed) > maxListedKeywords {
		listed = listed[:maxListedKeywords]
	}
	return "Add these relevant keywords from the job description: " + strings.Join(listed, ", ")
}

func truncate(items []string) []string {
	if len(items) > maxSuggestions {
		return items[:maxSuggestions]
	}
	return items
}

// VerbReplacement pairs a weak verb found in the resume with a stronger
// suggested alternative and its occurrence count.
type VerbReplacement struct {
	Original   string `json:"original"`
	Suggestion string `json:"suggestion"`
	Count      int    `json:"count"`
}

// ActionVerbReplacements reports every weak verb present in the token
// sequence with the lexicon's suggested replacement, ordered by count
// descending then alphabetically. Empty when no weak verbs are found.
func (a *Analyzer) ActionVerbReplacements(tokens []string) []VerbReplacement {
	present := tokenSet(tokens)

	replacements := make([]VerbReplacement, 0, len(a.lex.WeakVerbs))
	for _, weak := range a.lex.WeakVerbs {
		if n := present[weak.Stem]; n > 0 {
			replacements = append(replacements, VerbReplacement{
				Original:   weak.Verb,
				Suggestion: weak.Replacement,
				Count:      n,
			})
		}
	}
	sort.SliceStable(replacements, func(i, j int) bool {
		if replacements[i].Count != replacements[j].Count {
			return replacements[i].Count > replacements[j].Count
		}
		return replacements[i].Original < replacements[j].Original
	})
	return replacements
}
