// Package lexicon provides the static reference vocabulary used to analyze
// resume text: action verbs, weak verbs, technical and soft-skill keywords,
// section markers and stopwords. The default lexicon is embedded at compile
// time and validated against a JSON Schema; an alternate file may be loaded
// at startup for deployment-time content changes. A loaded Lexicon is never
// mutated and is safe to share across all analysis calls.
package lexicon

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-analyzer/internal/textproc"
)

//go:embed lexicon.json lexicon.schema.json
var files embed.FS

// ActionVerb is a strong resume verb in its canonical (past tense) form,
// plus the stem it is matched by.
type ActionVerb struct {
	Verb string
	Stem string
}

// WeakVerb is a verb that weakens resume bullets, with a suggested
// stronger replacement.
type WeakVerb struct {
	Verb        string
	Replacement string
	Stem        string
}

// Keyword is a technical or soft-skill term in its canonical display form.
// Stems holds the stemmed tokens of the term; a keyword is considered
// present in a token sequence when any of its stems occurs there. Terms
// whose tokens are all filtered out (too short, non-alphabetic) have an
// empty Stems slice and can never match.
type Keyword struct {
	Name  string
	Stems []string
}

// SectionMarker identifies a structurally important resume section by a
// set of trigger stems, with the ATS score weight the section carries.
type SectionMarker struct {
	Name         string
	Weight       int
	TriggerStems []string
}

// Lexicon is the full, immutable reference vocabulary. Slices preserve the
// canonical order of the source file; keyword-report ordering depends on it.
type Lexicon struct {
	ActionVerbs       []ActionVerb
	WeakVerbs         []WeakVerb
	TechnicalKeywords []Keyword
	SoftSkillKeywords []Keyword
	SectionMarkers    []SectionMarker
	Stopwords         []string
}

// lexiconFile mirrors the JSON layout of lexicon.json.
type lexiconFile struct {
	ActionVerbs []string `json:"action_verbs"`
	WeakVerbs   []struct {
		Verb        string `json:"verb"`
		Replacement string `json:"replacement"`
	} `json:"weak_verbs"`
	TechnicalKeywords []string `json:"technical_keywords"`
	SoftSkillKeywords []string `json:"soft_skill_keywords"`
	SectionMarkers    []struct {
		Name     string   `json:"name"`
		Weight   int      `json:"weight"`
		Triggers []string `json:"triggers"`
	} `json:"section_markers"`
	Stopwords []string `json:"stopwords"`
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the embedded lexicon, parsed once per process. The
// embedded data is validated at build of this package's tests; a parse
// failure here is a programming error, so Default panics rather than
// returning an error every caller would have to thread through.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		data, err := files.ReadFile("lexicon.json")
		if err != nil {
			panic(fmt.Sprintf("embedded lexicon missing: %v", err))
		}
		lex, err := parse(data)
		if err != nil {
			panic(fmt.Sprintf("embedded lexicon invalid: %v", err))
		}
		defaultLex = lex
	})
	return defaultLex
}

// LoadFile loads and validates a lexicon from an external JSON file.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}
	lex, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid lexicon file %s: %w", path, err)
	}
	return lex, nil
}

// parse validates the raw JSON against the embedded schema, then compiles
// the vocabulary: every verb, keyword and section trigger is stemmed with
// the same stemmer the tokenizer uses, so lexicon stems and token stems
// cannot drift apart.
func parse(data []byte) (*Lexicon, error) {
	schema, err := files.ReadFile("lexicon.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded schema: %w", err)
	}
	if err := validateAgainstSchema(schema, data); err != nil {
		return nil, err
	}

	var raw lexiconFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon JSON: %w", err)
	}

	tok := textproc.NewTokenizer(raw.Stopwords)

	lex := &Lexicon{
		ActionVerbs:       make([]ActionVerb, 0, len(raw.ActionVerbs)),
		WeakVerbs:         make([]WeakVerb, 0, len(raw.WeakVerbs)),
		TechnicalKeywords: make([]Keyword, 0, len(raw.TechnicalKeywords)),
		SoftSkillKeywords: make([]Keyword, 0, len(raw.SoftSkillKeywords)),
		SectionMarkers:    make([]SectionMarker, 0, len(raw.SectionMarkers)),
		Stopwords:         raw.Stopwords,
	}

	for _, v := range raw.ActionVerbs {
		lex.ActionVerbs = append(lex.ActionVerbs, ActionVerb{Verb: v, Stem: textproc.Stem(v)})
	}
	for _, w := range raw.WeakVerbs {
		lex.WeakVerbs = append(lex.WeakVerbs, WeakVerb{
			Verb:        w.Verb,
			Replacement: w.Replacement,
			Stem:        textproc.Stem(w.Verb),
		})
	}
	for _, k := range raw.TechnicalKeywords {
		lex.TechnicalKeywords = append(lex.TechnicalKeywords, Keyword{Name: k, Stems: tok.Tokenize(k)})
	}
	for _, k := range raw.SoftSkillKeywords {
		lex.SoftSkillKeywords = append(lex.SoftSkillKeywords, Keyword{Name: k, Stems: tok.Tokenize(k)})
	}
	for _, m := range raw.SectionMarkers {
		stems := make([]string, 0, len(m.Triggers))
		for _, trigger := range m.Triggers {
			stems = append(stems, textproc.Stem(trigger))
		}
		lex.SectionMarkers = append(lex.SectionMarkers, SectionMarker{
			Name:         m.Name,
			Weight:       m.Weight,
			TriggerStems: stems,
		})
	}

	return lex, nil
}

// ValidationError reports lexicon content that does not conform to the schema.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("lexicon validation failed: %v", e.Errors)
}

func validateAgainstSchema(schema, document []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed during load: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Errors: make([]string, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return verr
}
