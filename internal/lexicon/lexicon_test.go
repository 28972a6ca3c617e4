package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ParsesEmbeddedLexicon(t *testing.T) {
	lex := Default()
	require.NotNil(t, lex)

	assert.NotEmpty(t, lex.ActionVerbs)
	assert.NotEmpty(t, lex.WeakVerbs)
	assert.NotEmpty(t, lex.TechnicalKeywords)
	assert.NotEmpty(t, lex.SoftSkillKeywords)
	assert.Len(t, lex.SectionMarkers, 3)
	assert.NotEmpty(t, lex.Stopwords)

	// Default() is memoized
	assert.Same(t, lex, Default())
}

func TestDefault_StemsComputedAtLoad(t *testing.T) {
	lex := Default()

	stems := make(map[string]string)
	for _, v := range lex.ActionVerbs {
		stems[v.Verb] = v.Stem
	}
	assert.Equal(t, "develop", stems["developed"])
	assert.Equal(t, "manag", stems["managed"])
	assert.Equal(t, "implement", stems["implemented"])

	for _, w := range lex.WeakVerbs {
		assert.NotEmpty(t, w.Stem, "weak verb %q has no stem", w.Verb)
		assert.NotEmpty(t, w.Replacement, "weak verb %q has no replacement", w.Verb)
	}
}

func TestDefault_SectionMarkerWeights(t *testing.T) {
	lex := Default()

	weights := make(map[string]int)
	for _, m := range lex.SectionMarkers {
		weights[m.Name] = m.Weight
		assert.NotEmpty(t, m.TriggerStems)
	}
	assert.Equal(t, 15, weights["experience"])
	assert.Equal(t, 10, weights["education"])
	assert.Equal(t, 10, weights["skills"])
}

func TestDefault_KeywordStemCompilation(t *testing.T) {
	lex := Default()

	stems := make(map[string][]string)
	for _, k := range lex.TechnicalKeywords {
		stems[k.Name] = k.Stems
	}

	assert.Equal(t, []string{"javascript"}, stems["JavaScript"])
	// "js" is a 2-char token and is dropped
	assert.Equal(t, []string{"node"}, stems["Node.js"])
	// both halves of CI/CD are dropped, so it can never match
	assert.Empty(t, stems["CI/CD"])
}

func TestDefault_WeakVerbsNotStopwords(t *testing.T) {
	lex := Default()

	stopwords := make(map[string]bool, len(lex.Stopwords))
	for _, w := range lex.Stopwords {
		stopwords[w] = true
	}
	for _, weak := range lex.WeakVerbs {
		assert.False(t, stopwords[weak.Verb],
			"weak verb %q would be filtered before detection", weak.Verb)
	}
}

func TestLoadFile_ValidLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.json")
	content := `{
		"action_verbs": ["built"],
		"weak_verbs": [{"verb": "did", "replacement": "implemented"}],
		"technical_keywords": ["Go"],
		"soft_skill_keywords": ["Leadership"],
		"section_markers": [
			{"name": "experience", "weight": 15, "triggers": ["experience"]}
		],
		"stopwords": ["the"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	lex, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "built", lex.ActionVerbs[0].Verb)
	assert.Equal(t, "built", lex.ActionVerbs[0].Stem)
	assert.Equal(t, "experience", lex.SectionMarkers[0].Name)
	assert.Equal(t, []string{"experi"}, lex.SectionMarkers[0].TriggerStems)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadFile_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	// missing every required key
	require.NoError(t, os.WriteFile(path, []byte(`{"action_verbs": []}`), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.NotEmpty(t, verr.Errors)
}

func TestLoadFile_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "malformed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
