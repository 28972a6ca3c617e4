package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_NormalizesAndStems(t *testing.T) {
	tok := NewTokenizer([]string{"the", "and"})

	tokens := tok.Tokenize("The developer developed and improved systems")
	assert.Equal(t, []string{"develop", "develop", "improv", "system"}, tokens)
}

func TestTokenize_DropsShortAndNonAlphabeticTokens(t *testing.T) {
	tok := NewTokenizer(nil)

	// "CI/CD" splits into two 2-char runs, both dropped. Digits split
	// "web3" into a short run. Accented words are not pure a-z.
	tokens := tok.Tokenize("CI/CD web3 café engineering")
	assert.Equal(t, []string{"web", "engin"}, tokens)
}

func TestTokenize_StopwordsMatchBeforeStemming(t *testing.T) {
	tok := NewTokenizer([]string{"working"})

	// "working" is removed as a stopword; "worked" survives and stems.
	tokens := tok.Tokenize("working worked")
	assert.Equal(t, []string{"work"}, tokens)
}

func TestTokenize_EmptyInput(t *testing.T) {
	tok := NewTokenizer(nil)

	assert.Empty(t, tok.Tokenize(""))
	assert.Empty(t, tok.Tokenize("   \n\t  "))
	assert.NotNil(t, tok.Tokenize(""))
}

func TestStem_KnownForms(t *testing.T) {
	cases := map[string]string{
		"developed":   "develop",
		"experience":  "experi",
		"education":   "educ",
		"skills":      "skill",
		"managed":     "manag",
		"management":  "manag",
		"implemented": "implement",
		"go":          "go",
	}
	for word, want := range cases {
		assert.Equal(t, want, Stem(word), "stem of %q", word)
	}
}

func TestTokenize_CaseInsensitive(t *testing.T) {
	tok := NewTokenizer([]string{"the"})

	assert.Equal(t, tok.Tokenize("DEVELOPED THE SYSTEM"), tok.Tokenize("developed the system"))
}
