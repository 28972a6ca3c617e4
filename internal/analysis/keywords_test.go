package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKeywords_PartitionsJDKeywords(t *testing.T) {
	a := newTestAnalyzer()

	resume := a.Tokenize("Experienced with JavaScript and React")
	jd := a.Tokenize("Looking for JavaScript, React, and Python developers")

	report := a.MatchKeywords(resume, jd)
	assert.Equal(t, []string{"JavaScript", "React"}, report.Matched)
	assert.Equal(t, []string{"Python"}, report.Missing)
	assert.Equal(t, 67, report.MatchPercentage)
}

func TestMatchKeywords_EmptyJobDescription(t *testing.T) {
	a := newTestAnalyzer()

	resume := a.Tokenize("JavaScript and React")

	for _, jd := range []string{"", "   ", "the and with"} {
		report := a.MatchKeywords(resume, a.Tokenize(jd))
		assert.Empty(t, report.Matched)
		assert.Empty(t, report.Missing)
		assert.Equal(t, 0, report.MatchPercentage)
	}
}

func TestMatchKeywords_IgnoresNonLexiconTerms(t *testing.T) {
	a := newTestAnalyzer()

	// "Elixir" is not a lexicon keyword; it contributes nothing even
	// though it appears in both texts.
	resume := a.Tokenize("Elixir and Python")
	jd := a.Tokenize("Elixir and Python required")

	report := a.MatchKeywords(resume, jd)
	assert.Equal(t, []string{"Python"}, report.Matched)
	assert.Empty(t, report.Missing)
	assert.Equal(t, 100, report.MatchPercentage)
}

func TestMatchKeywords_AllMissing(t *testing.T) {
	a := newTestAnalyzer()

	resume := a.Tokenize("Managed a bakery")
	jd := a.Tokenize("Kubernetes and Docker expertise")

	report := a.MatchKeywords(resume, jd)
	assert.Empty(t, report.Matched)
	assert.Equal(t, []string{"Docker", "Kubernetes"}, report.Missing)
	assert.Equal(t, 0, report.MatchPercentage)
}

func TestMatchKeywords_CanonicalOrderRegardlessOfJDPhrasing(t *testing.T) {
	a := newTestAnalyzer()

	resume := a.Tokenize("Python, JavaScript, Docker and SQL")
	first := a.MatchKeywords(resume, a.Tokenize("SQL Docker JavaScript Python"))
	second := a.MatchKeywords(resume, a.Tokenize("Python JavaScript Docker SQL"))

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"JavaScript", "Python", "SQL", "Docker"}, first.Matched)
}

func TestMatchKeywords_UnmatchableKeywordNeverRelevant(t *testing.T) {
	a := newTestAnalyzer()

	// CI/CD normalizes to zero tokens, so it cannot appear in a report
	// even when the literal text is present in both documents.
	resume := a.Tokenize("Built CI/CD pipelines with Docker")
	jd := a.Tokenize("CI/CD and Docker experience")

	report := a.MatchKeywords(resume, jd)
	assert.Equal(t, []string{"Docker"}, report.Matched)
	assert.NotContains(t, report.Matched, "CI/CD")
	assert.NotContains(t, report.Missing, "CI/CD")
}
