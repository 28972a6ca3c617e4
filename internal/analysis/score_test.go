package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
)

func newTestAnalyzer() *Analyzer {
	return New(lexicon.Default())
}

func TestScore_EmptyContentGetsBaseScore(t *testing.T) {
	a := newTestAnalyzer()

	assert.Equal(t, 50, a.Score(a.Tokenize("")))
	assert.Equal(t, 50, a.Score(a.Tokenize("the and with")))
}

func TestScore_FullResume(t *testing.T) {
	a := newTestAnalyzer()

	content := "Experience: developed and implemented new systems. " +
		"Education: BS Computer Science. Skills: JavaScript, React."

	// 50 base + 15 experience + 10 education + 10 skills
	// + 2 points each for two distinct action verbs
	assert.Equal(t, 89, a.Score(a.Tokenize(content)))
}

func TestScore_Deterministic(t *testing.T) {
	a := newTestAnalyzer()

	content := "Experience: led a team. Skills: Python, Docker."
	tokens := a.Tokenize(content)

	first := a.Score(tokens)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, a.Score(a.Tokenize(content)))
	}
}

func TestScore_ActionVerbBonusCapped(t *testing.T) {
	a := newTestAnalyzer()

	// 9 distinct action verbs would earn 18 points uncapped
	verbs := "achieved analyzed built created designed developed engineered improved launched"
	score := a.Score(a.Tokenize(verbs))
	assert.Equal(t, 50+15, score)
}

func TestScore_RepeatedVerbCountsOnce(t *testing.T) {
	a := newTestAnalyzer()

	once := a.Score(a.Tokenize("developed"))
	many := a.Score(a.Tokenize(strings.Repeat("developed ", 10)))
	assert.Equal(t, once, many)
	assert.Equal(t, 52, once)
}

func TestScore_NeverExceedsMaximum(t *testing.T) {
	a := newTestAnalyzer()

	// All sections plus more than enough verbs: 50+35+15 lands exactly
	// on the ceiling.
	content := "experience education skills " +
		"achieved analyzed built created designed developed engineered improved " +
		"launched led managed optimized produced reduced resolved"
	score := a.Score(a.Tokenize(content))
	assert.Equal(t, 100, score)
}
