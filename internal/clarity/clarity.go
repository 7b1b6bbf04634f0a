// Package clarity scores how clear and answerable a help request reads.
//
// The score is a small additive heuristic, not a language model: longer
// text, a question mark and a question word each add a point on top of a
// base of 5. Keyword checks are case-sensitive substring matches, so
// "somehow" counts as containing "how" while "How" does not.
package clarity

import (
	"strings"
	"unicode/utf8"
)

const (
	// Base is the score of text that triggers no bonus, including "".
	Base = 5
	// Max is the upper bound of any score.
	Max = 10
)

const (
	shortThreshold = 20
	longThreshold  = 50
)

var questionWords = []string{"how", "what", "why"}

// Score returns the clarity score of text, always in [0, Max].
// Length is counted in characters (runes), not bytes.
func Score(text string) int {
	score := Base
	n := utf8.RuneCountInString(text)

	if n > shortThreshold {
		score++
	}
	if strings.Contains(text, "?") {
		score++
	}
	if hasQuestionWord(text) {
		score++
	}
	if n > longThreshold {
		score++
	}
	return min(score, Max)
}

func hasQuestionWord(text string) bool {
	for _, w := range questionWords {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
