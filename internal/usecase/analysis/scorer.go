package analysis

import (
	"github.com/kailas-cloud/sentilex/internal/domain/expression"
	"github.com/kailas-cloud/sentilex/internal/domain/sentiment"
)

// Modifier factors applied to the expression following a modifier.
const (
	increaseFactor = 2.0
	decreaseFactor = 2.0
	invertFactor   = -1.0
)

// ValueOf returns the direct polarity value of a tag. Modifiers and POS tags
// contribute nothing directly.
func ValueOf(tag string) float64 {
	switch tag {
	case sentiment.TagPositive:
		return 1
	case sentiment.TagNegative:
		return -1
	default:
		return 0
	}
}

// ScoreSentence folds a sentence left to right. Each expression scores the
// sum of its tag values, then is scaled by the modifier carried by the
// previous expression: inc doubles, dec halves, inv flips the sign. Only the
// first of inc, dec, inv present on the previous expression applies.
func ScoreSentence(sentence expression.Sentence) float64 {
	var total float64
	var prev *expression.Expression

	for i := range sentence {
		cur := &sentence[i]

		var s float64
		for _, tag := range cur.Tags() {
			s += ValueOf(tag)
		}

		if prev != nil {
			switch {
			case prev.HasTag(sentiment.TagIncrease):
				s *= increaseFactor
			case prev.HasTag(sentiment.TagDecrease):
				s /= decreaseFactor
			case prev.HasTag(sentiment.TagInvert):
				s *= invertFactor
			}
		}

		total += s
		prev = cur
	}
	return total
}

// ScoreDocument scores every sentence independently (the modifier state does
// not cross sentence boundaries) and sums the scores in sentence order.
func ScoreDocument(sentences []expression.Sentence) (float64, []float64) {
	perSentence := make([]float64, len(sentences))
	var total float64
	for i, s := range sentences {
		perSentence[i] = ScoreSentence(s)
		total += perSentence[i]
	}
	return total, perSentence
}
