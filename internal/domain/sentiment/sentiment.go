package sentiment

// Classification is the polarity bucket of a document score.
type Classification string

// Classification constants.
const (
	Positive Classification = "Positive"
	Negative Classification = "Negative"
	Neutral  Classification = "Neutral"
)

// Polarity and modifier tags understood by the scorer.
const (
	TagPositive = "positive"
	TagNegative = "negative"
	// TagIncrease doubles the score of the next expression.
	TagIncrease = "inc"
	// TagDecrease halves the score of the next expression.
	TagDecrease = "dec"
	// TagInvert flips the sign of the next expression.
	TagInvert = "inv"
)

// Classify maps a score to a classification.
// Zero is compared exactly: any non-zero score has a polarity.
func Classify(score float64) Classification {
	switch {
	case score > 0:
		return Positive
	case score < 0:
		return Negative
	default:
		return Neutral
	}
}

// IsValid checks if the classification is one of the supported values.
func (c Classification) IsValid() bool {
	return c == Positive || c == Negative || c == Neutral
}
