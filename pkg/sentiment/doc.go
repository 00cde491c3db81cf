// Package sentiment embeds the sentilex pipeline in a Go program.
//
// An Analyzer merges one or more dictionaries into a lexicon, splits and POS
// tags text, collapses the longest dictionary phrases and scores every
// sentence with the modifier rules: inc doubles, dec halves and inv flips the
// sign of the expression that follows.
//
//	a, err := sentiment.New(
//	    sentiment.WithDictionaryFiles("dicts/positive.yml", "dicts/negative.yml", "dicts/inv.yml"),
//	    sentiment.WithDictionary("extra", map[string][]string{"meh": {"negative"}}),
//	)
//	res, err := a.Analyze(ctx, "The food was not good.")
//	fmt.Println(res.Line) // Negative | Score: -1.0 | The food was not good.
//
// The Analyzer is read-only after New and safe for concurrent use.
package sentiment
