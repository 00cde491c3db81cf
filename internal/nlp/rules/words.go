package rules

// closedClass maps function words and frequent open-class words to Penn tags.
var closedClass = map[string]string{}

// lemmas holds irregular forms; every other lemma is the lower-cased surface.
var lemmas = map[string]string{
	"n't": "not", "ca": "can", "wo": "will", "sha": "shall",
	"'m": "be", "'re": "be", "am": "be", "is": "be", "are": "be", "was": "be", "were": "be",
	"been": "be", "being": "be",
	"'ve": "have", "has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "doing": "do", "done": "do",
	"'ll": "will",
}

func init() {
	groups := []struct {
		tag   string
		words []string
	}{
		{"DT", []string{"the", "a", "an", "this", "that", "these", "those", "some", "any", "no",
			"every", "each", "all", "both", "another", "either", "neither"}},
		{"PRP$", []string{"my", "your", "his", "her", "its", "our", "their"}},
		{"PRP", []string{"i", "you", "he", "she", "it", "we", "they", "me", "him", "us", "them",
			"myself", "yourself", "himself", "herself", "itself", "ourselves", "themselves"}},
		{"IN", []string{"in", "on", "at", "for", "with", "by", "from", "of", "about", "into",
			"through", "during", "before", "after", "above", "below", "between", "under", "over",
			"against", "among", "around", "behind", "beside", "beyond", "near", "toward", "towards",
			"upon", "within", "without", "across", "along", "inside", "outside", "throughout",
			"because", "although", "though", "while", "if", "unless", "until", "since", "whether", "than", "like"}},
		{"TO", []string{"to"}},
		{"CC", []string{"and", "or", "but", "nor", "yet", "so", "plus"}},
		{"MD", []string{"can", "could", "will", "would", "shall", "should", "may", "might", "must",
			"ca", "wo", "sha", "'ll", "'d"}},
		{"WDT", []string{"which", "whatever", "whichever"}},
		{"WP", []string{"who", "whom", "what", "whoever"}},
		{"WP$", []string{"whose"}},
		{"WRB", []string{"when", "where", "why", "how"}},
		{"EX", []string{"there"}},
		{"VB", []string{"be", "have", "do"}},
		{"VBP", []string{"am", "are", "'m", "'re", "'ve"}},
		{"VBZ", []string{"is", "has", "does"}},
		{"VBD", []string{"was", "were", "had", "did", "went", "came", "said", "saw", "knew",
			"took", "got", "made", "thought", "felt", "told", "gave", "found", "left", "bought"}},
		{"VBN", []string{"been", "done", "gone", "seen", "known", "taken", "given", "written"}},
		{"VBG", []string{"being", "having", "doing"}},
		{"RB", []string{"not", "n't", "never", "very", "quite", "rather", "really", "too", "just",
			"only", "now", "then", "here", "always", "often", "sometimes", "already", "still",
			"even", "also", "almost", "barely", "hardly", "extremely", "somewhat", "again", "ever",
			"well", "pretty", "so", "much"}},
		{"JJ", []string{"good", "bad", "great", "new", "old", "small", "large", "big", "little",
			"long", "short", "high", "low", "nice", "fine", "poor", "awful", "terrible", "excellent",
			"happy", "sad", "best", "worst", "better", "worse", "horrible", "amazing", "boring",
			"fun", "slow", "fast", "cheap", "expensive", "perfect", "ok", "okay"}},
		{"UH", []string{"oh", "wow", "yes", "hey", "ah", "ouch", "hmm", "alas"}},
		{"POS", []string{"'s"}},
	}
	for _, g := range groups {
		for _, w := range g.words {
			if _, ok := closedClass[w]; !ok {
				closedClass[w] = g.tag
			}
		}
	}
}

var punctTags = map[string]string{
	".": ".", "!": ".", "?": ".",
	",": ",",
	":": ":", ";": ":", "...": ":", "…": ":", "-": ":", "--": ":",
	"(": "(", "[": "(", "{": "(",
	")": ")", "]": ")", "}": ")",
	`"`: "''", "“": "``", "”": "''", "'": "''", "`": "``",
	"$": "$", "#": "#",
}

var suffixTags = []struct {
	suffix string
	tag    string
}{
	{"ly", "RB"},
	{"ing", "VBG"},
	{"ed", "VBD"},
	{"ness", "NN"},
	{"tion", "NN"},
	{"sion", "NN"},
	{"ment", "NN"},
	{"ity", "NN"},
	{"ful", "JJ"},
	{"less", "JJ"},
	{"ous", "JJ"},
	{"ive", "JJ"},
	{"able", "JJ"},
	{"ible", "JJ"},
	{"ish", "JJ"},
	{"ic", "JJ"},
	{"al", "JJ"},
	{"ize", "VB"},
	{"ise", "VB"},
	{"er", "NN"},
	{"or", "NN"},
}
