package dictionary

// defaultPhrases is the fishing sample set offered by the "load examples"
// action.
var defaultPhrases = []string{
	"go fishing",
	"gone fishing",
	"fishing rod",
	"fishing line",
	"fishing trip",
	"fish on",
	"cast a line",
	"catch and release",
	"tight lines",
	"tight lines today",
	"bait and tackle",
	"buy bait",
	"reel it in",
	"set the hook",
	"the one that got away",
	"early morning bite",
	"fly fishing",
	"ice fishing",
	"deep sea fishing",
	"trout stream",
	"bass boat",
	"change the lure",
	"check the weather",
	"low tide",
	"high tide",
}

// DefaultPhrases returns a copy of the built-in sample phrases.
func DefaultPhrases() []string {
	out := make([]string, len(defaultPhrases))
	copy(out, defaultPhrases)
	return out
}

// Default returns the built-in sample set as a Dictionary.
func Default() *Dictionary {
	return &Dictionary{Phrases: DefaultPhrases()}
}
