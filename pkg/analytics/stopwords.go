package analytics

// stopWords is the fixed policy list of common words excluded from title
// frequency analysis. It is deliberately not configurable at call time.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "with": {}, "this": {},
	"that": {}, "from": {}, "they": {}, "been": {}, "have": {}, "were": {},
	"said": {}, "each": {}, "which": {}, "their": {}, "time": {}, "will": {},
	"about": {}, "can": {}, "may": {}, "use": {}, "her": {}, "him": {},
	"his": {}, "she": {}, "was": {}, "one": {}, "our": {}, "had": {},
	"but": {}, "not": {}, "what": {}, "all": {}, "any": {}, "your": {},
	"how": {}, "did": {}, "its": {},
}

// IsStopword reports whether a lowercase token is on the stop-word list.
func IsStopword(word string) bool {
	_, ok := stopWords[word]
	return ok
}
