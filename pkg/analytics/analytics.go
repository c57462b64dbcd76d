// Package analytics computes word-frequency statistics over paper titles.
// It is pure computation: no I/O, no shared state, deterministic output
// for a given input sequence.
package analytics

import (
	"sort"
	"strings"
)

// minTokenLen is the shortest run of letters kept as a token. Shorter
// runs are discarded entirely, never merged into a neighboring token.
const minTokenLen = 3

// WordCount is one entry of a frequency mapping.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Tokenize lowercases a title and extracts maximal runs of ASCII letters
// of length >= 3. Digits, punctuation, and shorter runs are dropped, so
// "COVID-19" yields "covid", not "covid19". Stop words are not removed
// here; that is WordFrequencies' job.
func Tokenize(title string) []string {
	title = strings.ToLower(title)

	var tokens []string
	start := -1
	for i := 0; i <= len(title); i++ {
		alpha := i < len(title) && title[i] >= 'a' && title[i] <= 'z'
		if alpha {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= minTokenLen {
			tokens = append(tokens, title[start:i])
		}
		start = -1
	}
	return tokens
}

// WordFrequencies tokenizes each title, drops stop words, and accumulates
// counts across all titles. The result is ordered by descending count;
// ties break by first occurrence across the input sequence. At most topN
// entries are returned. Empty input yields an empty result, never an
// error.
func WordFrequencies(titles []string, topN int) []WordCount {
	if topN <= 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	pos := 0

	for _, title := range titles {
		for _, word := range Tokenize(title) {
			if IsStopword(word) {
				continue
			}
			if _, seen := counts[word]; !seen {
				firstSeen[word] = pos
			}
			counts[word]++
			pos++
		}
	}

	result := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		result = append(result, WordCount{Word: word, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return firstSeen[result[i].Word] < firstSeen[result[j].Word]
	})

	if len(result) > topN {
		result = result[:topN]
	}
	return result
}
