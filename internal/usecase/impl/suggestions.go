package impl

import (
	"slices"
	"strings"
	"unicode/utf8"

	"vendorradar/internal/domain/entity"
)

// minSuggestionRunes excludes very short words such as "of" or "a".
const minSuggestionRunes = 3

// RankSuggestions counts the words of the given queries (newest first) and returns the most
// frequent ones. Equal counts keep the order in which the words were first seen.
func RankSuggestions(entries []entity.SearchHistoryEntry, window, limit int) []string {
	if window > 0 && len(entries) > window {
		entries = entries[:window]
	}

	type wordCount struct {
		word  string
		count int
	}

	var ranked []*wordCount
	index := make(map[string]*wordCount)
	for _, entry := range entries {
		for _, word := range strings.Fields(strings.ToLower(entry.Query)) {
			if utf8.RuneCountInString(word) < minSuggestionRunes {
				continue
			}
			if wc, ok := index[word]; ok {
				wc.count++

				continue
			}
			wc := &wordCount{word: word, count: 1}
			index[word] = wc
			ranked = append(ranked, wc)
		}
	}

	slices.SortStableFunc(ranked, func(a, b *wordCount) int {
		return b.count - a.count
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	words := make([]string, 0, len(ranked))
	for _, wc := range ranked {
		words = append(words, wc.word)
	}

	return words
}
