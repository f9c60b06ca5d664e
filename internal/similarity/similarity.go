// Package similarity scores how closely two short phrases match.
package similarity

import "strings"

// White returns the word-bounded letter-pair Dice coefficient of a and b.
// Adjacent letter pairs are taken inside each whitespace-separated word,
// case-insensitively, and every pair of b can be matched at most once.
//
// The result is symmetric and lies in [0,1]. Strings without any letter pair
// (single-letter words) score 1 only when they are equal.
func White(a, b string) float64 {
	a = strings.ToUpper(strings.TrimSpace(a))
	b = strings.ToUpper(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}

	pairsA := letterPairs(a)
	pairsB := letterPairs(b)
	union := len(pairsA) + len(pairsB)
	if union == 0 {
		if a == b {
			return 1
		}
		return 0
	}

	remaining := make(map[string]int, len(pairsB))
	for _, p := range pairsB {
		remaining[p]++
	}

	shared := 0
	for _, p := range pairsA {
		if remaining[p] > 0 {
			remaining[p]--
			shared++
		}
	}

	return 2 * float64(shared) / float64(union)
}

func letterPairs(s string) []string {
	var pairs []string
	for _, word := range strings.Fields(s) {
		runes := []rune(word)
		for i := 0; i+1 < len(runes); i++ {
			pairs = append(pairs, string(runes[i:i+2]))
		}
	}
	return pairs
}
