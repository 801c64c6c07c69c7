package similarity

import (
	"strings"
	"unicode"
)

// Score calculates how closely a video title matches a search query using
// Levenshtein distance over normalized text. Returns a value between 0.0
// (completely different) and 1.0 (identical). Used to rank search
// suggestions so near-exact title matches sort ahead of loose ones.
func Score(query, title string) float64 {
	query = normalize(query)
	title = normalize(title)

	if query == title {
		return 1.0
	}
	if len(query) == 0 || len(title) == 0 {
		return 0.0
	}

	// A query fully contained in the title is a strong match even when the
	// title carries extra decoration ("official video", year tags).
	if strings.Contains(title, query) {
		ratio := float64(len(query)) / float64(len(title))
		return 0.80 + ratio*0.20
	}

	distance := levenshtein(query, title)
	maxLen := len(query)
	if len(title) > maxLen {
		maxLen = len(title)
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// normalize lowercases the input and strips everything but letters, digits
// and single spaces, so "Daft Punk - One More Time (Official)" compares
// cleanly against "daft punk one more time".
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '.' || r == '-' || r == '_':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// levenshtein calculates the edit distance between two strings.
func levenshtein(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(r2)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
