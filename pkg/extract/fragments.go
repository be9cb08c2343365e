// Package extract locates defining-pattern occurrences of a shortform in
// text and produces the bounded fragments and candidate token sequences
// the recognizers search over. Character offsets are tracked through the
// whole pipeline so later text surgery never has to re-find substrings.
package extract

import (
	"regexp"
	"sync"
)

// Fragment is a span of text ending at one defining-pattern occurrence.
// Text always equals the slice of the original input between Start and End;
// End is the byte offset where the "(SHORTFORM)" parenthetical begins.
type Fragment struct {
	Text  string
	Start int
	End   int
}

var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

// DefiningPattern returns the compiled pattern matching a parenthesized
// shortform, allowing surrounding whitespace inside the parentheses.
func DefiningPattern(shortform string) *regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()
	if re, ok := patternCache[shortform]; ok {
		return re
	}
	re := regexp.MustCompile(`\(\s*` + regexp.QuoteMeta(shortform) + `\s*\)`)
	patternCache[shortform] = re
	return re
}

// Fragments returns one fragment per defining-pattern occurrence of
// shortform in text. Each fragment runs from the end of the previous
// occurrence (or the start of text) up to the occurrence itself; no
// window truncation is applied.
func Fragments(text, shortform string) []Fragment {
	return fragments(text, shortform, 0)
}

// FragmentsWindow is Fragments with each span additionally left-truncated
// to at most window bytes of context before the occurrence.
func FragmentsWindow(text, shortform string, window int) []Fragment {
	return fragments(text, shortform, window)
}

func fragments(text, shortform string, window int) []Fragment {
	matches := DefiningPattern(shortform).FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	frags := make([]Fragment, 0, len(matches))
	prevEnd := 0
	for _, m := range matches {
		start := prevEnd
		if window > 0 && m[0]-window > start {
			start = m[0] - window
		}
		if start > m[0] {
			start = m[0]
		}
		frags = append(frags, Fragment{Text: text[start:m[0]], Start: start, End: m[0]})
		prevEnd = m[1]
	}
	return frags
}
