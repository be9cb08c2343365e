package recognize

import (
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/acrolab/acrolex/pkg/nlp"
)

// Token edges are encoded into patricia keys with a separator that cannot
// appear inside a word token, so byte prefixes of a key line up exactly
// with token boundaries.
const edgeSep = "\x1f"

type trieEntry struct {
	longform string
	tokens   int
}

// LongformTrie indexes the known longforms of one dictionary by their
// normalized word tokens in reverse order. Matching proceeds backward
// from a defining pattern toward the start of the fragment, so two
// longforms sharing their final words share a path. The trie is read-only
// after construction.
type LongformTrie struct {
	trie      *patricia.Trie
	normalize func(string) string
	count     int
}

// NewLongformTrie builds a trie over the given longform texts. Each
// longform is tokenized into word tokens, normalized with normalize,
// reversed, and inserted as a path whose terminal carries the original,
// un-normalized text. When two longforms normalize identically the
// last-inserted one wins.
func NewLongformTrie(longforms []string, normalize func(string) string) *LongformTrie {
	lt := &LongformTrie{trie: patricia.NewTrie(), normalize: normalize}
	for _, longform := range longforms {
		words := nlp.WordTexts(nlp.Tokenize(longform))
		if len(words) == 0 {
			continue
		}
		lt.trie.Set(patricia.Prefix(lt.key(words)), trieEntry{longform: longform, tokens: len(words)})
		lt.count++
	}
	return lt
}

// key encodes words in reverse order, normalizing each, with a trailing
// separator after every token.
func (lt *LongformTrie) key(words []string) string {
	var b strings.Builder
	for i := len(words) - 1; i >= 0; i-- {
		b.WriteString(lt.normalize(words[i]))
		b.WriteString(edgeSep)
	}
	return b.String()
}

// Search consumes tokens from the end backward and returns the longform
// of the deepest terminal reached, preferring a longer dictionary entry
// over a shorter one that is its suffix. The returned count is the number
// of word tokens the longform spans. An empty token list or an immediate
// mismatch is a plain no-match, not an error.
func (lt *LongformTrie) Search(tokens []string) (string, int, bool) {
	if len(tokens) == 0 {
		return "", 0, false
	}
	var (
		best  trieEntry
		found bool
	)
	err := lt.trie.VisitPrefixes(patricia.Prefix(lt.key(tokens)), func(p patricia.Prefix, item patricia.Item) error {
		// Prefixes are visited shortest first; the last one is the
		// longest match.
		best = item.(trieEntry)
		found = true
		return nil
	})
	if err != nil || !found {
		return "", 0, false
	}
	return best.longform, best.tokens, true
}

// Len returns the number of longforms inserted. Entries that collided on
// an identical normalization are still counted.
func (lt *LongformTrie) Len() int {
	return lt.count
}
