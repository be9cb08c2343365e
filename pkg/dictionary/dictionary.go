// Package dictionary manages grounding dictionaries: the mapping from
// known longform texts to their canonical grounding identifiers for one
// shortform. Dictionaries load from binary msgpack files or plain TSV.
package dictionary

import (
	"fmt"
)

// GroundingMap maps a longform's exact surface text to its grounding
// identifier. Keys are unique by construction; once handed to a
// recognizer the map must not be mutated.
type GroundingMap map[string]string

// Validate rejects maps a recognizer cannot be built from.
func (g GroundingMap) Validate() error {
	if len(g) == 0 {
		return fmt.Errorf("dictionary: empty grounding map")
	}
	for longform, grounding := range g {
		if longform == "" {
			return fmt.Errorf("dictionary: empty longform key")
		}
		if grounding == "" {
			return fmt.Errorf("dictionary: longform %q has empty grounding", longform)
		}
	}
	return nil
}

// Clone returns an independent copy, used to keep recognizer state
// immutable when the caller retains the original map.
func (g GroundingMap) Clone() GroundingMap {
	out := make(GroundingMap, len(g))
	for k, v := range g {
		out[k] = v
	}
	return out
}

// Dictionary couples a shortform with its grounding map as persisted on
// disk.
type Dictionary struct {
	Shortform string       `msgpack:"shortform"`
	Entries   GroundingMap `msgpack:"entries"`
}

// Validate checks a loaded dictionary before use.
func (d *Dictionary) Validate() error {
	if d.Shortform == "" {
		return fmt.Errorf("dictionary: missing shortform")
	}
	return d.Entries.Validate()
}
