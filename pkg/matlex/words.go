package matlex

import "strings"

// WordSet is a case-sensitive set of identifier spellings. Entries may be
// written with a trailing "(" marker, meaning the word names a function that
// is conventionally called with parentheses; the marker is notation only and
// is stripped on construction, so lookup is always by bare spelling.
type WordSet struct {
	words map[string]struct{}
}

// NewWordSet builds a WordSet from a list of entries. Entries may be
// space-separated lists themselves, matching the flat word-list format the
// tables are authored in.
func NewWordSet(entries ...string) *WordSet {
	ws := &WordSet{words: make(map[string]struct{})}
	for _, entry := range entries {
		for _, w := range strings.Fields(entry) {
			w = strings.TrimSuffix(w, "(")
			if w != "" {
				ws.words[w] = struct{}{}
			}
		}
	}
	return ws
}

// Contains reports whether the exact spelling is in the set.
func (ws *WordSet) Contains(s string) bool {
	if ws == nil {
		return false
	}
	_, ok := ws.words[s]
	return ok
}

// Len returns the number of words in the set.
func (ws *WordSet) Len() int {
	if ws == nil {
		return 0
	}
	return len(ws.words)
}

// KeywordTables holds the per-dialect classification tables consulted when an
// identifier is resolved. Lookup priority during scanning is Keywords >
// Attributes > Commands > Function1 > Function2 > bare identifier. The tables
// are read-only during scanning and safe to share across documents.
type KeywordTables struct {
	// Keywords are reserved words (if, for, end, ...). Also drives folding.
	Keywords *WordSet

	// Attributes are classdef attribute names (Static, Access, ...) and, for
	// Julia, type-annotation targets.
	Attributes *WordSet

	// Commands are internal commands usable in command syntax (cd, clear, ...).
	Commands *WordSet

	// Function1 and Function2 are builtin function groups, typically split
	// into core builtins and toolbox functions.
	Function1 *WordSet
	Function2 *WordSet
}

// NewKeywordTables returns empty tables; identifiers then resolve only via
// the generic followed-by-'(' function heuristic.
func NewKeywordTables() *KeywordTables {
	return &KeywordTables{}
}
