package snatch

import "strings"

// inflectionSuffixes is the closed set of endings that mark a result
// word as a plural, tense, comparative or similar variant of its base.
// Kept exactly as enumerated; widening it changes game-relevant validity
// judgments.
var inflectionSuffixes = map[string]struct{}{
	"S": {}, "ES": {}, "ED": {}, "D": {}, "ING": {}, "ER": {}, "EST": {},
	"LY": {}, "NESS": {}, "MENT": {}, "ABLE": {}, "IBLE": {}, "TION": {},
	"SION": {}, "FUL": {}, "LESS": {}, "ISH": {}, "IZE": {}, "ISE": {},
	"EN": {}, "LET": {}, "LETS": {}, "Y": {}, "IER": {}, "IEST": {},
}

// doublingConsonants are the consonants English doubles before a
// vowel-initial suffix (RUN -> RUNNING).
var doublingConsonants = map[byte]struct{}{
	'B': {}, 'C': {}, 'D': {}, 'F': {}, 'G': {}, 'K': {}, 'L': {}, 'M': {},
	'N': {}, 'P': {}, 'R': {}, 'S': {}, 'T': {}, 'V': {}, 'Z': {},
}

// derivationalPrefixes mark a result word as a prefixed form of its base.
var derivationalPrefixes = map[string]struct{}{
	"UN": {}, "RE": {}, "PRE": {}, "DE": {}, "DIS": {}, "MIS": {}, "NON": {},
	"OVER": {}, "UNDER": {}, "OUT": {}, "SUB": {}, "SEMI": {}, "ANTI": {},
	"MID": {}, "BI": {}, "TRI": {},
}

// IsInflection decides whether a steal from baseWord to resultWord is
// trivial: the two words share a root rather than being a coincidental
// letter superset. A shared etymology settles it immediately; the affix
// checks still run when etymology answers distinct or unknown, since the
// etymology table is incomplete.
func (e *Engine) IsInflection(baseWord, resultWord string) bool {
	if e.etymology.Share(baseWord, resultWord) == RelationShared {
		return true
	}

	if strings.HasPrefix(resultWord, baseWord) {
		suffix := resultWord[len(baseWord):]
		if _, ok := inflectionSuffixes[suffix]; ok {
			return true
		}
		// Doubled-consonant elision: base ends in the consonant the
		// suffix doubles, as in STAR -> STARRING.
		if len(suffix) >= 2 && len(baseWord) > 0 {
			c := suffix[0]
			if _, doubles := doublingConsonants[c]; doubles && baseWord[len(baseWord)-1] == c {
				if _, ok := inflectionSuffixes[suffix[1:]]; ok {
					return true
				}
			}
		}
	}

	if strings.HasSuffix(resultWord, baseWord) {
		prefix := resultWord[:len(resultWord)-len(baseWord)]
		if _, ok := derivationalPrefixes[prefix]; ok {
			return true
		}
	}

	return false
}

// IsCompoundContaining reports whether resultWord contains word1 or
// word2 as a contiguous substring, which marks a merge as a trivial
// compound rather than a genuine rearrangement.
func IsCompoundContaining(word1, word2, resultWord string) bool {
	return strings.Contains(resultWord, word1) || strings.Contains(resultWord, word2)
}
