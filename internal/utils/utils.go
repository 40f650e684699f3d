package utils

import (
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
)

// FirstMatch returns the first match of re in s, or "" when there is none.
// regexp2 errors (catastrophic backtracking timeouts) are treated as no
// match, matching how listing text is handled everywhere else: degrade,
// never fail.
func FirstMatch(re *regexp2.Regexp, s string) string {
	m, err := re.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}
	return m.String()
}

// FirstGroup returns capture group 1 of the first match of re in s. When the
// pattern has no group 1 capture, the whole match is returned instead.
func FirstGroup(re *regexp2.Regexp, s string) string {
	m, err := re.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}
	groups := m.Groups()
	if len(groups) > 1 && len(groups[1].Captures) > 0 {
		return groups[1].Captures[0].String()
	}
	return m.String()
}

// TitleCase upper-cases the first letter of each word, where words break on
// spaces and hyphens ("micro-atx" -> "Micro-Atx", "full tower" -> "Full
// Tower").
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) && !prevLetter {
			r = unicode.ToUpper(r)
		}
		prevLetter = unicode.IsLetter(r)
		b.WriteRune(r)
	}
	return b.String()
}
