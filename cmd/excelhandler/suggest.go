/*
Copyright © 2026 Sina Karimi
Distributed under the MIT License.
*/
package main

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//
// nearestSheet returns the stored sheet name closest to want, or "" when
// nothing comes within a short Levenshtein distance. A shared prefix either
// way counts as a match, so "Dat" finds "Data 2026".
//
func nearestSheet(want string, names []string) (found string) {
	maxDistance := 3
	for _, name := range names {
		src := fix(want)
		trg := fix(name)
		if strings.HasPrefix(src, trg) || strings.HasPrefix(trg, src) {
			return name
		}
		distance := fuzzy.LevenshteinDistance(src, trg)
		if distance <= maxDistance {
			maxDistance = distance
			found = name
		}
	}

	return
}

//
// fix uppercases and removes diacritics, so "Relatório" and "relatorio"
// compare equal
//
func fix(txt string) string {
	isMn := func(r rune) bool {
		return unicode.Is(unicode.Mn, r) // Mn: nonspacing marks
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, strings.ToUpper(txt))
	if err != nil {
		return strings.ToUpper(txt)
	}

	return result
}
