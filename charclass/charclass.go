/*
Package charclass classifies Unicode code points into the identifier
character classes of the grammar.

Identifiers may start with a narrower character class than they continue
with, so two related but distinct sets are kept: identifier-start and
identifier-continue. Both are stored as dense, sorted, disjoint rune ranges
and queried by binary bisection. Lookups never allocate.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package charclass

// IsIdentifierStart reports whether r may begin an identifier.
func IsIdentifierStart(r rune) bool {
	return inRanges(identStartRanges, r)
}

// IsIdentifierContinue reports whether r may appear in an identifier after
// the first character. The continue set is a strict superset of the start
// set.
func IsIdentifierContinue(r rune) bool {
	return inRanges(identContinueRanges, r)
}

// A runeRange is an inclusive range of code points.
type runeRange struct {
	lo, hi rune
}

// inRanges bisects the sorted range table for r.
func inRanges(ranges []runeRange, r rune) bool {
	lo, hi := 0, len(ranges)
	for lo < hi {
		mid := (lo + hi) / 2
		if r < ranges[mid].lo {
			hi = mid
		} else if r > ranges[mid].hi {
			lo = mid + 1
		} else {
			return true
		}
	}
	return false
}
