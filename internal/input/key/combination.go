package key

import (
	"sort"
	"strings"
)

// Separator joins key names in a combination spelling.
const Separator = "+"

// Combination is one canonical spelling of a shortcut: key identifiers
// sorted lexicographically. Two Combinations are equal when they hold the
// same identifiers in the same (sorted) order.
type Combination []Identifier

// Normalize converts a spelling such as "Ctrl+Shift+K" into its canonical
// Combination. It never fails: an empty segment becomes an empty
// identifier and is kept as-is.
func Normalize(spelling string) Combination {
	parts := strings.Split(spelling, Separator)
	combo := make(Combination, 0, len(parts))
	for _, p := range parts {
		combo = append(combo, Alias(p))
	}
	combo.sort()
	return combo
}

// NormalizeAll normalizes each spelling in order.
func NormalizeAll(spellings []string) []Combination {
	out := make([]Combination, 0, len(spellings))
	for _, s := range spellings {
		out = append(out, Normalize(s))
	}
	return out
}

// FromIdentifiers builds a canonical Combination from arbitrary-order
// identifiers. The input slice is not modified.
func FromIdentifiers(ids ...Identifier) Combination {
	combo := make(Combination, len(ids))
	copy(combo, ids)
	combo.sort()
	return combo
}

func (c Combination) sort() {
	sort.Slice(c, func(i, j int) bool { return c[i] < c[j] })
}

// Len returns the number of keys in the combination.
func (c Combination) Len() int {
	return len(c)
}

// IsEmpty returns true if the combination has no keys.
func (c Combination) IsEmpty() bool {
	return len(c) == 0
}

// Equal compares two canonical combinations element by element.
func (c Combination) Equal(other Combination) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Contains reports whether id is part of the combination.
func (c Combination) Contains(id Identifier) bool {
	for _, k := range c {
		if k == id {
			return true
		}
	}
	return false
}

// String joins the identifiers with the separator: "control+k".
func (c Combination) String() string {
	parts := make([]string, len(c))
	for i, id := range c {
		parts[i] = string(id)
	}
	return strings.Join(parts, Separator)
}

// IndexOf returns the index of the first combination equal to c, or -1.
func IndexOf(combos []Combination, c Combination) int {
	for i, other := range combos {
		if other.Equal(c) {
			return i
		}
	}
	return -1
}
