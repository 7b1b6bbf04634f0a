// Package format holds the small presentation helpers used by the feed:
// human-readable dates and count labels.
package format

import (
	"strconv"
	"time"
)

// DateLayout renders dates as "Mon D, YYYY", e.g. "Mar 5, 2024".
const DateLayout = "Jan 2, 2006"

// Date renders t using DateLayout in t's own location. The zero time stands
// for "no date" and renders as "".
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// Pluralize returns "<count> <noun>", choosing singular when count is 1.
// If plural is empty the plural form is singular+"s"; irregular nouns need
// an explicit plural.
func Pluralize(count int, singular, plural string) string {
	noun := singular
	if count != 1 {
		noun = plural
		if noun == "" {
			noun = singular + "s"
		}
	}
	return strconv.Itoa(count) + " " + noun
}
