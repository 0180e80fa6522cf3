package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// Name folds a player name for lookups: surrounding and repeated
// whitespace is collapsed and the case is folded.
func Name(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return cases.Fold().String(s)
}
