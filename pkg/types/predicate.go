package types

import "strings"

// NameContainsKeywords matches persons whose name contains any of the
// keywords as a whole word, ignoring case.
type NameContainsKeywords struct {
	Keywords []string
}

// Test reports whether p matches the predicate.
func (k NameContainsKeywords) Test(p Person) bool {
	return containsAnyWord(p.Name().String(), k.Keywords)
}

// PropertyNameContainsKeywords matches properties whose name contains any
// of the keywords as a whole word, ignoring case.
type PropertyNameContainsKeywords struct {
	Keywords []string
}

// Test reports whether p matches the predicate.
func (k PropertyNameContainsKeywords) Test(p Property) bool {
	return containsAnyWord(p.Name().String(), k.Keywords)
}

func containsAnyWord(sentence string, keywords []string) bool {
	words := strings.Fields(sentence)
	for _, kw := range keywords {
		for _, w := range words {
			if strings.EqualFold(w, kw) {
				return true
			}
		}
	}
	return false
}
