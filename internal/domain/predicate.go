package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Predicate tests a person against some criteria. Implementations are
// immutable values; Equal compares them structurally.
type Predicate interface {
	Test(p Person) bool
	Equal(other Predicate) bool
	String() string
}

// NameContainsKeywords matches a person when any keyword equals any word of
// the name, ignoring case.
type NameContainsKeywords struct {
	keywords []string
}

// NewNameContainsKeywords builds the predicate. The slice is copied.
func NewNameContainsKeywords(keywords []string) NameContainsKeywords {
	return NameContainsKeywords{keywords: slices.Clone(keywords)}
}

// Test reports whether any keyword equals a word of the name, ignoring case.
func (n NameContainsKeywords) Test(p Person) bool {
	return anyKeywordIsWord(n.keywords, strings.Fields(p.Name))
}

// Equal reports whether other is a NameContainsKeywords with the same keywords
// in the same order.
func (n NameContainsKeywords) Equal(other Predicate) bool {
	o, ok := other.(NameContainsKeywords)
	return ok && slices.Equal(n.keywords, o.keywords)
}

// String lists the kind and keywords, for diagnostics only.
func (n NameContainsKeywords) String() string {
	return formatPredicate("NameContainsKeywords", n.keywords)
}

// ClientTypeContainsKeywords matches a person when any keyword equals any
// word of any of the person's client types, ignoring case.
type ClientTypeContainsKeywords struct {
	keywords []string
}

// NewClientTypeContainsKeywords builds the predicate. The slice is copied.
func NewClientTypeContainsKeywords(keywords []string) ClientTypeContainsKeywords {
	return ClientTypeContainsKeywords{keywords: slices.Clone(keywords)}
}

// Test reports whether any keyword equals a word of any client type, ignoring case.
func (c ClientTypeContainsKeywords) Test(p Person) bool {
	var words []string
	for _, ct := range p.ClientTypes {
		words = append(words, strings.Fields(ct)...)
	}
	return anyKeywordIsWord(c.keywords, words)
}

// Equal reports whether other is a ClientTypeContainsKeywords with the same keywords
// in the same order.
func (c ClientTypeContainsKeywords) Equal(other Predicate) bool {
	o, ok := other.(ClientTypeContainsKeywords)
	return ok && slices.Equal(c.keywords, o.keywords)
}

// String lists the kind and keywords, for diagnostics only.
func (c ClientTypeContainsKeywords) String() string {
	return formatPredicate("ClientTypeContainsKeywords", c.keywords)
}

// NameStartsWithKeywords matches a person when every keyword is a prefix of
// some word of the name, ignoring case. "Ali Pau" matches "Alice Pauline".
type NameStartsWithKeywords struct {
	keywords []string
}

// NewNameStartsWithKeywords builds the predicate. The slice is copied.
func NewNameStartsWithKeywords(keywords []string) NameStartsWithKeywords {
	return NameStartsWithKeywords{keywords: slices.Clone(keywords)}
}

// Test reports whether every keyword prefixes some word of the name, ignoring
// case. An empty keyword list matches nobody.
func (n NameStartsWithKeywords) Test(p Person) bool {
	if len(n.keywords) == 0 {
		return false
	}
	words := strings.Fields(strings.ToLower(p.Name))
	for _, kw := range n.keywords {
		kw = strings.ToLower(kw)
		if !slices.ContainsFunc(words, func(w string) bool { return strings.HasPrefix(w, kw) }) {
			return false
		}
	}
	return true
}

// Equal reports whether other is a NameStartsWithKeywords with the same keywords
// in the same order.
func (n NameStartsWithKeywords) Equal(other Predicate) bool {
	o, ok := other.(NameStartsWithKeywords)
	return ok && slices.Equal(n.keywords, o.keywords)
}

// String lists the kind and keywords, for diagnostics only.
func (n NameStartsWithKeywords) String() string {
	return formatPredicate("NameStartsWithKeywords", n.keywords)
}

// ShowAll matches every person
type ShowAll struct{}

// Test always reports true.
func (ShowAll) Test(Person) bool { return true }

// Equal reports whether other is also ShowAll.
func (ShowAll) Equal(other Predicate) bool {
	_, ok := other.(ShowAll)
	return ok
}

func (ShowAll) String() string { return "ShowAll{}" }

func anyKeywordIsWord(keywords, words []string) bool {
	for _, kw := range keywords {
		for _, w := range words {
			if strings.EqualFold(kw, w) {
				return true
			}
		}
	}
	return false
}

func formatPredicate(kind string, keywords []string) string {
	return fmt.Sprintf("%s{keywords=%v}", kind, keywords)
}
