package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ArgMultimap holds the values found after each prefix, in input order, plus
// the text before the first prefix.
type ArgMultimap struct {
	Preamble string
	values   map[string][]string
}

// Value returns the last value given for prefix
func (a ArgMultimap) Value(prefix string) (string, bool) {
	vs := a.values[prefix]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// All returns every value given for prefix
func (a ArgMultimap) All(prefix string) []string {
	return a.values[prefix]
}

// Has reports whether prefix appeared at least once
func (a ArgMultimap) Has(prefix string) bool {
	return len(a.values[prefix]) > 0
}

// Duplicates returns the prefixes among the given ones that appear more than once
func (a ArgMultimap) Duplicates(prefixes ...string) []string {
	var out []string
	for _, p := range prefixes {
		if len(a.values[p]) > 1 {
			out = append(out, p)
		}
	}
	return out
}

type prefixPos struct {
	prefix string
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// starts args or directly follows whitespace, so "a/b" inside an address
// value is not taken for a prefix unless preceded by a space. Values are
// trimmed.
func Tokenize(args string, prefixes ...string) ArgMultimap {
	var found []prefixPos
	for _, p := range prefixes {
		for from := 0; from < len(args); {
			i := strings.Index(args[from:], p)
			if i < 0 {
				break
			}
			at := from + i
			if prev, _ := utf8.DecodeLastRuneInString(args[:at]); at == 0 || unicode.IsSpace(prev) {
				found = append(found, prefixPos{prefix: p, start: at})
			}
			from = at + 1
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].start < found[j].start })

	out := ArgMultimap{values: make(map[string][]string)}
	end := len(args)
	if len(found) > 0 {
		end = found[0].start
	}
	out.Preamble = strings.TrimSpace(args[:end])

	for i, f := range found {
		end := len(args)
		if i+1 < len(found) {
			end = found[i+1].start
		}
		v := strings.TrimSpace(args[f.start+len(f.prefix) : end])
		out.values[f.prefix] = append(out.values[f.prefix], v)
	}
	return out
}
