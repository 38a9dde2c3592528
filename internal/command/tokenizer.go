package command

import (
	"sort"
	"strings"
)

// Prefix marks the start of an argument, e.g. "n/".
type Prefix string

// Argument prefixes.
const (
	PrefixName            Prefix = "n/"
	PrefixPhone           Prefix = "p/"
	PrefixEmail           Prefix = "e/"
	PrefixPrice           Prefix = "p/"
	PrefixAddress         Prefix = "a/"
	PrefixDescription     Prefix = "d/"
	PrefixSeller          Prefix = "s/"
	PrefixSellerPhone     Prefix = "sp/"
	PrefixCharacteristics Prefix = "c/"
)

// ArgumentMultimap maps prefixes to the values that followed them.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Value returns the last value given for prefix.
func (m ArgumentMultimap) Value(prefix Prefix) (string, bool) {
	vs := m.values[prefix]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// Has reports whether prefix appeared at least once.
func (m ArgumentMultimap) Has(prefix Prefix) bool {
	return len(m.values[prefix]) > 0
}

// Preamble returns the trimmed text before the first prefix.
func (m ArgumentMultimap) Preamble() string {
	return m.preamble
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args into a preamble and prefixed values. A prefix is
// only recognised when preceded by whitespace, so "sp/" is never read as "p/".
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	text := " " + args
	var positions []prefixPosition
	for _, p := range prefixes {
		needle := string(p)
		for from := 0; ; {
			i := strings.Index(text[from:], needle)
			if i < 0 {
				break
			}
			at := from + i
			if at > 0 && isSpace(text[at-1]) {
				positions = append(positions, prefixPosition{prefix: p, start: at})
			}
			from = at + 1
		}
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	m := ArgumentMultimap{values: make(map[Prefix][]string)}
	end := len(text)
	if len(positions) > 0 {
		end = positions[0].start
	}
	m.preamble = strings.TrimSpace(text[:end])

	for i, pos := range positions {
		valueEnd := len(text)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		value := strings.TrimSpace(text[pos.start+len(pos.prefix) : valueEnd])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
