package color

import (
	imgcolor "image/color"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/image/colornames"
)

// CSS is the CSS3 extended color keyword table.
var CSS = NewTable(colornames.Map)

// Table is an immutable mapping of lowercase color names to colors.
type Table struct {
	names  []string
	colors map[string]RGB
}

// NewTable copies src into a new Table. Keys are lowercased.
func NewTable(src map[string]imgcolor.RGBA) Table {
	t := Table{
		names:  make([]string, 0, len(src)),
		colors: make(map[string]RGB, len(src)),
	}

	for name, c := range src {
		name = strings.ToLower(name)
		if _, ok := t.colors[name]; ok {
			continue
		}

		t.names = append(t.names, name)
		t.colors[name] = RGB{R: c.R, G: c.G, B: c.B}
	}

	sort.Strings(t.names)
	return t
}

// Len returns the number of names.
func (t Table) Len() int { return len(t.names) }

// Names returns a sorted copy of all names.
func (t Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Has returns true if name is exactly one of the lowercase keywords.
func (t Table) Has(name string) bool {
	_, ok := t.colors[name]
	return ok
}

// Lookup finds name case-insensitively.
func (t Table) Lookup(name string) (Color, bool) {
	name = strings.ToLower(name)

	rgb, ok := t.colors[name]
	if !ok {
		return Color{}, false
	}

	return newColor(rgb, name, FromName), true
}

// maxTypoDistance is the largest Levenshtein distance that Suggest still
// considers a typo.
const maxTypoDistance = 2

// Suggest returns up to n names that look like input, best match first. Names
// containing the input's letters in order are ranked before plain typos.
func (t Table) Suggest(input string, n int) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if n <= 0 {
		return nil
	}
	if input == "" {
		if n > len(t.names) {
			n = len(t.names)
		}
		return append([]string(nil), t.names[:n]...)
	}

	ranks := fuzzy.RankFindNormalizedFold(input, t.names)
	sort.Stable(ranks)

	suggestions := make([]string, 0, n)
	seen := make(map[string]struct{}, n)

	for _, rank := range ranks {
		if len(suggestions) == n {
			return suggestions
		}
		suggestions = append(suggestions, rank.Target)
		seen[rank.Target] = struct{}{}
	}

	type typo struct {
		name     string
		distance int
	}

	var typos []typo
	for _, name := range t.names {
		if _, ok := seen[name]; ok {
			continue
		}
		if d := fuzzy.LevenshteinDistance(input, name); d <= maxTypoDistance {
			typos = append(typos, typo{name, d})
		}
	}

	sort.SliceStable(typos, func(i, j int) bool {
		return typos[i].distance < typos[j].distance
	})

	for _, typo := range typos {
		if len(suggestions) == n {
			break
		}
		suggestions = append(suggestions, typo.name)
	}

	return suggestions
}
