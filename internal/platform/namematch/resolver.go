// Package namematch resolves free-text entity names against a dimension
// through an ordered chain of matching strategies. The first strategy that
// produces a hit wins.
package namematch

import "strings"

// Unresolved is the surrogate key returned when no strategy matches.
const Unresolved int64 = -1

// Matcher is one resolution strategy. name is already trimmed and non-empty.
type Matcher interface {
	Match(name string, idx *Index) (id int64, matched string, ok bool)
}

type Resolver struct {
	matchers []Matcher
}

func New(matchers ...Matcher) *Resolver {
	return &Resolver{matchers: append([]Matcher(nil), matchers...)}
}

// NewTeamResolver builds the generic chain used for match facts:
// exact, alias table, accent folding, then substring containment.
func NewTeamResolver(aliases map[string]string) *Resolver {
	return New(
		Exact{},
		Alias{Table: aliases},
		Folded{},
		Contains{},
	)
}

// NewTopScorerResolver puts country-prefix stripping in front of the
// folded and substring strategies of the generic chain.
func NewTopScorerResolver(aliases map[string]string) *Resolver {
	return New(
		Exact{},
		Alias{Table: aliases},
		PrefixStrip{},
		Folded{},
		Contains{},
	)
}

// Resolve returns the matched surrogate key and canonical name. When nothing
// matches it returns Unresolved and the trimmed input; a blank input returns
// Unresolved and an empty name.
func (r *Resolver) Resolve(raw string, idx *Index) (int64, string) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return Unresolved, ""
	}
	if r == nil || idx == nil {
		return Unresolved, name
	}

	for _, m := range r.matchers {
		if id, matched, ok := m.Match(name, idx); ok {
			return id, matched
		}
	}

	return Unresolved, name
}

type Exact struct{}

func (Exact) Match(name string, idx *Index) (int64, string, bool) {
	id, ok := idx.Lookup(name)
	return id, name, ok
}

// Alias rewrites known historical or misspelled names, then matches exactly.
type Alias struct {
	Table map[string]string
}

func (a Alias) Match(name string, idx *Index) (int64, string, bool) {
	target, ok := a.Table[name]
	if !ok {
		return 0, "", false
	}
	id, ok := idx.Lookup(target)
	return id, target, ok
}

// PrefixStrip drops the leading token ("Tunisia Club Africain" ->
// "Club Africain") and matches the rest exactly.
type PrefixStrip struct{}

func (PrefixStrip) Match(name string, idx *Index) (int64, string, bool) {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return 0, "", false
	}
	rest := strings.Join(parts[1:], " ")
	id, ok := idx.Lookup(rest)
	return id, rest, ok
}

type Folded struct{}

func (Folded) Match(name string, idx *Index) (int64, string, bool) {
	want := Fold(name)
	for i, folded := range idx.folded {
		if folded == want {
			known := idx.names[i]
			return idx.ids[known], known, true
		}
	}
	return 0, "", false
}

// Contains matches when either folded name contains the other. It carries
// the highest false-positive risk and belongs at the end of a chain.
type Contains struct{}

func (Contains) Match(name string, idx *Index) (int64, string, bool) {
	want := Fold(name)
	if want == "" {
		return 0, "", false
	}
	for i, folded := range idx.folded {
		if folded == "" {
			continue
		}
		if strings.Contains(want, folded) || strings.Contains(folded, want) {
			known := idx.names[i]
			return idx.ids[known], known, true
		}
	}
	return 0, "", false
}
