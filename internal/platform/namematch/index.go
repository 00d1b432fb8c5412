package namematch

// Entry is one canonical name with its surrogate key.
type Entry struct {
	Name string
	ID   int64
}

// Index holds the canonical names of a dimension in dimension order together
// with their exact-lookup map and folded forms.
type Index struct {
	ids    map[string]int64
	names  []string
	folded []string
}

func NewIndex(entries []Entry) *Index {
	idx := &Index{
		ids:    make(map[string]int64, len(entries)),
		names:  make([]string, 0, len(entries)),
		folded: make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		idx.add(e.Name, e.ID)
	}
	return idx
}

func (i *Index) add(name string, id int64) {
	if _, exists := i.ids[name]; exists {
		return
	}
	i.ids[name] = id
	i.names = append(i.names, name)
	i.folded = append(i.folded, Fold(name))
}

// Lookup is an exact, case-sensitive lookup.
func (i *Index) Lookup(name string) (int64, bool) {
	if i == nil {
		return 0, false
	}
	id, ok := i.ids[name]
	return id, ok
}

// Len reports the number of canonical names.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.names)
}
