package taxonomy

// Store answers the cascading lookups of the selection lists. Unknown keys
// yield empty lists rather than errors: an empty upstream selection is the
// normal "nothing selected yet" state.
type Store struct {
	processes    []string
	documents    map[string][]string
	descriptions map[pairKey][]string
	persons      []string
}

type pairKey struct {
	process  string
	document string
}

// NewStore builds a store over a private copy of t, so later changes to t are
// not visible through the store.
func NewStore(t *Taxonomy) *Store {
	t = t.clone()
	s := &Store{
		processes:    make([]string, 0, len(t.Processes)),
		documents:    make(map[string][]string, len(t.Processes)),
		descriptions: map[pairKey][]string{},
		persons:      t.Persons,
	}
	for _, p := range t.Processes {
		s.processes = append(s.processes, p.Name)
		docs := make([]string, 0, len(p.Documents))
		for _, d := range p.Documents {
			docs = append(docs, d.Name)
			s.descriptions[pairKey{p.Name, d.Name}] = d.Descriptions
		}
		s.documents[p.Name] = docs
	}
	return s
}

// NewDefaultStore is NewStore(Default()).
func NewDefaultStore() *Store {
	return NewStore(Default())
}

func (s *Store) ListProcessCategories() []string {
	return copyStrings(s.processes)
}

func (s *Store) ListDocumentCategories(process string) []string {
	return copyStrings(s.documents[process])
}

func (s *Store) ListDescriptions(process, document string) []string {
	return copyStrings(s.descriptions[pairKey{process, document}])
}

func (s *Store) ListPersons() []string {
	return copyStrings(s.persons)
}

// HasDocument reports whether document is registered under process.
func (s *Store) HasDocument(process, document string) bool {
	_, ok := s.descriptions[pairKey{process, document}]
	return ok
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
