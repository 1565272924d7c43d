package registration

import (
	"slices"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Store is the session-local, append-only collection of accepted records.
// Records are kept sorted ascending by last name using the collation rules
// of the store's locale. Records with equal last names keep insertion order.
//
// Store is not safe for concurrent use.
type Store struct {
	collator *collate.Collator
	locale   language.Tag
	records  []Record
}

// NewStore creates an empty store that orders last names for the given locale.
func NewStore(locale language.Tag) *Store {
	return &Store{
		collator: collate.New(locale),
		locale:   locale,
		records:  make([]Record, 0),
	}
}

// Insert adds a record at its sorted position.
//
// The record goes after every existing record whose last name collates
// equal to or before its own, which is what appending and then running a
// stable sort would produce.
func (s *Store) Insert(r Record) {
	idx := sort.Search(len(s.records), func(i int) bool {
		return s.collator.CompareString(s.records[i].LastName, r.LastName) > 0
	})
	s.records = slices.Insert(s.records, idx, r)
}

// List returns a snapshot of the records in sorted order.
// Modifying the returned slice does not affect the store.
func (s *Store) List() []Record {
	return slices.Clone(s.records)
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.records)
}

// Locale returns the collation locale.
func (s *Store) Locale() language.Tag {
	return s.locale
}

// compare exposes the store's collation for ordering checks.
func (s *Store) compare(a, b string) int {
	return s.collator.CompareString(a, b)
}
