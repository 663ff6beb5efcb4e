package ep

import "bytes"

// Wordlists is the number of wordlists, one per identifier byte.
const Wordlists = 256

// record is one definition. name points into the input buffer.
type record struct {
	name   []byte
	serial uint64
	next   int // index of the previous definition in the same wordlist, 0 ends the list
}

/*
Store holds all 256 wordlists in one record arena. Each wordlist is a linked
list threaded through the arena by index, newest definition first.

The zero value is not usable, call NewStore.
*/
type Store struct {
	records []record // records[0] is never used so that index 0 can end a list
	heads   [Wordlists]int
}

// NewStore returns a store with every wordlist empty.
func NewStore() *Store {
	return &Store{records: make([]record, 1, 64)}
}

/*
Define prepends name to wordlist id with the given serial number. The name is
kept as given, not copied, so the caller's buffer must outlive the store.
Duplicates are allowed; the newest one shadows the older ones.
*/
func (s *Store) Define(id byte, name []byte, serial uint64) {
	s.records = append(s.records, record{
		name:   name,
		serial: serial,
		next:   s.heads[id],
	})
	s.heads[id] = len(s.records) - 1
}

/*
Lookup searches wordlist id from the newest definition to the oldest and
returns the serial number of the first one named name, or 0.
*/
func (s *Store) Lookup(id byte, name []byte) uint64 {
	for i := s.heads[id]; i != 0; i = s.records[i].next {
		r := &s.records[i]
		if len(r.name) == len(name) && bytes.Equal(r.name, name) {
			return r.serial
		}
	}
	return 0
}

// Len returns the number of definitions across all wordlists.
func (s *Store) Len() int {
	return len(s.records) - 1
}

// Words calls fn for every definition in wordlist id, newest first, until fn returns false.
func (s *Store) Words(id byte, fn func(name []byte, serial uint64) bool) {
	for i := s.heads[id]; i != 0; i = s.records[i].next {
		if !fn(s.records[i].name, s.records[i].serial) {
			return
		}
	}
}
