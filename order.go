package ep

import "strconv"

/*
SearchOrder lists the wordlists consulted by Resolve. The first identifier is
the bottom of the order and the last is the top; the top is searched first.
*/
type SearchOrder struct {
	ids []byte
}

// Set replaces the whole order with ids. ids is kept, not copied.
func (o *SearchOrder) Set(ids []byte) {
	o.ids = ids
}

func (o *SearchOrder) Len() int {
	return len(o.ids)
}

func (o *SearchOrder) String() string {
	return strconv.Quote(string(o.ids))
}

/*
Resolve looks name up in each wordlist of the order from the top down and
returns the first serial number found, or 0 when no wordlist in the order
defines it.
*/
func (o *SearchOrder) Resolve(s *Store, name []byte) uint64 {
	for j := len(o.ids) - 1; j >= 0; j-- {
		if found := s.Lookup(o.ids[j], name); found != 0 {
			return found
		}
	}
	return 0
}
