package ep

import (
	"strconv"
	"testing"
)

func TestEmptyStore(t *testing.T) {
	s := NewStore()
	for id := 0; id < Wordlists; id++ {
		if got := s.Lookup(byte(id), []byte("foo")); got != 0 {
			t.Fatal("empty wordlist", id, "found", got)
		}
	}
	if s.Len() != 0 {
		t.Fatal("empty store has length", s.Len())
	}
}

func TestStoreNewestFirst(t *testing.T) {
	s := NewStore()
	s.Define('A', []byte("foo"), 1)
	s.Define('A', []byte("bar"), 2)
	s.Define('A', []byte("foo"), 3)
	s.Define('B', []byte("foo"), 4)
	if got := s.Lookup('A', []byte("foo")); got != 3 {
		t.Fatal("foo should be 3 and not", got)
	}
	if got := s.Lookup('A', []byte("bar")); got != 2 {
		t.Fatal("bar should be 2 and not", got)
	}
	if got := s.Lookup('B', []byte("foo")); got != 4 {
		t.Fatal("foo in B should be 4 and not", got)
	}
	if s.Len() != 4 {
		t.Fatal("should have 4 definitions and not", s.Len())
	}
}

func TestStoreExactMatch(t *testing.T) {
	s := NewStore()
	s.Define('A', []byte("foo"), 1)
	s.Define('A', []byte(""), 2)
	for _, name := range []string{"fo", "fooo", "Foo"} {
		if got := s.Lookup('A', []byte(name)); got != 0 {
			t.Fatal(name, "should not match, got", got)
		}
	}
	if got := s.Lookup('A', nil); got != 2 {
		t.Fatal("empty name should be 2 and not", got)
	}
}

func TestWords(t *testing.T) {
	s := NewStore()
	s.Define('A', []byte("a"), 1)
	s.Define('B', []byte("b"), 2)
	s.Define('A', []byte("c"), 3)
	var got []uint64
	s.Words('A', func(name []byte, serial uint64) bool {
		got = append(got, serial)
		return true
	})
	if len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Fatal("words of A should be [3 1] and not", got)
	}
	n := 0
	s.Words('A', func([]byte, uint64) bool { n++; return false })
	if n != 1 {
		t.Fatal("Words did not stop when asked")
	}
}

func TestStoreManyDefinitions(t *testing.T) {
	const n = 1<<17 + 3
	s := NewStore()
	names := make([][]byte, n)
	for i := range names {
		names[i] = []byte(strconv.Itoa(i))
		s.Define(byte(i), names[i], uint64(i+1))
	}
	if s.Len() != n {
		t.Fatal("should have", n, "definitions and not", s.Len())
	}
	for _, i := range []int{0, 255, 1 << 16, n - 1} {
		if got := s.Lookup(byte(i), names[i]); got != uint64(i+1) {
			t.Fatalf("%s should be %d and not %d", names[i], i+1, got)
		}
	}
	last := n - 1
	count := 0
	s.Words(byte(last), func([]byte, uint64) bool { count++; return true })
	if want := n/Wordlists + 1; count != want {
		t.Fatal("wordlist", byte(last), "should hold", want, "names and not", count)
	}
}
