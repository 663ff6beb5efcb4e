package ep

// K is the odd multiplier of the lookup hash.
const K uint64 = 0xb64d532aaaaaaad5

// Hash folds found serial numbers into a running checksum.
type Hash uint64

// Fold mixes serial into h. Callers skip it for misses.
func (h Hash) Fold(serial uint64) Hash {
	x := (uint64(h) ^ serial) * K
	x ^= x >> 41
	return Hash(x)
}
