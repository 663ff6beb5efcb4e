package ep

// Bytes at or below Delim end a name. The sentinel is one of them.
const (
	Delim    = ' '
	Sentinel = 0x00
)

// scanName returns the run of bytes > Delim starting at pos and the position
// just after it. buf must end in a byte <= Delim.
func scanName(buf []byte, pos int) (name []byte, next int) {
	next = pos
	for buf[next] > Delim {
		next++
	}
	name = buf[pos:next:next]
	return
}
