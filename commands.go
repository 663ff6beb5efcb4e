package ep

import "fmt"

/*
'\n' <wid> <name>       ( -- )  \ Define name in wordlist wid.

The serial number is used up even when name is empty.
*/
func (in *Interpreter) define(at int) error {
	if in.pos >= len(in.buf)-1 {
		return &ProtocolError{Offset: at, Byte: '\n', Reason: "definition without a wordlist"}
	}
	wid := in.buf[in.pos]
	name, next := scanName(in.buf, in.pos+1)
	in.store.Define(wid, name, in.serial)
	in.serial++
	in.pos = next
	in.stats.Defined++
	return nil
}

/*
'\t' <wids>             ( -- )  \ Replace the search order, top last.
*/
func (in *Interpreter) setOrder() {
	ids, next := scanName(in.buf, in.pos)
	in.order.Set(ids)
	in.pos = next
	in.stats.Orders++
	if in.log.Verbose() {
		in.log.Debug("order %s, %d wordlists", in.order.String(), in.order.Len())
	}
}

/*
' ' <name>              ( -- )  \ Find name, fold its serial into the hash.
*/
func (in *Interpreter) find() {
	name, next := scanName(in.buf, in.pos)
	in.pos = next
	found := in.order.Resolve(in.store, name)
	in.stats.Lookups++
	if in.trace != nil {
		fmt.Fprintf(in.trace, "%s = %d\n", name, found)
	}
	if found == 0 {
		in.stats.Missed++
		return
	}
	in.stats.Found++
	in.hash = in.hash.Fold(found)
}
