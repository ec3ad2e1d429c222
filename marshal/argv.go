package marshal

// ArgList is the marshaled form of one compiler-argument sequence: a
// contiguous array of borrowed, NUL-terminated string pointers, one per
// argument, in the caller's order. It serves exactly one frontend call
// and must be released on every exit path of that call.
type ArgList struct {
	ptrs []*byte
	bufs []*[]byte
}

// NewArgList marshals args preserving order verbatim. The backing
// character data is copied out of the caller's strings, so the caller's
// sequence may be mutated freely after construction.
func NewArgList(args []string) *ArgList {
	l := &ArgList{
		ptrs: make([]*byte, len(args)),
		bufs: make([]*[]byte, len(args)),
	}
	for i, arg := range args {
		bp := appendTerminatedString(arg)
		l.bufs[i] = bp
		l.ptrs[i] = &(*bp)[0]
	}
	return l
}

// Pointers returns the argument array passed to the frontend. The array
// and everything it points at are invalid after Release.
func (l *ArgList) Pointers() []*byte {
	return l.ptrs
}

// Len returns the argument count.
func (l *ArgList) Len() int {
	return len(l.ptrs)
}

// Release returns the backing buffers to the pool. Safe to call twice.
func (l *ArgList) Release() {
	for _, bp := range l.bufs {
		putBuf(bp)
	}
	l.bufs = nil
	l.ptrs = nil
}
