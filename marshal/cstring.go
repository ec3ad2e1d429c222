package marshal

import "unsafe"

// appendTerminated copies data into a pooled buffer and appends the NUL
// terminator. The returned buffer is always non-empty, so taking the
// address of its first byte is valid even for empty input.
func appendTerminated(data []byte) *[]byte {
	bp := getBuf()
	b := *bp
	b = append(b, data...)
	b = append(b, 0)
	*bp = b
	return bp
}

func appendTerminatedString(s string) *[]byte {
	bp := getBuf()
	b := *bp
	b = append(b, s...)
	b = append(b, 0)
	*bp = b
	return bp
}

// CString is a single NUL-terminated string buffer borrowed by the
// frontend for one call.
type CString struct {
	buf *[]byte
}

// NewCString marshals s into a NUL-terminated buffer.
func NewCString(s string) *CString {
	return &CString{buf: appendTerminatedString(s)}
}

// Ptr returns the pointer passed to the frontend. Invalid after Release.
func (c *CString) Ptr() *byte {
	if c.buf == nil {
		return nil
	}
	return &(*c.buf)[0]
}

// Release returns the backing buffer to the pool. Safe to call twice.
func (c *CString) Release() {
	putBuf(c.buf)
	c.buf = nil
}

// GoString copies the NUL-terminated string at p back into Go memory.
// Frontend implementations use it to read borrowed name pointers.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// GoBytes copies length bytes at p back into Go memory.
func GoBytes(p *byte, length uint32) []byte {
	if p == nil || length == 0 {
		return nil
	}
	out := make([]byte, length)
	copy(out, unsafe.Slice(p, length))
	return out
}
