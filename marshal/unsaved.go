package marshal

import (
	"fortio.org/safecast"

	"github.com/cxindex/cxindex"
)

// Overlay is one in-memory substitute for on-disk content: during a single
// parse, Contents masks whatever is on disk at Path. Overlays are consumed
// synchronously and never retained past the call.
type Overlay struct {
	Path     string
	Contents []byte
}

// conforming reports whether the overlay has a wire form. Contents that
// overflow the wire length field are rejected in the marshaling loop.
func (o Overlay) conforming() bool {
	return o.Path != ""
}

// UnsavedList is the marshaled form of one overlay sequence. The array is
// sized exactly to the input list; each non-conforming element leaves its
// slot entirely zeroed rather than being dropped, so positional alignment
// with the input is preserved.
type UnsavedList struct {
	files []cxindex.UnsavedFile
	bufs  []*[]byte
}

// NewUnsavedList marshals overlays into a positionally aligned
// UnsavedFile array.
func NewUnsavedList(overlays []Overlay) *UnsavedList {
	l := &UnsavedList{
		files: make([]cxindex.UnsavedFile, len(overlays)),
	}
	for i, o := range overlays {
		if !o.conforming() {
			continue // slot stays zeroed
		}
		length, err := safecast.Conv[uint32](len(o.Contents))
		if err != nil {
			continue
		}
		name := appendTerminatedString(o.Path)
		data := appendTerminated(o.Contents)
		l.bufs = append(l.bufs, name, data)
		l.files[i] = cxindex.UnsavedFile{
			Filename: &(*name)[0],
			Contents: &(*data)[0],
			Length:   length,
		}
	}
	return l
}

// Files returns the full-length array passed to the frontend, zeroed
// slots included. Invalid after Release.
func (l *UnsavedList) Files() []cxindex.UnsavedFile {
	return l.files
}

// Len returns the slot count, conforming or not.
func (l *UnsavedList) Len() int {
	return len(l.files)
}

// Release returns the backing buffers to the pool. Safe to call twice.
func (l *UnsavedList) Release() {
	for _, bp := range l.bufs {
		putBuf(bp)
	}
	l.bufs = nil
	l.files = nil
}
