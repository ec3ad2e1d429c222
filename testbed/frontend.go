package testbed

import (
	"os"
	"strings"
	"sync"

	"github.com/cxindex/cxindex"
	"github.com/cxindex/cxindex/marshal"
)

// IndexState is the testbed's view of one created index.
type IndexState struct {
	ExcludePCH         bool
	DisplayDiagnostics bool
	Disposed           bool
	DisposeCount       int
}

// Unit is the testbed's view of one created translation unit.
type Unit struct {
	Path     string
	Source   []byte
	Flags    cxindex.ParseFlags
	FromAST  bool
	Disposed bool
}

// UnsavedSnapshot is the decoded form of one UnsavedFile slot as the
// frontend saw it.
type UnsavedSnapshot struct {
	Zero     bool
	Path     string
	Contents []byte
}

// ParseCall records one ParseTranslationUnit invocation.
type ParseCall struct {
	Path    string
	Args    []string
	Unsaved []UnsavedSnapshot
	Flags   cxindex.ParseFlags
	Code    cxindex.ErrorCode
}

// Frontend implements cxindex.Frontend in process. It copies every
// borrowed buffer it receives before returning, honoring the contract
// that buffers are only valid for the duration of the call.
type Frontend struct {
	mu      sync.Mutex
	next    uintptr
	indexes map[cxindex.IndexHandle]*IndexState
	units   map[cxindex.UnitHandle]*Unit
	calls   []ParseCall
}

// New creates an empty testbed frontend.
func New() *Frontend {
	return &Frontend{
		indexes: make(map[cxindex.IndexHandle]*IndexState),
		units:   make(map[cxindex.UnitHandle]*Unit),
	}
}

var _ cxindex.Frontend = (*Frontend)(nil)

func (f *Frontend) nextHandle() uintptr {
	f.next++
	return f.next
}

// CreateIndex implements cxindex.Frontend.
func (f *Frontend) CreateIndex(excludeDeclarationsFromPCH, displayDiagnostics int32) cxindex.IndexHandle {
	f.mu.Lock()
	defer f.mu.Unlock()

	h := cxindex.IndexHandle(f.nextHandle())
	f.indexes[h] = &IndexState{
		ExcludePCH:         excludeDeclarationsFromPCH != 0,
		DisplayDiagnostics: displayDiagnostics != 0,
	}
	return h
}

// DisposeIndex implements cxindex.Frontend.
func (f *Frontend) DisposeIndex(idx cxindex.IndexHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if st, ok := f.indexes[idx]; ok {
		st.Disposed = true
		st.DisposeCount++
	}
}

// CreateTranslationUnit implements cxindex.Frontend. It loads a msgpack
// artifact written by WriteArtifact; any read or decode failure yields
// the zero handle with no further detail, matching the entrypoint's
// contract.
func (f *Frontend) CreateTranslationUnit(idx cxindex.IndexHandle, astFilename *byte) cxindex.UnitHandle {
	path := marshal.GoString(astFilename)

	a, err := readArtifact(path)
	if err != nil {
		return 0
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	h := cxindex.UnitHandle(f.nextHandle())
	f.units[h] = &Unit{
		Path:    a.Path,
		Source:  a.Source,
		FromAST: true,
	}
	return h
}

// ParseTranslationUnit implements cxindex.Frontend. Content resolves
// overlay-first, then disk. No source path anywhere yields
// InvalidArguments; unreadable source yields Failure.
func (f *Frontend) ParseTranslationUnit(idx cxindex.IndexHandle, sourceFilename *byte, args []*byte, unsaved []cxindex.UnsavedFile, options cxindex.ParseFlags, out *cxindex.UnitHandle) cxindex.ErrorCode {
	call := ParseCall{
		Path:    marshal.GoString(sourceFilename),
		Args:    make([]string, len(args)),
		Unsaved: make([]UnsavedSnapshot, len(unsaved)),
		Flags:   options,
	}
	for i, p := range args {
		call.Args[i] = marshal.GoString(p)
	}
	for i, u := range unsaved {
		if u.IsZero() {
			call.Unsaved[i] = UnsavedSnapshot{Zero: true}
			continue
		}
		call.Unsaved[i] = UnsavedSnapshot{
			Path:     marshal.GoString(u.Filename),
			Contents: marshal.GoBytes(u.Contents, u.Length),
		}
	}

	code := f.parse(&call, out)
	call.Code = code

	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
	return code
}

func (f *Frontend) parse(call *ParseCall, out *cxindex.UnitHandle) cxindex.ErrorCode {
	path := call.Path
	if path == "" {
		for _, a := range call.Args {
			if a != "" && !strings.HasPrefix(a, "-") {
				path = a
				break
			}
		}
	}
	if path == "" {
		return cxindex.InvalidArguments
	}

	source, ok := resolveSource(path, call.Unsaved)
	if !ok {
		return cxindex.Failure
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	h := cxindex.UnitHandle(f.nextHandle())
	f.units[h] = &Unit{
		Path:   path,
		Source: source,
		Flags:  call.Flags,
	}
	*out = h
	return cxindex.Success
}

func resolveSource(path string, unsaved []UnsavedSnapshot) ([]byte, bool) {
	for _, u := range unsaved {
		if !u.Zero && u.Path == path {
			return u.Contents, true
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}

// DisposeTranslationUnit implements cxindex.Frontend.
func (f *Frontend) DisposeTranslationUnit(tu cxindex.UnitHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if u, ok := f.units[tu]; ok {
		u.Disposed = true
	}
}

// Index returns the recorded state for an index handle.
func (f *Frontend) Index(h cxindex.IndexHandle) *IndexState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.indexes[h]
}

// Unit returns the recorded state for a unit handle.
func (f *Frontend) Unit(h cxindex.UnitHandle) *Unit {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.units[h]
}

// Calls returns every recorded parse invocation in order.
func (f *Frontend) Calls() []ParseCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ParseCall(nil), f.calls...)
}

// LastCall returns the most recent parse invocation, or nil.
func (f *Frontend) LastCall() *ParseCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	call := f.calls[len(f.calls)-1]
	return &call
}

// LiveUnits counts units created and not yet disposed.
func (f *Frontend) LiveUnits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, u := range f.units {
		if !u.Disposed {
			n++
		}
	}
	return n
}
