package index

import (
	"sync/atomic"

	"github.com/cxindex/cxindex"
)

// TranslationUnit wraps the AST handle of one successfully created unit.
// It lives independently of the call that produced it but must not be
// used after its owning Index is disposed; the unit's reference keeps the
// Index from being collected, nothing more.
type TranslationUnit struct {
	index    *Index
	handle   cxindex.UnitHandle
	disposed atomic.Bool
}

func newTranslationUnit(ix *Index, handle cxindex.UnitHandle) *TranslationUnit {
	return &TranslationUnit{index: ix, handle: handle}
}

// Index returns the owning index.
func (tu *TranslationUnit) Index() *Index {
	return tu.index
}

// Handle exposes the raw AST handle for the unit's query surface.
func (tu *TranslationUnit) Handle() cxindex.UnitHandle {
	return tu.handle
}

// Dispose releases the unit handle. A no-op if already released. Must
// run before the owning index is disposed.
func (tu *TranslationUnit) Dispose() {
	if tu.disposed.Swap(true) {
		return
	}
	tu.index.guard.fe.DisposeTranslationUnit(tu.handle)
}
