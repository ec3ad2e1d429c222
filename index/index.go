package index

import (
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/cxindex/cxindex"
	"github.com/cxindex/cxindex/errors"
	"github.com/cxindex/cxindex/marshal"
)

// handleGuard exclusively owns one frontend index handle and releases it
// at most once.
type handleGuard struct {
	fe       cxindex.Frontend
	handle   cxindex.IndexHandle
	released atomic.Bool
}

func (g *handleGuard) release() {
	if g.released.Swap(true) {
		return
	}
	g.fe.DisposeIndex(g.handle)
	Logger().Debug("index disposed",
		zap.Uint64("handle", uint64(g.handle)))
}

// Index owns one frontend index handle and creates translation units
// through it. Operations after Dispose are undefined; Dispose itself is
// the only operation safe to repeat.
type Index struct {
	guard   *handleGuard
	options Option
}

// New creates an Index with the given creation options. Index creation
// has no failure mode. The handle is released by Dispose, or by a runtime
// cleanup once the Index and every unit referencing it become
// unreachable.
func New(fe cxindex.Frontend, opts Option) *Index {
	var excludePCH, display int32
	if opts&ExcludePCHDeclarations != 0 {
		excludePCH = 1
	}
	if opts&DisplayDiagnostics != 0 {
		display = 1
	}

	guard := &handleGuard{
		fe:     fe,
		handle: fe.CreateIndex(excludePCH, display),
	}
	ix := &Index{guard: guard, options: opts}
	runtime.AddCleanup(ix, func(g *handleGuard) { g.release() }, guard)

	Logger().Debug("index created",
		zap.Uint64("handle", uint64(guard.handle)),
		zap.Uint32("options", uint32(opts)))
	return ix
}

// Options returns the creation-time option set.
func (ix *Index) Options() Option {
	return ix.options
}

// Handle exposes the raw frontend handle for collaborators that extend
// the index surface.
func (ix *Index) Handle() cxindex.IndexHandle {
	return ix.guard.handle
}

// Dispose releases the index handle. A no-op if already released.
func (ix *Index) Dispose() {
	ix.guard.release()
}

// LoadASTFile loads a previously serialized AST artifact from disk. The
// frontend provides no structured diagnostic for this failure mode, so
// the returned CompilerError carries no status code.
func (ix *Index) LoadASTFile(path string) (*TranslationUnit, error) {
	name := marshal.NewCString(path)
	defer name.Release()

	handle := ix.guard.fe.CreateTranslationUnit(ix.guard.handle, name.Ptr())
	if handle == 0 {
		Logger().Warn("AST file load failed",
			zap.String("path", path))
		return nil, errors.ASTLoadFailed()
	}
	return newTranslationUnit(ix, handle), nil
}
