package index

import (
	"go.uber.org/zap"

	"github.com/cxindex/cxindex"
	"github.com/cxindex/cxindex/errors"
	"github.com/cxindex/cxindex/marshal"
)

// Parse is the general creation entrypoint. path may be empty, in which
// case the source path must be supplied via args. overlays mask on-disk
// content for matching paths during this parse only; args are forwarded
// verbatim and in order; opts translates bit-for-bit to native flags.
//
// Argument and overlay buffers live for exactly this call and are
// released on every exit path. A null unit from the frontend maps to a
// CompilerError carrying the raw status code.
func (ix *Index) Parse(path string, overlays []marshal.Overlay, args []string, opts ParseOption) (*TranslationUnit, error) {
	argv := marshal.NewArgList(args)
	defer argv.Release()

	unsaved := marshal.NewUnsavedList(overlays)
	defer unsaved.Release()

	var namePtr *byte
	if path != "" {
		name := marshal.NewCString(path)
		defer name.Release()
		namePtr = name.Ptr()
	}

	var handle cxindex.UnitHandle
	code := ix.guard.fe.ParseTranslationUnit(
		ix.guard.handle, namePtr, argv.Pointers(), unsaved.Files(),
		nativeFlags(opts), &handle)
	if code != cxindex.Success || handle == 0 {
		Logger().Warn("translation unit creation failed",
			zap.String("path", path),
			zap.Int32("status", int32(code)),
			zap.Int("args", argv.Len()),
			zap.Int("overlays", unsaved.Len()))
		return nil, errors.CreationFailed(code)
	}
	return newTranslationUnit(ix, handle), nil
}

// ParseFile parses the source file at path with no overlays.
func (ix *Index) ParseFile(path string, args []string, opts ParseOption) (*TranslationUnit, error) {
	return ix.Parse(path, nil, args, opts)
}

// ParseArgs parses with the source path supplied inside args.
func (ix *Index) ParseArgs(args []string, opts ParseOption) (*TranslationUnit, error) {
	return ix.Parse("", nil, args, opts)
}

// ParseBuffer parses path with contents as its single overlay. Empty
// contents behave as the no-overlay form.
func (ix *Index) ParseBuffer(path string, contents []byte, args []string, opts ParseOption) (*TranslationUnit, error) {
	if len(contents) == 0 {
		return ix.Parse(path, nil, args, opts)
	}
	return ix.Parse(path, []marshal.Overlay{{Path: path, Contents: contents}}, args, opts)
}
