package cxindex

// IndexHandle is an opaque frontend index handle. Zero means null.
type IndexHandle uintptr

// UnitHandle is an opaque frontend translation-unit handle. Zero means null.
type UnitHandle uintptr

// UnsavedFile is the wire representation of one in-memory file overlay.
// Filename and Contents point at NUL-terminated buffers owned by the
// marshaling layer and valid only for the duration of a single frontend
// call. A fully zeroed UnsavedFile is a null slot and is passed through
// unchanged; the frontend skips it.
type UnsavedFile struct {
	Filename *byte
	Contents *byte
	Length   uint32
}

// IsZero reports whether the slot carries no overlay.
func (u UnsavedFile) IsZero() bool {
	return u.Filename == nil && u.Contents == nil && u.Length == 0
}

// ErrorCode is the frontend's raw status code for unit creation. It is
// carried through uninterpreted; this layer only distinguishes Success
// from everything else.
type ErrorCode int32

const (
	Success          ErrorCode = 0
	Failure          ErrorCode = 1
	Crashed          ErrorCode = 2
	InvalidArguments ErrorCode = 3
	ASTReadError     ErrorCode = 4
)

// ParseFlags is the frontend's native unit-creation flag word.
type ParseFlags uint32

// Native unit-creation flags. Values are part of the frontend ABI and
// must not be renumbered.
const (
	FlagDetailedPreprocessingRecord       ParseFlags = 0x01
	FlagIncomplete                        ParseFlags = 0x02
	FlagPrecompilePreamble                ParseFlags = 0x04
	FlagCacheCompletionResults            ParseFlags = 0x08
	FlagForSerialization                  ParseFlags = 0x10
	FlagSkipFunctionBodies                ParseFlags = 0x40
	FlagIncludeBriefComments              ParseFlags = 0x80
	FlagCreatePreambleOnFirstParse        ParseFlags = 0x100
	FlagKeepGoing                         ParseFlags = 0x200
	FlagSingleFileParse                   ParseFlags = 0x400
	FlagLimitSkipFunctionBodiesToPreamble ParseFlags = 0x800
	FlagIncludeAttributedTypes            ParseFlags = 0x1000
	FlagVisitImplicitAttributes           ParseFlags = 0x2000
)

// Frontend is the C-style entrypoint surface of the external compiler
// frontend. Implementations receive borrowed, NUL-terminated buffers and
// must not retain them past the call. The contract is deliberately flat so
// that a cgo binding and the in-process testbed satisfy it identically.
type Frontend interface {
	// CreateIndex creates a frontend index. The two parameters are the
	// frontend's own int convention: nonzero excludeDeclarationsFromPCH
	// omits precompiled-header declarations, nonzero displayDiagnostics
	// emits diagnostics as they occur. Index creation has no documented
	// failure mode.
	CreateIndex(excludeDeclarationsFromPCH, displayDiagnostics int32) IndexHandle

	// DisposeIndex releases an index handle. Passing a handle twice is
	// undefined; the wrapper layer guarantees it never does.
	DisposeIndex(idx IndexHandle)

	// CreateTranslationUnit loads a previously serialized AST artifact.
	// Returns the zero handle on failure; no status code is available on
	// this path.
	CreateTranslationUnit(idx IndexHandle, astFilename *byte) UnitHandle

	// ParseTranslationUnit parses a source file into a translation unit.
	// sourceFilename may be nil, in which case the source path must appear
	// in args. args is a contiguous array of borrowed NUL-terminated
	// string pointers; unsaved is positionally aligned with the caller's
	// overlay list and may contain zeroed slots. On failure *out is left
	// zero and the returned code is non-Success.
	ParseTranslationUnit(idx IndexHandle, sourceFilename *byte, args []*byte, unsaved []UnsavedFile, options ParseFlags, out *UnitHandle) ErrorCode

	// DisposeTranslationUnit releases a translation-unit handle.
	DisposeTranslationUnit(tu UnitHandle)
}
