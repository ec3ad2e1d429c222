package index

import "github.com/cxindex/cxindex"

// Option is the index-creation option set. Each bit is independent.
type Option uint32

const (
	// ExcludePCHDeclarations omits precompiled-header declarations from
	// the index.
	ExcludePCHDeclarations Option = 1 << iota
	// DisplayDiagnostics emits diagnostics as they occur.
	DisplayDiagnostics
)

// ParseOption is the public unit-creation option set. Each bit maps to
// exactly one native frontend flag; absent bits default off and
// combinations are additive with no interaction rules.
type ParseOption uint32

const (
	// DetailedPreprocessingRecord retains macro and include detail.
	DetailedPreprocessingRecord ParseOption = 1 << iota
	// Incomplete marks the unit incomplete.
	Incomplete
	PrecompilePreamble
	CacheCodeCompletionResults
	ForSerialization
	SkipFunctionBodies
	IncludeBriefCommentsInCodeCompletion
	CreatePreambleOnFirstParse
	// KeepGoing continues past fatal errors.
	KeepGoing
	SingleFileParse
	LimitSkipFunctionBodiesToPreamble
	IncludeAttributedTypes
	VisitImplicitAttributes
)

// parseFlagTable is the one-to-one translation from public bits to native
// flags. A single table iterated once keeps the mapping exhaustive and
// auditable.
var parseFlagTable = [...]struct {
	public ParseOption
	native cxindex.ParseFlags
}{
	{DetailedPreprocessingRecord, cxindex.FlagDetailedPreprocessingRecord},
	{Incomplete, cxindex.FlagIncomplete},
	{PrecompilePreamble, cxindex.FlagPrecompilePreamble},
	{CacheCodeCompletionResults, cxindex.FlagCacheCompletionResults},
	{ForSerialization, cxindex.FlagForSerialization},
	{SkipFunctionBodies, cxindex.FlagSkipFunctionBodies},
	{IncludeBriefCommentsInCodeCompletion, cxindex.FlagIncludeBriefComments},
	{CreatePreambleOnFirstParse, cxindex.FlagCreatePreambleOnFirstParse},
	{KeepGoing, cxindex.FlagKeepGoing},
	{SingleFileParse, cxindex.FlagSingleFileParse},
	{LimitSkipFunctionBodiesToPreamble, cxindex.FlagLimitSkipFunctionBodiesToPreamble},
	{IncludeAttributedTypes, cxindex.FlagIncludeAttributedTypes},
	{VisitImplicitAttributes, cxindex.FlagVisitImplicitAttributes},
}

// nativeFlags translates a public option set into the frontend's flag
// word.
func nativeFlags(opts ParseOption) cxindex.ParseFlags {
	var flags cxindex.ParseFlags
	for _, m := range parseFlagTable {
		if opts&m.public != 0 {
			flags |= m.native
		}
	}
	return flags
}
