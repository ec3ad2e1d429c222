package index

import (
	"testing"

	"github.com/cxindex/cxindex"
)

// singleBitFlags pins every public bit to its one native flag. Values are
// spelled literally so renumbering on either side fails the test.
var singleBitFlags = map[ParseOption]cxindex.ParseFlags{
	DetailedPreprocessingRecord:          0x01,
	Incomplete:                           0x02,
	PrecompilePreamble:                   0x04,
	CacheCodeCompletionResults:           0x08,
	ForSerialization:                     0x10,
	SkipFunctionBodies:                   0x40,
	IncludeBriefCommentsInCodeCompletion: 0x80,
	CreatePreambleOnFirstParse:           0x100,
	KeepGoing:                            0x200,
	SingleFileParse:                      0x400,
	LimitSkipFunctionBodiesToPreamble:    0x800,
	IncludeAttributedTypes:               0x1000,
	VisitImplicitAttributes:              0x2000,
}

func TestNativeFlags_SingleBits(t *testing.T) {
	if len(singleBitFlags) != len(parseFlagTable) {
		t.Fatalf("expectation covers %d bits, table has %d", len(singleBitFlags), len(parseFlagTable))
	}
	for public, native := range singleBitFlags {
		if got := nativeFlags(public); got != native {
			t.Errorf("nativeFlags(%#x) = %#x, want %#x", public, got, native)
		}
	}
}

func TestNativeFlags_AllCombinations(t *testing.T) {
	// Exhaustive: the native word for any option set is exactly the union
	// of the per-bit mappings, no extras, no omissions.
	var allBits ParseOption
	for public := range singleBitFlags {
		allBits |= public
	}

	for opts := ParseOption(0); opts <= allBits; opts++ {
		if opts&^allBits != 0 {
			continue
		}
		var want cxindex.ParseFlags
		for public, native := range singleBitFlags {
			if opts&public != 0 {
				want |= native
			}
		}
		if got := nativeFlags(opts); got != want {
			t.Fatalf("nativeFlags(%#x) = %#x, want %#x", opts, got, want)
		}
	}
}

func TestNativeFlags_Zero(t *testing.T) {
	if got := nativeFlags(0); got != 0 {
		t.Errorf("nativeFlags(0) = %#x, want 0", got)
	}
}
