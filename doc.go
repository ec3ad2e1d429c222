// Package cxindex provides a Go orchestration layer over a compiler
// frontend with C-style entrypoints, for building and managing translation
// units in static-analysis tooling.
//
// The frontend (parser, semantic analysis) is an opaque collaborator
// reached through the narrow Frontend contract defined in this package.
// The library's job is everything around the entrypoints: lifetime-bound
// index and translation-unit handles, call-scoped argument and unsaved-file
// buffer construction with exact positional semantics, bit-flag translation
// between the public option vocabulary and the frontend's native flags, and
// mapping of unstructured frontend failure into a single stable error kind.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	cxindex/          Root package with the Frontend ABI contract
//	├── index/        High-level API: Source Index, Translation Unit, options
//	├── marshal/      Call-scoped argv and unsaved-file array construction
//	├── errors/       The single CompilerError kind
//	└── testbed/      In-process reference frontend for integration tests
//
// # Quick Start
//
// Create an index and parse a source file:
//
//	idx := index.New(fe, index.DisplayDiagnostics)
//	defer idx.Dispose()
//
//	tu, err := idx.ParseFile("main.c", []string{"-std=c99"}, index.SkipFunctionBodies)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tu.Dispose()
//
// Parse calls are synchronous and carry no cancellation point; concurrent
// parses against one index must be serialized by the caller.
package cxindex
