// Package index provides the high-level API for building translation
// units: the Source Index owning one frontend index handle, the public
// creation option vocabulary, and the parse and AST-file entrypoints.
//
// # Lifecycle
//
// An Index is created once, used for any number of creation calls, and
// disposed exactly once:
//
//	idx := index.New(fe, index.DisplayDiagnostics)
//	defer idx.Dispose()
//
//	tu, err := idx.ParseFile("main.c", []string{"-std=c99"}, index.SkipFunctionBodies)
//
// Dispose is idempotent; an unreachable Index is also released by a
// runtime cleanup. Translation units hold a reference to their index and
// must not be used once it is disposed.
//
// # Concurrency
//
// Parse calls take no internal lock; the frontend is not assumed to be
// thread-safe per index. Serialize concurrent creation calls against the
// same Index externally.
package index
