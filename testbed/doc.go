// Package testbed provides an in-process reference implementation of the
// cxindex.Frontend contract for integration tests.
//
// The testbed frontend is not a parser. It resolves source content the
// way a real frontend would (unsaved overlays first, then disk) and
// succeeds once content is resolved, recording the exact marshaled
// arrays it received so tests can assert on argument order, overlay
// alignment, and flag words. AST artifacts are msgpack-encoded fixture
// files produced by WriteArtifact.
package testbed
