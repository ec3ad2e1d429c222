// Package marshal builds the call-scoped buffers handed to the frontend's
// C-style entrypoints.
//
// Two marshaled forms exist:
//
//	ArgList      - contiguous array of NUL-terminated compiler-flag
//	               pointers, order preserved verbatim
//	UnsavedList  - array of UnsavedFile slots positionally aligned with
//	               the caller's overlay list; non-conforming entries stay
//	               fully zeroed, never compacted
//
// All backing storage is borrowed for exactly one frontend call: construct
// immediately before the call, Release on every exit path immediately
// after. Pointers obtained from a list are invalid once it is released;
// backing buffers are recycled through a pool.
package marshal
