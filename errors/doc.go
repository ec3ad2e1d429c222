// Package errors provides the error type surfaced by the cxindex library.
//
// The frontend offers no structured failure detail when unit creation fails
// outright, so the taxonomy is deliberately a single kind: CompilerError.
// The only distinction between failures is whether a raw frontend status
// code is attached: the general parse entrypoint has one, the AST-file
// load path does not.
//
//	tu, err := idx.ParseFile("main.c", nil, 0)
//	var cerr *errors.CompilerError
//	if stderrors.As(err, &cerr) && cerr.HasCode {
//	    log.Printf("frontend status %d", cerr.Code)
//	}
//
// CompilerError implements the standard error interface and supports
// errors.Is/As.
package errors
