package errors

import (
	"strconv"
	"strings"

	"github.com/cxindex/cxindex"
)

// creationFailedMsg is the fixed message for all creation failures. It is
// identical across the AST-file and general parse paths.
const creationFailedMsg = "unable to create translation unit"

// CompilerError is the single error kind for translation-unit creation
// failures. Code carries the frontend's raw status when the failing
// entrypoint supplies one (HasCode true); the AST-file load path never
// does. The code is opaque at this layer and left uninterpreted.
type CompilerError struct {
	Cause   error
	Code    cxindex.ErrorCode
	HasCode bool
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	var b strings.Builder

	b.WriteString(creationFailedMsg)

	if e.HasCode {
		b.WriteString(" (status ")
		b.WriteString(strconv.FormatInt(int64(e.Code), 10))
		b.WriteByte(')')
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error, if any.
func (e *CompilerError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a CompilerError. There is one kind at this
// layer, so any two match regardless of attached code.
func (e *CompilerError) Is(target error) bool {
	_, ok := target.(*CompilerError)
	return ok
}

// CreationFailed creates the error for a null unit from the general parse
// entrypoint, attaching the frontend's raw status code.
func CreationFailed(code cxindex.ErrorCode) *CompilerError {
	return &CompilerError{
		Code:    code,
		HasCode: true,
	}
}

// ASTLoadFailed creates the error for a null unit from the AST-file load
// entrypoint. The frontend supplies no status code on this path, so none
// is attached.
func ASTLoadFailed() *CompilerError {
	return &CompilerError{}
}
