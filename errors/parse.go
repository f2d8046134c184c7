// Package errors defines the public error types for cycle-notation parsing.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of cycle-notation error.
type ErrorCode string

const (
	// ErrSyntax indicates the notation is structurally malformed
	// (missing parenthesis, empty cycle, stray bytes).
	ErrSyntax ErrorCode = "perm-syntax"
	// ErrNotNumeric indicates a cycle member is not a digit.
	ErrNotNumeric ErrorCode = "perm-not-numeric"
	// ErrDuplicateElement indicates an element repeats within one cycle.
	ErrDuplicateElement ErrorCode = "perm-duplicate-element"
	// ErrOutOfRange indicates an element outside {1..groundSize}.
	ErrOutOfRange ErrorCode = "perm-out-of-range"
	// ErrGroundSize indicates no ground size could be determined.
	ErrGroundSize ErrorCode = "perm-ground-size"
)

// Parse describes a cycle-notation error with an error code and the byte
// offset into the input where the problem was found. Offset is -1 when no
// position applies.
//
//nolint:errname // public API name uses the domain term.
type Parse struct {
	Code    string
	Message string
	Offset  int
}

// Error formats the parse error for display, including code and position.
func (p *Parse) Error() string {
	if p == nil {
		return "parse <nil>"
	}
	if p.Offset < 0 {
		return fmt.Sprintf("[%s] %s", p.Code, p.Message)
	}
	return fmt.Sprintf("[%s] %s at offset %d", p.Code, p.Message, p.Offset)
}

// NewParse builds a Parse error with a code, message, and byte offset.
func NewParse(code ErrorCode, msg string, offset int) *Parse {
	return &Parse{Code: string(code), Message: msg, Offset: offset}
}

// NewParsef formats a message and builds a Parse error.
func NewParsef(code ErrorCode, offset int, format string, args ...any) *Parse {
	return NewParse(code, fmt.Sprintf(format, args...), offset)
}

// AsParse extracts a Parse error from an error returned by construction helpers.
func AsParse(err error) (*Parse, bool) {
	if err == nil {
		return nil, false
	}
	var p *Parse
	if errors.As(err, &p) && p != nil {
		return p, true
	}
	return nil, false
}

// CodeOf returns the error code carried by err, or "" if err is not a Parse error.
func CodeOf(err error) ErrorCode {
	p, ok := AsParse(err)
	if !ok {
		return ""
	}
	return ErrorCode(p.Code)
}
