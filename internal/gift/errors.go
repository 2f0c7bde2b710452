package gift

import (
	"errors"
	"fmt"
)

// ErrMalformedBlock is matched by every parse failure.
var ErrMalformedBlock = errors.New("malformed question block")

var (
	// ErrMissingHeader indicates the block has no ::title:: header.
	ErrMissingHeader = errors.New("missing ::title:: header")
	// ErrMissingTitle indicates the header title is blank.
	ErrMissingTitle = errors.New("empty title")
	// ErrMissingBody indicates there is no text between the header and the choices.
	ErrMissingBody = errors.New("empty body")
	// ErrMissingChoices indicates the block has no non-empty marked choice.
	ErrMissingChoices = errors.New("no choices")
	// ErrUnterminatedChoices indicates the choice section has no closing brace.
	ErrUnterminatedChoices = errors.New("unterminated choice section")
)

// ParseError reports why a block could not be parsed.
type ParseError struct {
	Title string
	Err   error
}

// Error returns a readable message for the failure.
func (err *ParseError) Error() string {
	if err.Title == "" {
		return fmt.Sprintf("parse question: %v", err.Err)
	}
	return fmt.Sprintf("parse question %q: %v", err.Title, err.Err)
}

// Unwrap exposes the specific cause.
func (err *ParseError) Unwrap() error {
	return err.Err
}

// Is reports every ParseError as a malformed block.
func (err *ParseError) Is(target error) bool {
	return target == ErrMalformedBlock
}
