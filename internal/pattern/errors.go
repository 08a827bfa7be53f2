package pattern

import "errors"

// Sentinel errors for malformed input. Callers can match them with errors.Is
// after Build or Generate wraps them with position context.
var (
	ErrUnmatchedParen     = errors.New("unmatched '(' in input")
	ErrUnmatchedBrace     = errors.New("unmatched '{' in input, expected '}' for placeholder")
	ErrInvalidPlaceholder = errors.New("invalid placeholder, expected format {digit/number}")
)
