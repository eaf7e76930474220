package parser

import "fmt"

// Failure describes one syntax violation found while lexing or parsing.
// Failures never stop the parse; each one points at the byte span where
// the violation was detected.
type Failure struct {
	Origin  string
	Message string
	Span    Span
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s:%d: %s", f.Origin, f.Span.Offset, f.Message)
}
