package notation

import (
	"fmt"

	"github.com/claude/yawa/internal/models"
)

// Kind names the grammar a ParseError came from.
type Kind string

const (
	KindSet          Kind = "set"
	KindSets         Kind = "sets"
	KindWeightScheme Kind = "weight scheme"
	KindLift         Kind = "lift"
	KindDay          Kind = "day"
	KindResult       Kind = "attempt result"
)

// ParseError reports malformed notation. It matches models.ErrNotation
// under errors.Is.
type ParseError struct {
	Kind  Kind
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %s notation %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("cannot parse %s notation %q", e.Kind, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is lets callers test for models.ErrNotation without knowing the grammar.
func (e *ParseError) Is(target error) bool {
	return target == models.ErrNotation
}

func parseError(kind Kind, input string, err error) error {
	return &ParseError{Kind: kind, Input: input, Err: err}
}
