// Package prompt asks the lifter yes/no questions on a terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/claude/yawa/internal/models"
	"github.com/claude/yawa/internal/service"
)

// MaxRepsQuestion is asked after a completed lift that has a rep range.
const MaxRepsQuestion = "        ... were you able to achieve the maximum rep range?"

// ErrNoAnswer means input ended before a question was answered.
var ErrNoAnswer = errors.New("input closed before an answer was given")

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

var _ service.UserInput = (*Prompter)(nil)

// CheckComplete asks whether each attempt was completed. Lifts with a rep
// range get a follow-up about the top of the range; other completed lifts
// count as completed at maximum reps.
func (p *Prompter) CheckComplete(ctx context.Context, attempts []models.LiftAttempt) ([]models.LiftAttemptResult, error) {
	results := make([]models.LiftAttemptResult, 0, len(attempts))
	for _, attempt := range attempts {
		done, err := p.Confirm(ctx, fmt.Sprintf("Did you complete: %s?", attempt))
		if err != nil {
			return nil, err
		}
		if !done {
			results = append(results, models.NotCompleted)
			continue
		}

		maxReps := true
		if attempt.Lift.HasRepRange() {
			if maxReps, err = p.Confirm(ctx, MaxRepsQuestion); err != nil {
				return nil, err
			}
		}
		results = append(results, models.Completed(maxReps))
	}
	return results, nil
}

// Confirm prints question followed by " [y/n] " and waits for "y" or "n".
// Any other answer repeats the question.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if _, err := fmt.Fprintf(p.out, "%s [y/n] ", question); err != nil {
			return false, fmt.Errorf("writing prompt: %w", err)
		}

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("reading answer: %w", err)
		}
		switch strings.TrimSpace(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		if errors.Is(err, io.EOF) {
			return false, ErrNoAnswer
		}
	}
}
