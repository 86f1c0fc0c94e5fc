package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/rpgo/pension-advisor/internal/domain"
	"github.com/rpgo/pension-advisor/internal/output"
	"go.uber.org/zap"
)

// Planner builds a plan from a validated profile.
type Planner interface {
	GeneratePlan(ctx context.Context, profile domain.UserProfile) (domain.Plan, error)
}

const (
	assistantPrefix = "Advisor: "
	userPrefix      = "You: "
)

// Runner drives a Session over a line-oriented reader and writer.
type Runner struct {
	Planner   Planner
	Formatter output.Formatter // defaults to the console report
	Log       *zap.Logger
}

// Run asks every question, then prints the plan report. Quitting or running
// out of input ends the session without error.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := r.Log
	if log == nil {
		log = zap.L()
	}
	f := r.Formatter
	if f == nil {
		f = output.ConsoleFormatter{}
	}

	sess := NewSession()
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "Tip: type quit at any time to leave, or skip to pass on an optional question.")
	fmt.Fprintf(out, "\n%s%s\n", assistantPrefix, sess.Prompt())

	for !sess.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, userPrefix)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return eris.Wrap(err, "chat: read input")
			}
			fmt.Fprintf(out, "\n%sGoodbye!\n", assistantPrefix)
			return nil
		}

		err := sess.Answer(scanner.Text())
		switch {
		case errors.Is(err, ErrQuit):
			fmt.Fprintf(out, "\n%sThank you for using the retirement planning assistant. Goodbye!\n", assistantPrefix)
			return nil
		case domain.IsValidationError(err):
			fmt.Fprintf(out, "%s%s\n", assistantPrefix, err.Error())
			continue
		case err != nil:
			return err
		}
		log.Debug("chat stage answered", zap.Int("remaining", len(sess.stages)-sess.index))
		if !sess.Done() {
			fmt.Fprintf(out, "\n%s%s\n", assistantPrefix, sess.Prompt())
		}
	}

	profile, err := sess.Profile()
	if err != nil {
		return eris.Wrap(err, "chat: build profile")
	}
	plan, err := r.Planner.GeneratePlan(ctx, profile)
	if err != nil {
		return eris.Wrap(err, "chat: generate plan")
	}
	report, err := f.Format(&plan)
	if err != nil {
		return eris.Wrap(err, "chat: format plan")
	}
	fmt.Fprintf(out, "\n%s\n", report)
	fmt.Fprintf(out, "%sYour report is ready. Thank you!\n", assistantPrefix)
	return nil
}
