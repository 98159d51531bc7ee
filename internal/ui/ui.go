// Package ui provides the interactive prompts and the styled rendering of
// candidates and results.
package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

// ErrQuit is returned by Input when the user asks to leave.
var ErrQuit = errors.New("quit requested")

// ErrSkipped is returned by Select when the user skips the choice.
var ErrSkipped = errors.New("selection skipped")

// skipLabel is appended to every selection list.
const skipLabel = "Skip"

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Input prompts for free text. Empty input, "exit", Ctrl-C and Ctrl-D all
// yield ErrQuit.
func Input(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
	}

	value, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", ErrQuit
		}
		return "", fmt.Errorf("reading input: %w", err)
	}

	value = strings.TrimSpace(value)
	if IsQuit(value) {
		return "", ErrQuit
	}
	return value, nil
}

// IsQuit reports whether a typed value means "leave the loop".
func IsQuit(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, "exit")
}

// Select presents numbered items plus a trailing "Skip" entry and returns the
// chosen index. Choosing Skip, or cancelling, yields ErrSkipped.
func Select(label string, items []string) (int, error) {
	if len(items) == 0 {
		return -1, fmt.Errorf("no items to select from")
	}

	prompt := promptui.Select{
		Label: label,
		Items: withSkip(items),
		Size:  10,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return -1, ErrSkipped
		}
		return -1, fmt.Errorf("selection failed: %w", err)
	}

	if idx >= len(items) {
		return -1, ErrSkipped
	}
	return idx, nil
}

// withSkip numbers the items from 1 and appends the skip entry.
func withSkip(items []string) []string {
	out := make([]string, 0, len(items)+1)
	for i, item := range items {
		out = append(out, fmt.Sprintf("%d. %s", i+1, item))
	}
	return append(out, skipLabel)
}

// Spin runs action behind a spinner when attached to a terminal, and
// directly otherwise. The action always finishes before Spin returns. When
// ctx ends or the spinner is interrupted, the action's context is cancelled
// and Spin returns that error instead of the action's.
func Spin(ctx context.Context, title string, action func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !IsInteractive() {
		return action(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var actionErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		actionErr = action(ctx)
	}()

	runErr := spinner.New().
		Context(ctx).
		Title(title).
		Type(spinner.Dots).
		ActionWithErr(func(context.Context) error {
			<-done
			return nil
		}).
		Run()

	cancel()
	<-done

	if runErr != nil {
		return fmt.Errorf("spinner stopped: %w", runErr)
	}
	return actionErr
}
