// Package console handles prompts, menus and formatted output for the
// text adventure.
package console

//go:generate mockgen -destination=mock/mock_terminal.go -package=consolemock github.com/KirkDiggler/rpg-adventure/internal/console Terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

const (
	clearSequence   = "\033[H\033[2J"
	pressEnterText  = "Press Enter to continue..."
	invalidChoice   = "Invalid choice. Please try again."
	notANumber      = "Please enter a number."
	defaultBorderCh = "="
)

// Terminal is everything the game needs from the player's console
type Terminal interface {
	Println(a ...any)
	Printf(format string, a ...any)
	Prompt(ctx context.Context, message string) (string, error)
	PromptChoice(ctx context.Context, message string, minChoice, maxChoice int) (int, error)
	PressEnter(ctx context.Context) error
	Clear()
	Border(message string)
}

// Config holds the streams and display options for a Console
type Config struct {
	In  io.Reader
	Out io.Writer

	// ClearScreen enables the ANSI clear sequence; when off, Clear is a no-op
	ClearScreen bool
	// BorderChar defaults to "="
	BorderChar string
}

// Validate ensures the streams are set
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.In == nil {
		vb.RequiredField("In")
	}
	if c.Out == nil {
		vb.RequiredField("Out")
	}
	if len([]rune(c.BorderChar)) > 1 {
		vb.InvalidField("BorderChar", "must be a single character")
	}
	return vb.Build()
}

// Console reads lines from In and writes to Out
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	clearScreen bool
	borderChar  string
}

// New creates a Console
func New(cfg *Config) (*Console, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	borderChar := cfg.BorderChar
	if borderChar == "" {
		borderChar = defaultBorderCh
	}

	return &Console{
		in:          bufio.NewReader(cfg.In),
		out:         cfg.Out,
		clearScreen: cfg.ClearScreen,
		borderChar:  borderChar,
	}, nil
}

var _ Terminal = (*Console)(nil)

// Println writes a line
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted output
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Prompt shows message and returns the next line without its line ending.
// A closed input with nothing left to read is reported as Canceled.
func (c *Console) Prompt(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WrapWithCode(err, errors.CodeCanceled, "prompt canceled")
	}

	fmt.Fprint(c.out, message)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			return "", errors.Canceled("input closed")
		}
		return "", errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read input")
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// PromptChoice re-prompts until the player enters a number in
// [minChoice, maxChoice].
func (c *Console) PromptChoice(ctx context.Context, message string, minChoice, maxChoice int) (int, error) {
	if minChoice > maxChoice {
		return 0, errors.InvalidArgumentf("empty choice range %d-%d", minChoice, maxChoice)
	}

	for {
		line, err := c.Prompt(ctx, message)
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.Println(notANumber)
			continue
		}
		if choice < minChoice || choice > maxChoice {
			c.Println(invalidChoice)
			continue
		}
		return choice, nil
	}
}

// PressEnter waits for the player. Closed input does not block the game.
func (c *Console) PressEnter(ctx context.Context) error {
	_, err := c.Prompt(ctx, pressEnterText)
	if errors.IsCanceled(err) && ctx.Err() == nil {
		c.Println()
		return nil
	}
	return err
}

// Clear wipes the screen when clearing is enabled
func (c *Console) Clear() {
	if !c.clearScreen {
		return
	}
	if _, err := fmt.Fprint(c.out, clearSequence); err != nil {
		slog.Debug("Failed to clear screen", "error", err)
	}
}

// Border prints message framed by the border character
func (c *Console) Border(message string) {
	c.Printf("\n%s\n", BorderText(message, c.borderChar))
}
