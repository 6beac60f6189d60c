// Package console runs the numbered operator menu over a record store.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charityfund/charity/internal/store"
	"go.uber.org/zap"
)

type Console struct {
	store   *store.Store
	in      *bufio.Reader
	out     io.Writer
	logger  *zap.Logger
	entries []entry
}

func New(s *store.Store, in io.Reader, out io.Writer, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Console{
		store:  s,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger.Named("console"),
	}
	c.entries = c.menu()

	return c
}

// Run prints the menu and executes selections until the operator types
// "exit", the input ends, or ctx is cancelled. Failed operations are reported
// on out and never end the session.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printMenu()

		line, err := c.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if strings.EqualFold(line, "exit") {
			return nil
		}

		option, err := strconv.Atoi(line)
		if err != nil || option < 0 || option >= len(c.entries) {
			c.println("Invalid option.")
			c.println()
			continue
		}

		selected := c.entries[option]
		c.logger.Debug("menu selection", zap.Int("option", option), zap.String("label", selected.label))

		if err := selected.run(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			c.logger.Warn("operation failed", zap.String("label", selected.label), zap.Error(err))
			c.println(message(err))
		}

		c.println()
	}
}

func (c *Console) printMenu() {
	c.println("Select an option (enter 'exit' to close):")
	for i, e := range c.entries {
		c.printf("%d - %s\n", i, e.label)
	}
}

// readLine returns the next trimmed line. A final line without a newline is
// still returned; io.EOF comes on the following call.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}
