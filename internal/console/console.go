// Package console is the operator-facing terminal surface: line prompts for
// the update session and pterm rendering for tables and summaries.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputExhausted is returned by Prompt when the input stream has ended
var ErrInputExhausted = errors.New("input stream exhausted")

type line struct {
	text string
	err  error
}

// Console reads answers line by line and writes prompts and messages
type Console struct {
	reader *bufio.Reader
	out    io.Writer
	lines  chan line
}

// New creates a console over in and out
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Prompt writes question without a newline and blocks for one line of input
// or until ctx is done. The line terminator is stripped; nothing else is
// trimmed. Lines have no length limit.
func (c *Console) Prompt(ctx context.Context, question string) (string, error) {
	if _, err := io.WriteString(c.out, question); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	if c.lines == nil {
		c.lines = make(chan line)
		go c.readLines()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", ErrInputExhausted
		}
		if l.err != nil {
			return "", fmt.Errorf("read input: %w", l.err)
		}
		return l.text, nil
	}
}

// readLines feeds c.lines until the reader fails. A line is read only once
// the previous one has been taken, so at most one line is buffered ahead.
func (c *Console) readLines() {
	defer close(c.lines)
	for {
		text, err := c.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				if text != "" {
					c.lines <- line{text: strings.TrimSuffix(text, "\r")}
				}
				return
			}
			c.lines <- line{err: err}
			return
		}
		text = strings.TrimSuffix(text, "\n")
		c.lines <- line{text: strings.TrimSuffix(text, "\r")}
	}
}

// Say writes msg followed by a newline
func (c *Console) Say(msg string) {
	fmt.Fprintln(c.out, msg)
}
