package speech

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// ConsoleRecognizer reads utterances from a text stream, one per line. It is
// the fallback when no microphone or speech credentials are available, and
// what the tests use.
type ConsoleRecognizer struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

// NewConsoleRecognizer reads from in and writes its prompt to out. Pass a nil
// out to suppress the prompt.
func NewConsoleRecognizer(in io.Reader, out io.Writer) *ConsoleRecognizer {
	return &ConsoleRecognizer{
		scanner: bufio.NewScanner(in),
		prompt:  out,
	}
}

// Listen returns the next non-empty line. Blank lines are treated as not
// understood so the caller reprompts, matching the microphone path.
func (c *ConsoleRecognizer) Listen(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if c.prompt != nil {
		fmt.Fprint(c.prompt, "> ")
	}

	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}

	line := strings.TrimSpace(c.scanner.Text())
	if line == "" {
		return "", ErrNotUnderstood
	}
	return line, nil
}
