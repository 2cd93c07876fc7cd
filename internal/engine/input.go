package engine

import (
	"fmt"
	"io"
	"strings"
)

// readLine reads one line from the INPUT stream, trimming the trailing
// newline (and a preceding carriage return, for CRLF input).
func (e *Engine) readLine() (string, error) {
	line, err := e.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if err == io.EOF && line == "" {
		return "", fmt.Errorf("unexpected end of input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
