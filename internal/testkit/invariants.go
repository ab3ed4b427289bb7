// Package testkit holds checks shared by the formatter and driver tests.
package testkit

import (
	"bytes"
	"fmt"
)

// CheckOutputInvariants verifies the layout guarantees of formatted output:
// non-empty output ends with exactly one newline, no line carries trailing
// whitespace and every indentation is a multiple of indentWidth spaces.
func CheckOutputInvariants(out []byte, indentWidth int) error {
	if len(out) == 0 {
		return nil
	}
	if out[len(out)-1] != '\n' {
		return fmt.Errorf("output does not end with a newline")
	}
	if bytes.HasSuffix(out, []byte("\n\n")) {
		return fmt.Errorf("output ends with more than one newline")
	}
	if indentWidth <= 0 {
		indentWidth = 4
	}
	lines := bytes.Split(out[:len(out)-1], []byte("\n"))
	for i, line := range lines {
		if len(line) == 0 {
			continue
		}
		if last := line[len(line)-1]; last == ' ' || last == '\t' {
			return fmt.Errorf("line %d has trailing whitespace: %q", i+1, line)
		}
		indent := len(line) - len(bytes.TrimLeft(line, " "))
		if indent%indentWidth != 0 {
			return fmt.Errorf("line %d is indented by %d spaces, not a multiple of %d: %q", i+1, indent, indentWidth, line)
		}
	}
	return nil
}
