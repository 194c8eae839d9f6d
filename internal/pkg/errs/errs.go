// Package errs wraps cockroachdb/errors so call sites get stack traces and
// marks without importing it directly.
package errs

import (
	"errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// New records a stack trace at the call site.
func New(msg string) error {
	return cr.New(msg)
}

// Wrap adds context and a stack frame. A nil err stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark tags err so Is(err, sentinel) holds while the original cause
// and its message are kept. A nil err yields the sentinel itself.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}

// Is matches target through wraps and marks.
func Is(err, target error) bool {
	return cr.Is(err, target) || errors.Is(err, target)
}

// ExtractStackLines renders err with its stack and keeps the first
// maxLines non-blank lines. maxLines <= 0 keeps everything.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	var out []string
	for _, line := range strings.Split(fmt.Sprintf("%+v", err), "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}
		out = append(out, line)
		if maxLines > 0 && len(out) == maxLines {
			break
		}
	}
	return out
}
