package errs

import (
	"errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark keeps err's message while making errors.Is(result, markErr) true,
// both for the standard library and for cockroachdb/errors.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &markedError{cause: err, mark: markErr}
}

type markedError struct {
	cause error
	mark  error
}

func (e *markedError) Error() string { return e.cause.Error() }

func (e *markedError) Unwrap() error { return e.cause }

func (e *markedError) Is(target error) bool {
	return target == e.mark
}

func (e *markedError) Format(s fmt.State, verb rune) {
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprint(s, e.cause.Error())
}

func Is(err, target error) bool {
	return errors.Is(err, target) || cr.Is(err, target)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
