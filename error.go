// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

import (
	"errors"
	"fmt"
)

var (
	// ErrFailed is the failure signal shared by every combinator.
	// Control flow depends only on whether an error occurred, never on its identity.
	ErrFailed = errors.New("parsing: failed")

	// ErrNoProgress reports a repetition whose iteration consumed no input.
	// A zero-width element under Many needs a consuming separator.
	ErrNoProgress = errors.New("parsing: repetition made no progress")

	// ErrNotEnd reports unconsumed input after ParseAll.
	ErrNotEnd = errors.New("parsing: expected end of input")
)

// Error is a failure with diagnostics attached.
// Remaining is the number of unconsumed elements at the failure point,
// or -1 when the input length cannot be measured.
type Error struct {
	Msg       string
	Remaining int
	Err       error
}

func (e *Error) Error() string {
	if e.Remaining < 0 {
		return "parsing: " + e.Msg
	}
	return fmt.Sprintf("parsing: %s (%d remaining)", e.Msg, e.Remaining)
}

// Unwrap returns the sentinel the error is classified as.
// A nil Err classifies as ErrFailed.
func (e *Error) Unwrap() error {
	if e.Err == nil {
		return ErrFailed
	}
	return e.Err
}

// Is lets errors.Is(err, ErrFailed) hold for every *Error, including
// ErrNoProgress and ErrNotEnd failures.
func (e *Error) Is(target error) bool {
	return target == ErrFailed
}

// failf builds a failure at the current position of in.
func failf(in any, format string, args ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...), Remaining: remainingOrUnknown(in)}
}

func remainingOrUnknown(in any) int {
	if n, ok := Remaining(in); ok {
		return n
	}
	return -1
}
