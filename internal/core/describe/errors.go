package describe

import (
	"errors"
	"fmt"
)

// MalformedError reports an event whose shape does not fit its type
type MalformedError struct {
	Index  int // position in the feed, -1 when unknown
	Type   string
	Field  string
	Reason string
	Err    error
}

// Error interface
func (e *MalformedError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Field, e.Reason)
	if e.Type != "" {
		msg = e.Type + ": " + msg
	}
	if e.Index >= 0 {
		msg = fmt.Sprintf("event %d: %s", e.Index, msg)
	}
	return msg
}

func malformed(field, reason string, err error) *MalformedError {
	return &MalformedError{Index: -1, Field: field, Reason: reason, Err: err}
}

// Unwrap interface
func (e *MalformedError) Unwrap() error { return e.Err }

// IsMalformed reports whether err is a MalformedError
func IsMalformed(err error) bool {
	var me *MalformedError
	return errors.As(err, &me)
}

// PanicError carries a recovered panic from the mapping step
type PanicError struct {
	Index int
	Value any
}

// Error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("event %d: %v", e.Index, e.Value)
}

func withType(err error, typ string) error {
	var me *MalformedError
	if errors.As(err, &me) {
		c := *me
		c.Type = typ
		return &c
	}
	return err
}

func withIndex(err error, i int) error {
	var me *MalformedError
	if errors.As(err, &me) {
		c := *me
		c.Index = i
		return &c
	}
	return err
}
