// Package serr defines the error kinds returned by the queue manager
// and its collaborators.
package serr

import (
	"errors"
	"fmt"
)

type Terror uint32

const (
	TErrNoError Terror = iota
	TErrBadLevel
	TErrFull
	TErrEmpty
	TErrExists
	TErrNotfound
	TErrInval
)

func (err Terror) String() string {
	switch err {
	case TErrNoError:
		return "no error"
	case TErrBadLevel:
		return "out of bounds queue position"
	case TErrFull:
		return "out of static process info memory"
	case TErrEmpty:
		return "pop from empty queue"
	case TErrExists:
		return "already queued"
	case TErrNotfound:
		return "not found"
	case TErrInval:
		return "invalid argument"
	default:
		return fmt.Sprintf("unknown error %d", uint32(err))
	}
}

type Err struct {
	ErrCode Terror
	Obj     string
}

func NewErr(code Terror, obj interface{}) *Err {
	return &Err{ErrCode: code, Obj: fmt.Sprintf("%v", obj)}
}

func (err *Err) Code() Terror {
	return err.ErrCode
}

func (err *Err) Error() string {
	return fmt.Sprintf("{Err: %q Obj: %q}", err.ErrCode, err.Obj)
}

func (err *Err) String() string {
	return err.Error()
}

// IsInvariant reports whether err is a caller programming error that
// must escalate to a fatal abort rather than be handled locally.
func (err *Err) IsInvariant() bool {
	switch err.ErrCode {
	case TErrBadLevel, TErrFull, TErrEmpty, TErrExists:
		return true
	}
	return false
}

func IsErrCode(e error, code Terror) bool {
	if err, ok := e.(*Err); ok {
		return err != nil && err.ErrCode == code
	}
	var err *Err
	if errors.As(e, &err) && err != nil {
		return err.ErrCode == code
	}
	return false
}
