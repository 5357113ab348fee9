package domain

import (
	"errors"
	"fmt"
)

// ReasonNotFound is used when the remote side gives no reason for a failure.
const ReasonNotFound = "Reason Not Found"

var (
	ErrCallFailed      = errors.New("frankfurter call failed")
	ErrUnknownCurrency = errors.New("unknown currency")
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindBadInput
	KindServiceFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadInput:
		return "bad_input"
	case KindServiceFailure:
		return "service_failure"
	default:
		return "unknown"
	}
}

// Error is implemented by every error the client raises on purpose.
type Error interface {
	error
	Kind() ErrorKind
}

// KindOf returns the kind of the first Error in err's chain.
func KindOf(err error) ErrorKind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindUnknown
}

// CallFailedError reports a remote call that did not succeed. StatusCode is 0
// when there is no failing HTTP status to report: the transport failed, or the
// response lacked the requested rate.
type CallFailedError struct {
	StatusCode int
	Reason     string
	Err        error
}

func NewCallFailed(status int, reason string, cause error) *CallFailedError {
	if reason == "" {
		reason = ReasonNotFound
	}
	return &CallFailedError{StatusCode: status, Reason: reason, Err: cause}
}

func (e *CallFailedError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("frankfurter call failed: %s", e.Reason)
	}
	return fmt.Sprintf("frankfurter call failed: status %d: %s", e.StatusCode, e.Reason)
}

func (e *CallFailedError) Unwrap() error        { return e.Err }
func (e *CallFailedError) Is(target error) bool { return target == ErrCallFailed }
func (e *CallFailedError) Kind() ErrorKind      { return KindServiceFailure }

// BadInputError rejects arguments before any request is made. Declare
// sentinels with NewBadInput and match them with errors.Is.
type BadInputError struct {
	Msg string
}

func NewBadInput(msg string) *BadInputError { return &BadInputError{Msg: msg} }

func (e *BadInputError) Error() string   { return e.Msg }
func (e *BadInputError) Kind() ErrorKind { return KindBadInput }

type UnknownCurrencyError struct {
	Code string
}

func (e *UnknownCurrencyError) Error() string        { return "unknown currency: " + e.Code }
func (e *UnknownCurrencyError) Is(target error) bool { return target == ErrUnknownCurrency }
func (e *UnknownCurrencyError) Kind() ErrorKind      { return KindBadInput }
