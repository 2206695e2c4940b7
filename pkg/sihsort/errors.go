package sihsort

import "errors"

// ErrEmptyLocalArray is returned when a rank calls Sort with zero local
// elements. This is a precondition: the caller must ensure every rank
// satisfies it before the collective call is entered, because other ranks
// may already be blocked in a collective by the time one rank discovers
// the violation.
var ErrEmptyLocalArray = errors.New("sihsort: local array must hold at least one element")

// ErrNoCommunicator is returned when Config.Comm is nil.
var ErrNoCommunicator = errors.New("sihsort: config.Comm is required")

// TransportError wraps any error returned by the collective transport: the
// sort call is considered aborted and the local array's contents are
// unspecified. It records which collective failed so a caller can tell
// which of the blocking points was in flight.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return "sihsort: " + e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func wrapTransportErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &TransportError{Op: op, Err: err}
}
