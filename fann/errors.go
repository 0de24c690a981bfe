// Copyright (c) 2026, The GoFANN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fann

import "fmt"

// Code classifies an Error into one of the five kinds spec.md 7
// enumerates: allocation failure, invalid configuration, dimension
// mismatch, I/O failure, and index out of range (I/O failure is raised
// only by the out-of-scope persistence collaborator, but the code is
// reserved here so that collaborator can report through the same
// object-local error slot).
type Code int

const (
	ErrNone Code = iota
	ErrCantAllocate
	ErrCantTrainActivation
	ErrCantUseTrainAlgForCascade
	ErrTrainDataMismatch
	ErrInputOutputSizeMismatch
	ErrIndexOutOfBound
	ErrSubsetOutOfRange
	ErrScalingNotSet
	ErrInvalidConfiguration
	ErrIO
)

var codeNames = map[Code]string{
	ErrNone:                      "no error",
	ErrCantAllocate:              "unable to allocate memory",
	ErrCantTrainActivation:       "activation function cannot be trained (no derivative)",
	ErrCantUseTrainAlgForCascade: "training algorithm cannot be used for cascade training",
	ErrTrainDataMismatch:         "training data dimensions do not match network",
	ErrInputOutputSizeMismatch:   "input or output count mismatch between network and data",
	ErrIndexOutOfBound:           "index out of bound",
	ErrSubsetOutOfRange:          "subset range exceeds dataset length",
	ErrScalingNotSet:             "scaling parameters have not been set on this network",
	ErrInvalidConfiguration:      "invalid configuration",
	ErrIO:                        "I/O failure",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return "unknown error"
}

// Error is the (code, message) pair spec.md 7 requires every operation to
// report. It implements the Go error interface directly, so callers that
// only want idiomatic error handling never need to look at ErrState; it
// is also stashed on the owning object for spec.md's "object-local error,
// no process-wide error state" contract.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(code Code, format string, args ...any) *Error {
	msg := code.String()
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Code: code, Message: msg}
}

// ErrState is embedded in Network and TrainData to give each its own
// error slot: the most recent error is retrievable and resettable
// without touching any other object's state.
type ErrState struct {
	last *Error
}

// setError records err as the most recent error on this object and
// returns it, so call sites can `return s.setError(...)` directly.
func (s *ErrState) setError(code Code, format string, args ...any) error {
	e := newError(code, format, args...)
	s.last = e
	return e
}

func (s *ErrState) clearError() { s.last = nil }

// LastError returns the most recently recorded error on this object, or
// nil if none (or if ResetError was called since).
func (s *ErrState) LastError() *Error { return s.last }

// ResetError clears this object's error slot.
func (s *ErrState) ResetError() { s.clearError() }
