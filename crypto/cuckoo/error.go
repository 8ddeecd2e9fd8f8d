// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cuckoo

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific RuleError.
const (
	// ErrInvalidInput indicates a malformed input seed, an out of range
	// parameter or an invalid argument to a library call.
	ErrInvalidInput ErrorCode = iota

	// ErrMalformedSolution indicates a solution whose edge count differs
	// from the puzzle, or a solver result outside the requested nonces.
	ErrMalformedSolution

	// ErrUnsupportedHashVariant indicates an unknown siphash or cycle
	// variant.
	ErrUnsupportedHashVariant

	// ErrUnknownEngine indicates that no solver engine is registered
	// under the requested name.
	ErrUnknownEngine

	// ErrInvalidLinkCount indicates a chained solve asked for fewer than
	// one link.
	ErrInvalidLinkCount

	// ErrChainLengthOutOfRange indicates a chained solution whose length
	// is outside the accepted bounds.
	ErrChainLengthOutOfRange

	// ErrEdgeTooLarge indicates an edge index above the edge mask.
	ErrEdgeTooLarge

	// ErrEdgesNotAscending indicates edge indices that are not strictly
	// increasing.
	ErrEdgesNotAscending

	// ErrUnbalancedNodes indicates the endpoints of one side do not xor
	// to the expected value, so they can not all be paired.
	ErrUnbalancedNodes

	// ErrNoMatchingEdge indicates a dead end while following the cycle.
	ErrNoMatchingEdge

	// ErrBranchInCycle indicates more than one edge continues the cycle
	// from the same endpoint.
	ErrBranchInCycle

	// ErrCycleTooShort indicates the cycle closed before visiting every
	// edge.
	ErrCycleTooShort

	// ErrBelowDifficulty indicates the hash of the edges does not meet the
	// difficulty threshold.
	ErrBelowDifficulty

	// ErrChainedSolutionNotFound indicates a link of a chained solve found
	// no solution within its nonce budget.
	ErrChainedSolutionNotFound

	// ErrChainVerificationFailed indicates a link of a chained solution
	// failed verification.
	ErrChainVerificationFailed

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidInput:            "ErrInvalidInput",
	ErrMalformedSolution:       "ErrMalformedSolution",
	ErrUnsupportedHashVariant:  "ErrUnsupportedHashVariant",
	ErrUnknownEngine:           "ErrUnknownEngine",
	ErrInvalidLinkCount:        "ErrInvalidLinkCount",
	ErrChainLengthOutOfRange:   "ErrChainLengthOutOfRange",
	ErrEdgeTooLarge:            "ErrEdgeTooLarge",
	ErrEdgesNotAscending:       "ErrEdgesNotAscending",
	ErrUnbalancedNodes:         "ErrUnbalancedNodes",
	ErrNoMatchingEdge:          "ErrNoMatchingEdge",
	ErrBranchInCycle:           "ErrBranchInCycle",
	ErrCycleTooShort:           "ErrCycleTooShort",
	ErrBelowDifficulty:         "ErrBelowDifficulty",
	ErrChainedSolutionNotFound: "ErrChainedSolutionNotFound",
	ErrChainVerificationFailed: "ErrChainVerificationFailed",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a puzzle rule violation.  The caller can use
// IsErrorCode or Code to ascertain the specific reason for the failure.
type RuleError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates an RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}

// NewRuleError creates a RuleError with a formatted description.
func NewRuleError(c ErrorCode, format string, args ...interface{}) RuleError {
	return ruleError(c, fmt.Sprintf(format, args...))
}

// ChainError reports the link of a chained solution that failed and the
// error the link failed with.
type ChainError struct {
	Link int
	Err  error
}

func (e ChainError) Error() string {
	return fmt.Sprintf("chain link %d: %v", e.Link, e.Err)
}

// Code always returns ErrChainVerificationFailed, the link's own code is
// reachable through Unwrap.
func (e ChainError) Code() ErrorCode {
	return ErrChainVerificationFailed
}

func (e ChainError) Unwrap() error { return e.Err }

func (e ChainError) Cause() error { return e.Err }

// Code returns the code of the outermost RuleError or ChainError in err's
// chain.
func Code(err error) (ErrorCode, bool) {
	for err != nil {
		switch e := err.(type) {
		case RuleError:
			return e.ErrorCode, true
		case *RuleError:
			return e.ErrorCode, true
		case ChainError:
			return e.Code(), true
		case *ChainError:
			return e.Code(), true
		}
		err = errors.Unwrap(err)
	}
	return 0, false
}

// IsErrorCode reports whether any RuleError or ChainError in err's chain
// carries code c.  A ChainError matches both ErrChainVerificationFailed and
// the code of the link error it wraps.
func IsErrorCode(err error, c ErrorCode) bool {
	var re RuleError
	if errors.As(err, &re) && re.ErrorCode == c {
		return true
	}
	var ce ChainError
	if errors.As(err, &ce) {
		return c == ErrChainVerificationFailed || IsErrorCode(ce.Err, c)
	}
	return false
}
