// Copyright 2026 The Ammswap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ammerr defines the tagged error type shared by every entry point
// in this SDK. Every fallible function returns either a success value or an
// *Error carrying one of the fixed Kind values below; callers branch on kind
// with Is, never on message text.
package ammerr

import "fmt"

// Kind identifies the category of failure. The set is closed: no entry
// point in this module returns an error outside this list.
type Kind int

const (
	// InsufficientData means a binary blob was shorter than the documented
	// minimum prefix for the account or instruction kind being parsed.
	InsufficientData Kind = iota
	// InvalidFormat means a blob passed discriminator validation but was
	// shorter than the kind's full declared size.
	InvalidFormat
	// InvalidDiscriminator means the leading bytes of a blob did not match
	// the expected discriminator for the requested kind.
	InvalidDiscriminator
	// InvalidLength means a byte slice was the wrong length for the
	// fixed-size value it was meant to represent (e.g. a 32-byte key).
	InvalidLength
	// ZeroInput means a swap or liquidity operation was given a zero
	// balance or zero amount where a positive value is required.
	ZeroInput
	// ZeroAmp means the amplification coefficient resolved to zero.
	ZeroAmp
	// ZeroDenom means an iterative solver produced a zero denominator.
	ZeroDenom
	// ZeroInvariant means a deposit computation read D0 = 0 from a pool
	// that should already hold liquidity.
	ZeroInvariant
	// ZeroSupply means an LP-proportional computation was attempted
	// against zero outstanding LP supply.
	ZeroSupply
	// FailedToConverge means a Newton iteration exhausted its bound
	// without satisfying the convergence test.
	FailedToConverge
	// NoValidBump means every candidate bump seed from 255 down to 0
	// produced an on-curve digest.
	NoValidBump
	// OnCurve means a caller-supplied bump produced a digest that lies on
	// the Ed25519 curve and is therefore not a valid PDA.
	OnCurve
)

var kindText = map[Kind]string{
	InsufficientData:     "insufficient data",
	InvalidFormat:        "invalid format",
	InvalidDiscriminator: "invalid discriminator",
	InvalidLength:        "invalid length",
	ZeroInput:            "zero input",
	ZeroAmp:              "zero amp",
	ZeroDenom:            "zero denominator",
	ZeroInvariant:        "zero invariant",
	ZeroSupply:           "zero supply",
	FailedToConverge:     "failed to converge",
	NoValidBump:          "no valid bump",
	OnCurve:              "on curve",
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return "unknown error kind"
}

// Error is the concrete error type returned by every fallible entry point
// in this module.
type Error struct {
	Kind Kind
	msg  string
}

// Error implements the standard error interface.
func (e *Error) Error() string {
	if e.msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Is reports whether target is an *Error with the same Kind, so callers can
// use errors.Is(err, ammerr.New(ammerr.ZeroAmp, "")) or the package-level
// helper Is below.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New constructs an *Error of the given kind with an optional formatted
// context message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == kind
}
