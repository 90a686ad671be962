// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidScalarRange is returned when a private key, nonce or
	// multiplier is zero, negative, or not less than the group order.
	ErrInvalidScalarRange = ErrorKind("ErrInvalidScalarRange")

	// ErrInvalidPointEncoding is returned when a serialized point has an
	// unknown format prefix, a length that does not match its prefix, or a
	// coordinate that is not a field element.
	ErrInvalidPointEncoding = ErrorKind("ErrInvalidPointEncoding")

	// ErrPointNotOnCurve is returned when a point does not satisfy the curve
	// equation y^2 = x^3 + 7.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrPointAtInfinity is returned when a doubling, addition or scalar
	// multiplication would produce the point at infinity.  Callers deriving
	// keys treat it as a failed index and move on to the next one.
	ErrPointAtInfinity = ErrorKind("ErrPointAtInfinity")

	// ErrNotInvertible is returned when a modular inverse is requested for a
	// value that shares a factor with the modulus.
	ErrNotInvertible = ErrorKind("ErrNotInvertible")

	// ErrInvalidSignature is returned when a signature fails verification.
	ErrInvalidSignature = ErrorKind("ErrInvalidSignature")

	// ErrKeyPairMismatch is returned when a stored public key is not the
	// public key of the private scalar it is paired with.
	ErrKeyPairMismatch = ErrorKind("ErrKeyPairMismatch")

	// ErrRandomSourceExhausted is returned when rejection sampling did not
	// produce a usable scalar within the retry budget.  This only happens
	// with a broken random source.
	ErrRandomSourceExhausted = ErrorKind("ErrRandomSourceExhausted")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 arithmetic, keys or
// signatures.  It has full support for errors.Is and errors.As, so the caller
// can ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
