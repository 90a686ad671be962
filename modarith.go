// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"
)

// Mod returns the representative of a modulo m in [0, m).  Negative values of
// a are mapped into the range as well, so Mod(-1, m) is m-1.  A modulus that
// is not positive has no such range and yields zero.
func Mod(a, m *big.Int) *big.Int {
	if m.Sign() <= 0 {
		return new(big.Int)
	}
	// big.Int.Mod is Euclidean, so the result is never negative for m > 0.
	return new(big.Int).Mod(a, m)
}

// ModInverse returns x such that a*x = 1 (mod m).  ErrNotInvertible is
// returned when a and m are not coprime, which includes a = 0 (mod m).
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		str := fmt.Sprintf("modulus %s is not positive", m)
		return nil, makeError(ErrNotInvertible, str)
	}
	r := Mod(a, m)
	if r.Sign() == 0 {
		str := fmt.Sprintf("%x is zero modulo %x", a, m)
		return nil, makeError(ErrNotInvertible, str)
	}
	inv := new(big.Int).ModInverse(r, m)
	if inv == nil {
		str := fmt.Sprintf("%x has no inverse modulo %x", a, m)
		return nil, makeError(ErrNotInvertible, str)
	}
	return inv, nil
}

// ModPow returns base^exp mod m.  The exponent must not be negative.  Like
// Mod, a modulus that is not positive yields zero.
func ModPow(base, exp, m *big.Int) *big.Int {
	if m.Sign() <= 0 {
		return new(big.Int)
	}
	return new(big.Int).Exp(Mod(base, m), exp, m)
}

// fieldInverse is ModInverse over the field prime.
func fieldInverse(a *big.Int) (*big.Int, error) {
	return ModInverse(a, P)
}
