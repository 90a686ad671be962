// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// The curve parameters are shared read-only by every caller and must never be
// passed to a mutating big.Int method as the receiver.
var (
	// P is the prime of the underlying field,
	// 2^256 - 2^32 - 2^9 - 2^8 - 2^7 - 2^6 - 2^4 - 1.
	P = fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	// N is the order of the group generated by G.
	N = fromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	// B is the constant of the curve equation y^2 = x^3 + B.
	B = big.NewInt(7)

	// halfOrder is N/2 rounded down and is the upper bound of a canonical
	// (low) S value.
	halfOrder = new(big.Int).Rsh(N, 1)

	// sqrtExp is (P+1)/4.  Since P = 3 mod 4, x^sqrtExp is a square root of x
	// whenever x is a quadratic residue.
	sqrtExp = new(big.Int).Rsh(new(big.Int).Add(P, big.NewInt(1)), 2)

	// G is the base point of the group.
	G = Point{
		x: fromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		y: fromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
	}
)

// fromHex converts the passed hex string into a big integer pointer and will
// panic if there is an error.  This is only provided for the hard-coded
// constants so errors in the source code can be detected.
func fromHex(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

// HalfOrder returns a copy of N/2, the largest S value a canonical signature
// may carry.
func HalfOrder() *big.Int {
	return new(big.Int).Set(halfOrder)
}
