// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"
)

// All arithmetic in this file is plain affine math/big arithmetic.  It is
// variable time and must not be fed secret scalars in a setting where timing
// can be observed.

var three = big.NewInt(3)

// Double returns 2*p.
//
// The tangent slope is λ = 3x^2 / 2y, then x' = λ^2 - 2x and
// y' = λ(x - x') - y.  A point with y = 0 has a vertical tangent and doubles to
// the point at infinity, which is reported as ErrPointAtInfinity.
func Double(p Point) (Point, error) {
	if p.isZero() {
		return Point{}, makeError(ErrPointNotOnCurve, "doubling the zero value")
	}
	if p.y.Sign() == 0 {
		str := fmt.Sprintf("doubling %s: vertical tangent", p)
		return Point{}, makeError(ErrPointAtInfinity, str)
	}

	inv, err := fieldInverse(new(big.Int).Lsh(p.y, 1))
	if err != nil {
		return Point{}, err
	}
	lambda := new(big.Int).Mul(p.x, p.x)
	lambda.Mul(lambda, three)
	lambda.Mul(lambda, inv)
	lambda.Mod(lambda, P)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, new(big.Int).Lsh(p.x, 1))
	x3.Mod(x3, P)

	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.y)
	y3.Mod(y3, P)

	return Point{x: x3, y: y3}, nil
}

// Add returns p1 + p2.
//
// Equal points are doubled.  Points sharing an x coordinate but not a y
// coordinate are inverses of each other and their sum is the point at
// infinity, reported as ErrPointAtInfinity.
func Add(p1, p2 Point) (Point, error) {
	if p1.isZero() || p2.isZero() {
		return Point{}, makeError(ErrPointNotOnCurve, "adding the zero value")
	}
	if p1.Equal(p2) {
		return Double(p1)
	}
	if p1.x.Cmp(p2.x) == 0 {
		str := fmt.Sprintf("adding %s to its inverse", p1)
		return Point{}, makeError(ErrPointAtInfinity, str)
	}

	inv, err := fieldInverse(new(big.Int).Sub(p1.x, p2.x))
	if err != nil {
		return Point{}, err
	}
	lambda := new(big.Int).Sub(p1.y, p2.y)
	lambda.Mul(lambda, inv)
	lambda.Mod(lambda, P)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p1.x)
	x3.Sub(x3, p2.x)
	x3.Mod(x3, P)

	y3 := new(big.Int).Sub(p1.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p1.y)
	y3.Mod(y3, P)

	return Point{x: x3, y: y3}, nil
}

// ScalarMult returns k*p using left-to-right double-and-add.
//
// The accumulator starts at p, which accounts for the most significant bit of
// k, and every following bit doubles it and adds p when the bit is set.  A
// multiplier of zero or less is rejected with ErrInvalidScalarRange.  The
// multiplier is not otherwise range checked; a multiple of the group order
// ends at the point at infinity and fails with ErrPointAtInfinity.
func ScalarMult(p Point, k *big.Int) (Point, error) {
	if k.Sign() <= 0 {
		str := fmt.Sprintf("multiplier %s is not positive", k)
		return Point{}, makeError(ErrInvalidScalarRange, str)
	}

	acc := p
	var err error
	for i := k.BitLen() - 2; i >= 0; i-- {
		acc, err = Double(acc)
		if err != nil {
			return Point{}, err
		}
		if k.Bit(i) == 1 {
			acc, err = Add(acc, p)
			if err != nil {
				return Point{}, err
			}
		}
	}
	return acc, nil
}

// ScalarBaseMult returns k*G.
func ScalarBaseMult(k *big.Int) (Point, error) {
	return ScalarMult(G, k)
}
