// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"
)

// These constants define the lengths of serialized public keys.
const (
	// PubKeyBytesLenCompressed is the number of bytes of a serialized
	// compressed public key.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the number of bytes of a serialized
	// uncompressed public key.
	PubKeyBytesLenUncompressed = 65

	// coordinateLen is the fixed width of a serialized coordinate.
	coordinateLen = 32
)

const (
	// PubKeyFormatCompressedEven is the identifier prefix byte for a public key
	// whose Y coordinate is even when serialized in the compressed format per
	// section 2.3.4 of [SEC1](https://secg.org/sec1-v2.pdf#subsubsection.2.3.4).
	PubKeyFormatCompressedEven byte = 0x02

	// PubKeyFormatCompressedOdd is the identifier prefix byte for a public key
	// whose Y coordinate is odd when serialized in the compressed format per
	// section 2.3.4 of [SEC1](https://secg.org/sec1-v2.pdf#subsubsection.2.3.4).
	PubKeyFormatCompressedOdd byte = 0x03

	// PubKeyFormatUncompressed is the identifier prefix byte for a public key
	// when serialized according in the uncompressed format per section 2.3.3
	// of [SEC1](https://secg.org/sec1-v2.pdf#subsubsection.2.3.3).
	PubKeyFormatUncompressed byte = 0x04
)

// Point is an affine point on the secp256k1 curve.  The point at infinity has
// no representation; operations that would produce it fail with
// ErrPointAtInfinity instead.
//
// Points are immutable.  The zero value is not a valid point, use NewPoint or
// ParsePoint to obtain one.  It equals no point, and Add and Double reject it
// with ErrPointNotOnCurve.
type Point struct {
	x, y *big.Int
}

// NewPoint returns the point with the given affine coordinates.  Both
// coordinates must be field elements and satisfy the curve equation.
func NewPoint(x, y *big.Int) (Point, error) {
	if x.Sign() < 0 || x.Cmp(P) >= 0 || y.Sign() < 0 || y.Cmp(P) >= 0 {
		str := "point coordinates are not field elements"
		return Point{}, makeError(ErrInvalidPointEncoding, str)
	}
	p := Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
	if !p.IsOnCurve() {
		str := fmt.Sprintf("point (%x, %x) is not on the secp256k1 curve", x, y)
		return Point{}, makeError(ErrPointNotOnCurve, str)
	}
	return p, nil
}

// X returns a copy of the x coordinate.
func (p Point) X() *big.Int {
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate.
func (p Point) Y() *big.Int {
	return new(big.Int).Set(p.y)
}

// IsOnCurve returns whether or not the point satisfies y^2 = x^3 + 7 (mod p).
func (p Point) IsOnCurve() bool {
	if p.x == nil || p.y == nil {
		return false
	}
	lhs := new(big.Int).Mul(p.y, p.y)
	lhs.Mod(lhs, P)
	return lhs.Cmp(curveRHS(p.x)) == 0
}

// Equal returns whether or not the two points have the same coordinates.
func (p Point) Equal(q Point) bool {
	if p.isZero() || q.isZero() {
		return false
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// isZero reports whether p is the zero value, which is not a point.
func (p Point) isZero() bool {
	return p.x == nil || p.y == nil
}

// Serialize encodes the point in the compressed format when compressed is set
// and in the uncompressed format otherwise.
func (p Point) Serialize(compressed bool) []byte {
	if compressed {
		return p.SerializeCompressed()
	}
	return p.SerializeUncompressed()
}

// SerializeCompressed serializes a point in the 33-byte compressed format:
// the format byte 0x02 or 0x03 depending on the parity of y followed by the
// 32-byte big-endian x coordinate.
func (p Point) SerializeCompressed() []byte {
	b := make([]byte, PubKeyBytesLenCompressed)
	b[0] = PubKeyFormatCompressedEven
	if p.y.Bit(0) == 1 {
		b[0] = PubKeyFormatCompressedOdd
	}
	p.x.FillBytes(b[1:])
	return b
}

// SerializeUncompressed serializes a point in the 65-byte uncompressed format:
// 0x04 followed by the 32-byte big-endian x and y coordinates.
func (p Point) SerializeUncompressed() []byte {
	b := make([]byte, PubKeyBytesLenUncompressed)
	b[0] = PubKeyFormatUncompressed
	p.x.FillBytes(b[1 : 1+coordinateLen])
	p.y.FillBytes(b[1+coordinateLen:])
	return b
}

// String returns the compressed serialization in hex.
func (p Point) String() string {
	if p.x == nil {
		return "<invalid point>"
	}
	return fmt.Sprintf("%x", p.SerializeCompressed())
}

// ParsePoint parses a point encoded in the compressed or uncompressed format.
// The prefix byte selects the format and the length must match it exactly.
func ParsePoint(b []byte) (Point, error) {
	if len(b) == 0 {
		return Point{}, makeError(ErrInvalidPointEncoding, "empty point encoding")
	}

	switch b[0] {
	case PubKeyFormatUncompressed:
		if len(b) != PubKeyBytesLenUncompressed {
			str := fmt.Sprintf("malformed uncompressed point: invalid "+
				"length %d (want %d)", len(b), PubKeyBytesLenUncompressed)
			return Point{}, makeError(ErrInvalidPointEncoding, str)
		}
		x := new(big.Int).SetBytes(b[1 : 1+coordinateLen])
		y := new(big.Int).SetBytes(b[1+coordinateLen:])
		return NewPoint(x, y)

	case PubKeyFormatCompressedEven, PubKeyFormatCompressedOdd:
		if len(b) != PubKeyBytesLenCompressed {
			str := fmt.Sprintf("malformed compressed point: invalid "+
				"length %d (want %d)", len(b), PubKeyBytesLenCompressed)
			return Point{}, makeError(ErrInvalidPointEncoding, str)
		}
		x := new(big.Int).SetBytes(b[1:])
		if x.Cmp(P) >= 0 {
			str := "malformed compressed point: x >= field prime"
			return Point{}, makeError(ErrInvalidPointEncoding, str)
		}
		y, err := DecompressY(x, b[0] == PubKeyFormatCompressedOdd)
		if err != nil {
			return Point{}, err
		}
		return Point{x: x, y: y}, nil
	}

	str := fmt.Sprintf("malformed point: unknown format prefix 0x%02x", b[0])
	return Point{}, makeError(ErrInvalidPointEncoding, str)
}

// DecompressY returns the y coordinate of the point with the given x
// coordinate and y parity.
//
// Since p = 3 (mod 4), the principal square root of y^2 = x^3 + 7 is
// (x^3 + 7)^((p+1)/4); the other root is p - y and has the opposite parity.
func DecompressY(x *big.Int, odd bool) (*big.Int, error) {
	ySquared := curveRHS(x)
	y := ModPow(ySquared, sqrtExp, P)

	// Not every x has a point: make sure the candidate really is a root.
	check := new(big.Int).Mul(y, y)
	if check.Mod(check, P).Cmp(ySquared) != 0 {
		str := fmt.Sprintf("x coordinate %x is not on the secp256k1 curve", x)
		return nil, makeError(ErrPointNotOnCurve, str)
	}
	if (y.Bit(0) == 1) != odd {
		y.Sub(P, y)
		y.Mod(y, P)
	}
	return y, nil
}

// curveRHS returns x^3 + 7 (mod p).
func curveRHS(x *big.Int) *big.Int {
	r := new(big.Int).Mul(x, x)
	r.Mul(r, x)
	r.Add(r, B)
	return r.Mod(r, P)
}
