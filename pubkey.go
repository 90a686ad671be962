// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// PublicKey is a secp256k1 public key.  It is a thin wrapper around the curve
// point so it can be handed to code expecting a crypto.PublicKey.
type PublicKey struct {
	Point
}

// NewPublicKey returns a public key for the given point.
func NewPublicKey(p Point) *PublicKey {
	return &PublicKey{Point: p}
}

// ParsePubKey parses a secp256k1 public key encoded in the compressed or
// uncompressed format into a PublicKey.
func ParsePubKey(serialized []byte) (*PublicKey, error) {
	p, err := ParsePoint(serialized)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Point: p}, nil
}

// IsEqual compares this public key instance to the one passed, returning true
// if both public keys are equivalent.
func (p *PublicKey) IsEqual(otherPubKey *PublicKey) bool {
	return p.Point.Equal(otherPubKey.Point)
}
