// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// maxSampleAttempts bounds the rejection sampling loop.  A draw is rejected
// with probability below 2^-127, so reaching the bound means the random
// source is broken.
const maxSampleAttempts = 64

// PrivateKey provides facilities for working with secp256k1 private keys
// within this package and includes functionality such as serializing and
// parsing them as well as computing their associated public key.
//
// A PrivateKey always carries the public key k*G of its scalar; the two can
// not get out of sync.
type PrivateKey struct {
	key    *big.Int
	pubKey PublicKey
}

// IsValidScalar returns whether k lies in [1, N-1] and can therefore be used as
// a private key or nonce.
func IsValidScalar(k *big.Int) bool {
	return k != nil && k.Sign() > 0 && k.Cmp(N) < 0
}

// NewPrivateKey instantiates a new private key from a scalar and derives its
// public key.  Scalars outside [1, N-1] are rejected, never reduced.
func NewPrivateKey(k *big.Int) (*PrivateKey, error) {
	if !IsValidScalar(k) {
		str := "private key is not in the range [1, N-1]"
		return nil, makeError(ErrInvalidScalarRange, str)
	}
	pub, err := ScalarBaseMult(k)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{key: new(big.Int).Set(k), pubKey: PublicKey{Point: pub}}, nil
}

// PrivKeyFromBytes returns a private key for the big-endian scalar in
// privKeyBytes, which must be at most 32 bytes.
func PrivKeyFromBytes(privKeyBytes []byte) (*PrivateKey, error) {
	if len(privKeyBytes) > PrivKeyBytesLen {
		str := fmt.Sprintf("private key is %d bytes (max %d)",
			len(privKeyBytes), PrivKeyBytesLen)
		return nil, makeError(ErrInvalidScalarRange, str)
	}
	return NewPrivateKey(new(big.Int).SetBytes(privKeyBytes))
}

// PrivKeyWithPubKey builds a private key from a scalar and a public key that
// were stored separately.  The public key must equal k*G.
func PrivKeyWithPubKey(k *big.Int, pub *PublicKey) (*PrivateKey, error) {
	priv, err := NewPrivateKey(k)
	if err != nil {
		return nil, err
	}
	if !priv.pubKey.IsEqual(pub) {
		str := "public key does not belong to the private key"
		return nil, makeError(ErrKeyPairMismatch, str)
	}
	return priv, nil
}

// GeneratePrivateKey generates and returns a new cryptographically secure
// private key using crypto/rand.
func GeneratePrivateKey() (*PrivateKey, error) {
	return GeneratePrivateKeyFromRand(rand.Reader)
}

// GeneratePrivateKeyFromRand generates a private key from the random bytes
// provided by rand, which should be a cryptographically secure source.
func GeneratePrivateKeyFromRand(rand io.Reader) (*PrivateKey, error) {
	k, err := randScalar(rand)
	if err != nil {
		return nil, err
	}
	return NewPrivateKey(k)
}

// GeneratePublicKey returns k*G for a valid private scalar k.
func GeneratePublicKey(k *big.Int) (*PublicKey, error) {
	if !IsValidScalar(k) {
		str := "private key is not in the range [1, N-1]"
		return nil, makeError(ErrInvalidScalarRange, str)
	}
	p, err := ScalarBaseMult(k)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Point: p}, nil
}

// randScalar draws 32-byte values from rand until one is a valid scalar.
// Reducing an out of range draw modulo N would bias the result, so such draws
// are discarded instead.
func randScalar(rand io.Reader) (*big.Int, error) {
	var b [PrivKeyBytesLen]byte
	for i := 0; i < maxSampleAttempts; i++ {
		if _, err := io.ReadFull(rand, b[:]); err != nil {
			return nil, fmt.Errorf("reading random scalar: %w", err)
		}
		k := new(big.Int).SetBytes(b[:])
		if IsValidScalar(k) {
			return k, nil
		}
	}
	str := fmt.Sprintf("no valid scalar after %d draws", maxSampleAttempts)
	return nil, makeError(ErrRandomSourceExhausted, str)
}

// PubKey computes and returns the public key corresponding to this private key.
func (p *PrivateKey) PubKey() *PublicKey {
	pub := p.pubKey
	return &pub
}

// Key returns a copy of the private scalar.
func (p *PrivateKey) Key() *big.Int {
	return new(big.Int).Set(p.key)
}

// Serialize returns the private key as a 256-bit big-endian binary-encoded
// number, padded to a length of 32 bytes.
func (p *PrivateKey) Serialize() []byte {
	b := make([]byte, PrivKeyBytesLen)
	return p.key.FillBytes(b)
}
