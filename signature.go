// Copyright (c) 2013-2017 The btcsuite developers
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

// SignatureLen is the length of a serialized signature: R and S as 32-byte
// big-endian values.
const SignatureLen = 64

// maxSignAttempts bounds the nonce retry loop in SignWithRand.
const maxSignAttempts = 64

// Signature is a type representing an ECDSA signature.  The zero value has
// neither R nor S and never verifies.
type Signature struct {
	r *big.Int
	s *big.Int
}

// NewSignature instantiates a new signature given some r and s values.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{r: new(big.Int).Set(r), s: new(big.Int).Set(s)}
}

// R returns a copy of the r value of the signature.
func (sig *Signature) R() *big.Int {
	return new(big.Int).Set(sig.r)
}

// S returns a copy of the s value of the signature.
func (sig *Signature) S() *big.Int {
	return new(big.Int).Set(sig.s)
}

// IsLowS returns whether S is at most N/2, the canonical form produced by
// Sign.
func (sig *Signature) IsLowS() bool {
	return sig.s.Cmp(halfOrder) <= 0
}

// Serialize returns the signature as R || S, each a 32-byte big-endian value.
func (sig *Signature) Serialize() []byte {
	b := make([]byte, SignatureLen)
	sig.r.FillBytes(b[:SignatureLen/2])
	sig.s.FillBytes(b[SignatureLen/2:])
	return b
}

// ParseSignature parses a 64-byte R || S signature.  Both values must be in
// [1, N-1].
func ParseSignature(sig []byte) (*Signature, error) {
	if len(sig) != SignatureLen {
		str := fmt.Sprintf("malformed signature: wrong size %d (want %d)",
			len(sig), SignatureLen)
		return nil, signatureError(ErrSigInvalidLen, str)
	}

	r := new(big.Int).SetBytes(sig[:SignatureLen/2])
	if r.Sign() == 0 {
		str := "invalid signature: R is 0"
		return nil, signatureError(ErrSigRIsZero, str)
	}
	if r.Cmp(N) >= 0 {
		str := "invalid signature: R >= group order"
		return nil, signatureError(ErrSigRTooBig, str)
	}

	s := new(big.Int).SetBytes(sig[SignatureLen/2:])
	if s.Sign() == 0 {
		str := "invalid signature: S is 0"
		return nil, signatureError(ErrSigSIsZero, str)
	}
	if s.Cmp(N) >= 0 {
		str := "invalid signature: S >= group order"
		return nil, signatureError(ErrSigSTooBig, str)
	}

	return &Signature{r: r, s: s}, nil
}

// hashToInt converts a hash value to an integer.  Hashes longer than the group
// order are truncated to their leftmost 32 bytes as in FIPS 186-3 section 4.6.
func hashToInt(hash []byte) *big.Int {
	if len(hash) > PrivKeyBytesLen {
		hash = hash[:PrivKeyBytesLen]
	}
	return new(big.Int).SetBytes(hash)
}

// Sign generates an ECDSA signature over the secp256k1 curve for the provided
// hash (which should be the result of hashing a larger message) using the
// given private key and a nonce drawn from crypto/rand.
func Sign(key *PrivateKey, hash []byte) (*Signature, error) {
	return SignWithRand(rand.Reader, key, hash)
}

// SignWithRand is Sign with an explicit nonce source.
//
// The nonce k is rejection sampled from [1, N-1].  A nonce giving r = 0 or
// s = 0 is discarded and a new one drawn.  The result always has S <= N/2.
func SignWithRand(rand io.Reader, key *PrivateKey, hash []byte) (*Signature, error) {
	z := hashToInt(hash)
	for i := 0; i < maxSignAttempts; i++ {
		k, err := randScalar(rand)
		if err != nil {
			return nil, err
		}

		// r = (k*G).x mod N
		R, err := ScalarBaseMult(k)
		if err != nil {
			return nil, err
		}
		r := Mod(R.x, N)
		if r.Sign() == 0 {
			continue
		}

		// s = k^-1 * (z + r*d) mod N
		kInv, err := ModInverse(k, N)
		if err != nil {
			return nil, err
		}
		s := new(big.Int).Mul(r, key.key)
		s.Add(s, z)
		s.Mul(s, kInv)
		s.Mod(s, N)
		if s.Sign() == 0 {
			continue
		}

		if s.Cmp(halfOrder) > 0 {
			s.Sub(N, s)
		}
		return &Signature{r: r, s: s}, nil
	}

	str := fmt.Sprintf("no usable nonce after %d attempts", maxSignAttempts)
	return nil, makeError(ErrRandomSourceExhausted, str)
}

// invalidSig wraps ErrInvalidSignature with a reason.
func invalidSig(reason string) error {
	return makeError(ErrInvalidSignature, "invalid signature: "+reason)
}

// VerifySignature checks sig against hash and pubKey and returns an error
// wrapping ErrInvalidSignature explaining why the signature was rejected.
// Any S in [1, N-1] is accepted.
func VerifySignature(pubKey *PublicKey, hash []byte, sig *Signature) error {
	if sig == nil || sig.r == nil || sig.s == nil {
		return invalidSig("missing R or S")
	}
	if sig.r.Sign() <= 0 || sig.r.Cmp(N) >= 0 {
		return invalidSig("R is not in [1, N-1]")
	}
	if sig.s.Sign() < 0 || sig.s.Cmp(N) >= 0 {
		return invalidSig("S is not in [0, N-1]")
	}
	w, err := ModInverse(sig.s, N)
	if err != nil {
		return invalidSig("S is not invertible")
	}

	z := hashToInt(hash)
	u1 := new(big.Int).Mul(z, w)
	u1.Mod(u1, N)
	u2 := new(big.Int).Mul(sig.r, w)
	u2.Mod(u2, N)

	// X = u1*G + u2*Q.  u1 is zero exactly when z = 0 (mod N), in which case
	// the first term vanishes.
	X, err := ScalarMult(pubKey.Point, u2)
	if err != nil {
		return invalidSig(err.Error())
	}
	if u1.Sign() != 0 {
		u1G, err := ScalarBaseMult(u1)
		if err != nil {
			return invalidSig(err.Error())
		}
		if X, err = Add(u1G, X); err != nil {
			return invalidSig(err.Error())
		}
	}

	if Mod(X.x, N).Cmp(sig.r) != 0 {
		return invalidSig("R does not match")
	}
	return nil
}

// VerifyStrict is VerifySignature that additionally requires the canonical
// low S form.
func VerifyStrict(pubKey *PublicKey, hash []byte, sig *Signature) error {
	if !sig.IsLowS() {
		return signatureError(ErrSigHighS, "invalid signature: S > N/2")
	}
	return VerifySignature(pubKey, hash, sig)
}

// Verify returns whether or not the signature is valid for the provided hash
// and secp256k1 public key.
func Verify(pubKey *PublicKey, hash []byte, sig *Signature) bool {
	return VerifySignature(pubKey, hash, sig) == nil
}

// Verify returns whether or not the signature is valid for the provided hash
// and secp256k1 public key.
func (sig *Signature) Verify(hash []byte, pubKey *PublicKey) bool {
	return Verify(pubKey, hash, sig)
}
