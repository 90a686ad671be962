package secp256k1

import (
	"crypto"
	"io"
)

type SignOptions struct {
	Hash crypto.Hash
}

func (s *SignOptions) HashFunc() crypto.Hash {
	return s.Hash
}

// Public returns the public key as a crypto.PublicKey.
func (privkey *PrivateKey) Public() crypto.PublicKey {
	return privkey.PubKey()
}

// Sign will sign the provided digest, returning the 64-byte R || S signature.
// Nonces are drawn from rand, or crypto/rand when rand is nil.  [SignOptions]
// can be used to pass options.
func (privkey *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	var (
		sig *Signature
		err error
	)
	if rand == nil {
		sig, err = Sign(privkey, digest)
	} else {
		sig, err = SignWithRand(rand, privkey, digest)
	}
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil // R || S
}
