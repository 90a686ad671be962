// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements secp256k1 elliptic curve arithmetic, key
generation and ECDSA in pure Go on top of math/big.

See https://www.secg.org/sec2-v2.pdf for details on the curve.  The sub
package ecckd builds BIP32 extended public key derivation on top of this
package, and the address package turns the resulting public keys into Bitcoin
addresses.

An overview of the features provided by this package are as follows:

  - Modular arithmetic helpers: Mod, ModInverse and ModPow
  - Affine points with parsing and serialization of the 33-byte compressed
    and 65-byte uncompressed formats
  - Point decompression from a given x coordinate and y parity
  - Point addition, point doubling and double-and-add scalar multiplication
  - Private key generation by rejection sampling, public key derivation
  - ECDSA signing with low-S normalization and verification
  - A fixed 64-byte R || S signature encoding
  - ECDH shared secrets and a crypto.Signer implementation

The point at infinity is never represented.  Any operation that would produce
it fails with an error matching ErrPointAtInfinity, and callers deriving keys
are expected to move on to the next index.

All arithmetic is variable time.  It is intended for wallet tooling and must
not be used to process secret scalars where timing can be observed.

Errors

Errors returned by this package are of type secp256k1.Error and wrap an
ErrorKind, so the reason for a failure can be checked with errors.Is:

	if errors.Is(err, secp256k1.ErrPointAtInfinity) {
		// try the next index
	}
*/
package secp256k1
