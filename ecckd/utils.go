package ecckd

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

// checksum returns the first four bytes of sha256(sha256(in)).
func checksum(in []byte) []byte {
	return chainhash.DoubleHashB(in)[:checksumLen]
}

// ripemd160 + sha256
func rmd160sha256(in []byte) []byte {
	a := sha256.Sum256(in)
	rmd := ripemd160.New()
	rmd.Write(a[:])
	return rmd.Sum(nil)
}
