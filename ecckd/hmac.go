package ecckd

import (
	"crypto/hmac"
	"crypto/sha512"
	"math/big"

	secp256k1 "github.com/ModChain/hdsecp256k1"
)

// hmacCKD returns the tweak IL and the chain code IR of HMAC-SHA512(key, data).
//
// See: https://github.com/bitcoin/bips/blob/master/bip-0032.mediawiki
func hmacCKD(data, key []byte) (il *big.Int, chainCode []byte, err error) {
	mac := hmac.New(sha512.New, key)
	if _, err = mac.Write(data); err != nil {
		return
	}
	I := mac.Sum(nil)

	il = new(big.Int).SetBytes(I[:32])
	chainCode = I[32:]

	// In case parse256(IL) >= n or IL = 0, the resulting key is invalid, and
	// one should proceed with the next value for i.
	if !secp256k1.IsValidScalar(il) {
		err = ErrInvalidTweak
	}
	return
}
