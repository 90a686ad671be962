package ecckd

import (
	"errors"

	secp256k1 "github.com/ModChain/hdsecp256k1"
)

var (
	ErrInvalidBase58      = errors.New("extended key is not valid base58")
	ErrInvalidKey         = errors.New("key is invalid")
	ErrInvalidSeed        = errors.New("seed is invalid")
	ErrBadChecksum        = errors.New("bad extended key checksum")
	ErrInvalidKeyLen      = errors.New("serialized extended key length is invalid")
	ErrUnsupportedVersion = errors.New("unsupported extended key version")
	ErrInvalidPrivateFlag = errors.New("key private flag does not match version")
	ErrIndexOutOfRange    = errors.New("child index is not in the non-hardened range")
	ErrInvalidTweak       = errors.New("derived tweak zero or overflow, try next one")
	ErrDerivingChild      = errors.New("error deriving child key")
	ErrMaxDepthExceeded   = errors.New("max depth exceeded")
)

// IsSkippable reports whether err means the requested child does not exist
// and the caller should move on to the next index.  BIP32 gives this a
// probability below 1 in 2^127.
func IsSkippable(err error) bool {
	return errors.Is(err, ErrInvalidTweak) || errors.Is(err, secp256k1.ErrPointAtInfinity)
}
