// Package address turns secp256k1 public keys into Bitcoin addresses.
package address

import (
	"errors"
	"fmt"

	secp256k1 "github.com/ModChain/hdsecp256k1"
	"github.com/ModChain/hdsecp256k1/ecckd"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/chaincfg"
)

// witnessVersion is the segwit version of a P2WPKH output.
const witnessVersion = 0

var (
	errBits8To5        = errors.New("unable to convert address from 8-bit to 5-bit formatting")
	ErrUnsupportedKind = errors.New("no address type for key kind")
)

// Hash160 returns RIPEMD160(SHA256(b)).
func Hash160(b []byte) []byte {
	return btcutil.Hash160(b)
}

// P2PKH returns the Base58Check pay-to-pubkey-hash address of pub, using the
// compressed public key.
func P2PKH(pub *secp256k1.PublicKey, params *chaincfg.Params) string {
	return base58.CheckEncode(Hash160(pub.SerializeCompressed()), params.PubKeyHashAddrID)
}

// P2WPKH returns the Bech32 native segwit pay-to-witness-pubkey-hash address
// of pub.
func P2WPKH(pub *secp256k1.PublicKey, params *chaincfg.Params) (string, error) {
	fiveBits, err := bech32.ConvertBits(Hash160(pub.SerializeCompressed()), 8, 5, true)
	if err != nil {
		return "", errBits8To5
	}
	data := append([]byte{witnessVersion}, fiveBits...)
	return bech32.Encode(params.Bech32HRPSegwit, data)
}

// ForKind returns the address type that goes with keys of the given extended
// key kind: P2PKH for xprv and xpub, P2WPKH for zpub.
func ForKind(kind ecckd.KeyKind, pub *secp256k1.PublicKey, params *chaincfg.Params) (string, error) {
	switch kind {
	case ecckd.KindPrivate, ecckd.KindPublic:
		return P2PKH(pub, params), nil
	case ecckd.KindSegwitPublic:
		return P2WPKH(pub, params)
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
}

// Derived is a receive address together with its index and public key.
type Derived struct {
	Index     uint32
	PublicKey *secp256k1.PublicKey
	Address   string
}

// FromExtendedKey derives the receive address at index below the account key
// ek, that is the address of ek/0/index.
func FromExtendedKey(ek *ecckd.ExtendedKey, index uint32, params *chaincfg.Params) (*Derived, error) {
	child, err := ek.ReceiveKey(index)
	if err != nil {
		return nil, err
	}
	return fromChild(ek.Kind(), child, params)
}

func fromChild(kind ecckd.KeyKind, child *ecckd.ExtendedKey, params *chaincfg.Params) (*Derived, error) {
	pub, err := child.PubKey()
	if err != nil {
		return nil, err
	}
	addr, err := ForKind(kind, pub, params)
	if err != nil {
		return nil, err
	}
	return &Derived{Index: child.ChildNumber, PublicKey: pub, Address: addr}, nil
}
