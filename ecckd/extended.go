package ecckd

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"

	secp256k1 "github.com/ModChain/hdsecp256k1"
	"github.com/mr-tron/base58"
)

const (
	// HardenedKeyStart is the first hardened child index.  Only the indices
	// below it can be derived from a public key.
	HardenedKeyStart uint32 = 0x80000000

	// serializedKeyLen is the length of the extended key payload:
	//   version (4) || depth (1) || parent fingerprint (4) ||
	//   child num (4) || chain code (32) || key data (33)
	serializedKeyLen = 4 + 1 + 4 + 4 + 32 + 33

	checksumLen = 4

	// MinSeedBytes and MaxSeedBytes bound the seed accepted by FromSeed.
	MinSeedBytes = 16
	MaxSeedBytes = 64

	maxDepth = 0xff

	// receiveChain is the child index of the external chain under a BIP44
	// style account key.
	receiveChain = 0
)

type ExtendedKey struct {
	Version     KeyVersion
	Depth       uint8
	Fingerprint [4]byte  // fingerprint of the parent key, zero for a master key
	ChildNumber uint32   // ser32(i) for i in xi = xpar/i, with xi the key being serialized. (0x00000000 if master key)
	ChainCode   [32]byte // the chain code
	KeyData     [33]byte // serP(K) for public keys, 0x00 || ser256(k) for private keys
}

// FromBitcoinSeed returns a master node for a bitcoin wallet
func FromBitcoinSeed(seed []byte) (*ExtendedKey, error) {
	return FromSeed(seed, []byte("Bitcoin seed"))
}

func FromSeed(seed, masterSecret []byte) (*ExtendedKey, error) {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidSeed, len(seed))
	}
	key, chainCode, err := hmacCKD(seed, masterSecret)
	if err != nil {
		return nil, ErrInvalidSeed
	}

	res := &ExtendedKey{Version: BitcoinMainnetPrivate}
	key.FillBytes(res.KeyData[1:])
	copy(res.ChainCode[:], chainCode)
	return res, nil
}

// FromString decodes a Base58Check extended key.
func FromString(str string) (*ExtendedKey, error) {
	bin, err := base58.Decode(str)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase58, err)
	}

	e := &ExtendedKey{}
	if err := e.UnmarshalBinary(bin); err != nil {
		return nil, err
	}
	return e, nil
}

func (k *ExtendedKey) IsPrivate() bool {
	return k.Version.IsPrivate()
}

// Kind returns the kind of key announced by the version.
func (k *ExtendedKey) Kind() KeyKind {
	return k.Version.Kind()
}

// PubKey returns the public key of the extended key, computing it from the
// private scalar for private keys.
func (k *ExtendedKey) PubKey() (*secp256k1.PublicKey, error) {
	if k.IsPrivate() {
		priv, err := secp256k1.PrivKeyFromBytes(k.KeyData[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
		}
		return priv.PubKey(), nil
	}
	pub, err := secp256k1.ParsePubKey(k.KeyData[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return pub, nil
}

// pubKeyBytes returns the compressed public key of the extended key.
func (k *ExtendedKey) pubKeyBytes() ([]byte, error) {
	// Just return the key if it's already an extended public key.
	if !k.IsPrivate() {
		return k.KeyData[:], nil
	}
	pub, err := k.PubKey()
	if err != nil {
		return nil, err
	}
	return pub.SerializeCompressed(), nil
}

// KeyFingerprint returns the fingerprint of this key, the first four bytes of
// hash160 of its compressed public key.  Children of the key carry it as their
// parent fingerprint.
func (k *ExtendedKey) KeyFingerprint() ([4]byte, error) {
	var fp [4]byte
	pub, err := k.pubKeyBytes()
	if err != nil {
		return fp, err
	}
	copy(fp[:], rmd160sha256(pub))
	return fp, nil
}

// Child derives the public extended key at index i.
//
// Only non-hardened derivation is supported: i must be below
// HardenedKeyStart, otherwise ErrIndexOutOfRange is returned.  A private key
// is neutered first, so the child is always a public key.
//
//	IL || IR = HMAC-SHA512(chain code, serP(parent) || ser32(i))
//	child    = IL*G + parent, with chain code IR
//
// When IL is not a valid scalar or the sum is the point at infinity the child
// does not exist; the error then satisfies IsSkippable.
func (k *ExtendedKey) Child(i uint32) (*ExtendedKey, error) {
	if i >= HardenedKeyStart {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	if k.Depth == maxDepth {
		return nil, ErrMaxDepthExceeded
	}

	parent, err := k.Public()
	if err != nil {
		return nil, err
	}
	parentPub, err := parent.PubKey()
	if err != nil {
		return nil, err
	}

	const keyLen = 33
	data := make([]byte, keyLen+4)
	copy(data, parent.KeyData[:])
	binary.BigEndian.PutUint32(data[keyLen:], i)

	il, chainCode, err := hmacCKD(data, parent.ChainCode[:])
	if err != nil {
		return nil, fmt.Errorf("child %d: %w", i, err)
	}

	ilG, err := secp256k1.ScalarBaseMult(il)
	if err != nil {
		return nil, fmt.Errorf("child %d: %w", i, err)
	}
	childPoint, err := secp256k1.Add(ilG, parentPub.Point)
	if err != nil {
		return nil, fmt.Errorf("child %d: %w", i, err)
	}

	child := &ExtendedKey{
		Version:     parent.Version,
		Depth:       parent.Depth + 1,
		ChildNumber: i,
	}
	// The fingerprint for the derived child is the first 4 bytes of the
	// parent's hash160.
	copy(child.Fingerprint[:], rmd160sha256(parent.KeyData[:]))
	copy(child.ChainCode[:], chainCode)
	copy(child.KeyData[:], childPoint.SerializeCompressed())
	return child, nil
}

// Derive returns a derived child key at a given path
func (k *ExtendedKey) Derive(path []uint32) (*ExtendedKey, error) {
	var err error
	extKey := k
	for _, i := range path {
		extKey, err = extKey.Child(i)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDerivingChild, err)
		}
	}

	return extKey, nil
}

// ReceiveKey returns the key at index i of the receive chain below an account
// key, that is the child at path 0/i.
func (k *ExtendedKey) ReceiveKey(i uint32) (*ExtendedKey, error) {
	if i >= HardenedKeyStart {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	chain, err := k.Child(receiveChain)
	if err != nil {
		return nil, err
	}
	return chain.Child(i)
}

// Public returns a new extended public key from a give extended private key.
// If the input extended key is already public, it will be returned unaltered.
func (k *ExtendedKey) Public() (*ExtendedKey, error) {
	// Already an extended public key.
	if !k.IsPrivate() {
		return k, nil
	}

	// Convert it to an extended public key.  The key for the new extended
	// key will simply be the pubkey of the current extended private key.
	pub, err := k.pubKeyBytes()
	if err != nil {
		return nil, err
	}
	res := &ExtendedKey{
		Version:     k.Version.ToPublic(),
		ChainCode:   k.ChainCode,
		Fingerprint: k.Fingerprint,
		Depth:       k.Depth,
		ChildNumber: k.ChildNumber,
	}
	copy(res.KeyData[:], pub)
	return res, nil
}

// MarshalBinary encodes the key in standard format that can be base58 encoded for humans
func (k *ExtendedKey) MarshalBinary() ([]byte, error) {
	// The serialized format is:
	//   version (4) || depth (1) || parent fingerprint (4)) ||
	//   child num (4) || chain code (32) || key data (33) || checksum (4)
	serializedBytes := make([]byte, serializedKeyLen, serializedKeyLen+checksumLen)
	copy(serializedBytes[0:4], k.Version[:])
	serializedBytes[4] = k.Depth
	copy(serializedBytes[5:9], k.Fingerprint[:])
	binary.BigEndian.PutUint32(serializedBytes[9:13], k.ChildNumber)
	copy(serializedBytes[13:45], k.ChainCode[:])
	copy(serializedBytes[45:78], k.KeyData[:])

	serializedBytes = append(serializedBytes, checksum(serializedBytes)...)
	return serializedBytes, nil
}

func (k *ExtendedKey) String() string {
	bin, _ := k.MarshalBinary()
	return base58.Encode(bin)
}

func (k *ExtendedKey) UnmarshalBinary(data []byte) error {
	if len(data) != serializedKeyLen+checksumLen {
		return fmt.Errorf("%w: %d bytes", ErrInvalidKeyLen, len(data))
	}

	// Split the payload and checksum up and ensure the checksum matches.
	payload := data[:serializedKeyLen]
	if !bytes.Equal(data[serializedKeyLen:], checksum(payload)) {
		return ErrBadChecksum
	}

	// Deserialize each of the payload fields.
	var version KeyVersion
	copy(version[:], payload[:4])
	if version.Kind() == KindUnknown {
		return fmt.Errorf("%w: %s", ErrUnsupportedVersion, version)
	}
	keyData := payload[45:78]

	// The key data is a private key if it starts with 0x00.  Serialized
	// compressed pubkeys either start with 0x02 or 0x03.
	isPrivate := keyData[0] == 0x00
	if isPrivate != version.IsPrivate() {
		return ErrInvalidPrivateFlag
	}

	if isPrivate {
		// Ensure the private key is valid.  It must be within the range
		// of the order of the secp256k1 curve and not be 0.
		keyNum := new(big.Int).SetBytes(keyData[1:])
		if !secp256k1.IsValidScalar(keyNum) {
			return ErrInvalidKey
		}
	} else {
		// Ensure the public key parses correctly and is actually on the
		// secp256k1 curve.
		if _, err := secp256k1.ParsePubKey(keyData); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidKey, err)
		}
	}

	k.Version = version
	k.Depth = payload[4]
	copy(k.Fingerprint[:], payload[5:9])
	k.ChildNumber = binary.BigEndian.Uint32(payload[9:13])
	copy(k.ChainCode[:], payload[13:45])
	copy(k.KeyData[:], keyData)
	return nil
}
