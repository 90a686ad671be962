package ecckd

import "encoding/hex"

// KeyVersion is the 4-byte version prefix of a serialized extended key.
type KeyVersion [4]byte

var (
	BitcoinMainnetPrivate = KeyVersion{0x04, 0x88, 0xad, 0xe4} // xprv
	BitcoinMainnetPublic  = KeyVersion{0x04, 0x88, 0xb2, 0x1e} // xpub
	BitcoinSegwitPublic   = KeyVersion{0x04, 0xb2, 0x47, 0x46} // zpub, BIP84
)

// KeyKind is the kind of key a version prefix announces.
type KeyKind int

const (
	KindUnknown KeyKind = iota
	KindPrivate
	KindPublic
	KindSegwitPublic
)

func (k KeyKind) String() string {
	switch k {
	case KindPrivate:
		return "xprv"
	case KindPublic:
		return "xpub"
	case KindSegwitPublic:
		return "zpub"
	}
	return "unknown"
}

// Kind returns the kind of key this version is used for, or KindUnknown.
func (kv KeyVersion) Kind() KeyKind {
	switch kv {
	case BitcoinMainnetPrivate:
		return KindPrivate
	case BitcoinMainnetPublic:
		return KindPublic
	case BitcoinSegwitPublic:
		return KindSegwitPublic
	}
	return KindUnknown
}

// IsPrivate returns true if the version is for a private key
func (kv KeyVersion) IsPrivate() bool {
	return kv.Kind() == KindPrivate
}

func (kv KeyVersion) ToPublic() KeyVersion {
	if kv == BitcoinMainnetPrivate {
		return BitcoinMainnetPublic
	}
	return kv
}

func (kv KeyVersion) String() string {
	return hex.EncodeToString(kv[:])
}
