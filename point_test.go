// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded constants so errors in
// the source code can be detected. It will only (and must only) be called with
// hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// mustParsePoint parses a hard-coded serialized point and panics on error.
func mustParsePoint(s string) Point {
	p, err := ParsePoint(hexToBytes(s))
	if err != nil {
		panic(err)
	}
	return p
}

const (
	// 8*G in both encodings.
	eightGUncompressed = "042f01e5e15cca351daff3843fb70f3c2f0a1bdd05e5af888a67784ef3e10a2a01" +
		"5c4da8a741539949293d082a132d13b4c2e213d6ba5b7617b5da2cb76cbde904"
	eightGCompressed = "022f01e5e15cca351daff3843fb70f3c2f0a1bdd05e5af888a67784ef3e10a2a01"

	// 2*G in both encodings.
	twoGUncompressed = "04c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5" +
		"1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a"
	twoGCompressed = "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
)

// TestParsePoint ensures that points are parsed according to their format
// prefix and that malformed encodings are rejected with the proper kind.
func TestParsePoint(t *testing.T) {
	tooBigX := "02" + "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc30"
	offCurve := "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b9"

	tests := []struct {
		name  string
		key   string
		err   error
		wantX string
		wantY string
	}{{
		name:  "uncompressed 8G",
		key:   eightGUncompressed,
		wantX: "2f01e5e15cca351daff3843fb70f3c2f0a1bdd05e5af888a67784ef3e10a2a01",
		wantY: "5c4da8a741539949293d082a132d13b4c2e213d6ba5b7617b5da2cb76cbde904",
	}, {
		name:  "compressed 8G (even y)",
		key:   eightGCompressed,
		wantX: "2f01e5e15cca351daff3843fb70f3c2f0a1bdd05e5af888a67784ef3e10a2a01",
		wantY: "5c4da8a741539949293d082a132d13b4c2e213d6ba5b7617b5da2cb76cbde904",
	}, {
		name:  "compressed G (even y)",
		key:   "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		wantX: "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		wantY: "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
	}, {
		name:  "compressed -G (odd y)",
		key:   "0379be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		wantX: "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		wantY: "b7c52588d95c3b9aa25b0403f1eef75702e84bb7597aabe663b82f6f04ef2777",
	}, {
		name: "empty",
		key:  "",
		err:  ErrInvalidPointEncoding,
	}, {
		name: "unknown prefix",
		key:  "05" + eightGUncompressed[2:],
		err:  ErrInvalidPointEncoding,
	}, {
		name: "hybrid prefix",
		key:  "06" + eightGUncompressed[2:],
		err:  ErrInvalidPointEncoding,
	}, {
		name: "uncompressed prefix with compressed length",
		key:  "04" + eightGCompressed[2:],
		err:  ErrInvalidPointEncoding,
	}, {
		name: "compressed prefix with uncompressed length",
		key:  "02" + eightGUncompressed[2:],
		err:  ErrInvalidPointEncoding,
	}, {
		name: "uncompressed missing a byte",
		key:  eightGUncompressed[:len(eightGUncompressed)-2],
		err:  ErrInvalidPointEncoding,
	}, {
		name: "compressed x not a field element",
		key:  tooBigX,
		err:  ErrInvalidPointEncoding,
	}, {
		name: "uncompressed off the curve",
		key:  offCurve,
		err:  ErrPointNotOnCurve,
	}}

	for _, test := range tests {
		p, err := ParsePoint(hexToBytes(test.key))
		if !errors.Is(err, test.err) {
			t.Errorf("%s mismatched err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
		if test.err != nil {
			continue
		}

		wantX := new(big.Int).SetBytes(hexToBytes(test.wantX))
		wantY := new(big.Int).SetBytes(hexToBytes(test.wantY))
		if p.X().Cmp(wantX) != 0 || p.Y().Cmp(wantY) != 0 {
			t.Errorf("%s: unexpected point -- got (%x, %x), want (%x, %x)",
				test.name, p.X(), p.Y(), wantX, wantY)
			continue
		}
		if !p.IsOnCurve() {
			t.Errorf("%s: parsed point is not on the curve", test.name)
		}
	}
}

// TestParsePointNoSquareRoot ensures a compressed point whose x coordinate has
// no matching y is rejected.
func TestParsePointNoSquareRoot(t *testing.T) {
	// Roughly half of all x values have no point, so the search is short.
	x := big.NewInt(1)
	for ; ; x.Add(x, big.NewInt(1)) {
		if _, err := DecompressY(x, false); err != nil {
			break
		}
	}

	b := make([]byte, PubKeyBytesLenCompressed)
	b[0] = PubKeyFormatCompressedEven
	x.FillBytes(b[1:])
	if _, err := ParsePoint(b); !errors.Is(err, ErrPointNotOnCurve) {
		t.Fatalf("x=%d: mismatched err -- got %v, want %v", x, err,
			ErrPointNotOnCurve)
	}
}

// TestPointSerialize ensures serialization uses fixed width coordinates and the
// parity based prefix, and that parsing the result gives back the same point.
func TestPointSerialize(t *testing.T) {
	tests := []struct {
		name         string
		point        Point
		compressed   string
		uncompressed string
	}{{
		name:         "8G",
		point:        mustParsePoint(eightGUncompressed),
		compressed:   eightGCompressed,
		uncompressed: eightGUncompressed,
	}, {
		name:         "2G",
		point:        mustParsePoint(twoGCompressed),
		compressed:   twoGCompressed,
		uncompressed: twoGUncompressed,
	}}

	for _, test := range tests {
		gotC := test.point.Serialize(true)
		if !bytes.Equal(gotC, hexToBytes(test.compressed)) {
			t.Errorf("%s: compressed -- got %x, want %s", test.name, gotC,
				test.compressed)
		}
		gotU := test.point.Serialize(false)
		if !bytes.Equal(gotU, hexToBytes(test.uncompressed)) {
			t.Errorf("%s: uncompressed -- got %x, want %s", test.name, gotU,
				test.uncompressed)
		}
	}
}

// TestPointRoundTrip ensures decode(encode(P)) yields P in both formats,
// including points whose coordinates have leading zero bytes.
func TestPointRoundTrip(t *testing.T) {
	for k := int64(1); k <= 64; k++ {
		p, err := ScalarBaseMult(big.NewInt(k))
		if err != nil {
			t.Fatalf("%d*G: unexpected error: %v", k, err)
		}
		for _, compressed := range []bool{true, false} {
			ser := p.Serialize(compressed)
			got, err := ParsePoint(ser)
			if err != nil {
				t.Fatalf("%d*G compressed=%v: parse error: %v", k, compressed,
					err)
			}
			if !got.Equal(p) {
				t.Fatalf("%d*G compressed=%v: round trip mismatch\ngot: %s\n"+
					"want: %s", k, compressed, spew.Sdump(got), spew.Sdump(p))
			}
		}
	}

	// An x coordinate with a leading zero byte must still be 32 bytes wide.
	x := fromHex("00000000000000000000003b78ce563f89a0ed9414f5aa28ad0d96d6795f9c63")
	y, err := DecompressY(x, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := NewPoint(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ser := p.SerializeCompressed(); len(ser) != PubKeyBytesLenCompressed {
		t.Fatalf("compressed length %d, want %d", len(ser),
			PubKeyBytesLenCompressed)
	}
	if ser := p.SerializeUncompressed(); len(ser) != PubKeyBytesLenUncompressed {
		t.Fatalf("uncompressed length %d, want %d", len(ser),
			PubKeyBytesLenUncompressed)
	}
}

// TestNewPoint ensures coordinates are validated.
func TestNewPoint(t *testing.T) {
	if _, err := NewPoint(G.X(), G.Y()); err != nil {
		t.Fatalf("G rejected: %v", err)
	}
	yPlusOne := new(big.Int).Add(G.Y(), big.NewInt(1))
	if _, err := NewPoint(G.X(), yPlusOne); !errors.Is(err, ErrPointNotOnCurve) {
		t.Fatalf("mismatched err -- got %v, want %v", err, ErrPointNotOnCurve)
	}
	xPlusP := new(big.Int).Add(G.X(), P)
	if _, err := NewPoint(xPlusP, G.Y()); !errors.Is(err, ErrInvalidPointEncoding) {
		t.Fatalf("mismatched err -- got %v, want %v", err,
			ErrInvalidPointEncoding)
	}
}
