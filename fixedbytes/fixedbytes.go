// Package fixedbytes holds fixed-size byte arrays that travel over wire formats
// with no native fixed-length concept.
//
// Conversions from variable-length input are the single enforcement point for
// the length invariant: a Bytes32 value can only be obtained from exactly 32
// bytes.
package fixedbytes

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

// Size32 is the length of a Bytes32.
const Size32 = 32

// Bytes32 is a 32-byte array. Its text form is standard base64.
type Bytes32 [Size32]byte

// To32 converts b into a Bytes32, failing with *InvalidLengthError unless
// len(b) == 32.
func To32(b []byte) (Bytes32, error) {
	var out Bytes32
	if len(b) != Size32 {
		return out, &InvalidLengthError{Expected: Size32, Found: len(b)}
	}
	copy(out[:], b)
	return out, nil
}

// Slice returns a fresh copy of the bytes.
func (b Bytes32) Slice() []byte {
	out := make([]byte, Size32)
	copy(out, b[:])
	return out
}

func (b Bytes32) Equal(other Bytes32) bool {
	return bytes.Equal(b[:], other[:])
}

func (b Bytes32) IsZero() bool {
	return b == Bytes32{}
}

func (b Bytes32) String() string {
	return base64.StdEncoding.EncodeToString(b[:])
}

// MarshalText encodes the array as standard base64.
func (b Bytes32) MarshalText() ([]byte, error) {
	out := make([]byte, base64.StdEncoding.EncodedLen(Size32))
	base64.StdEncoding.Encode(out, b[:])
	return out, nil
}

// UnmarshalText decodes standard base64. The decoded byte count must be
// exactly 32.
func (b *Bytes32) UnmarshalText(text []byte) error {
	raw, err := DecodeBase64(text)
	if err != nil {
		return err
	}
	v, err := To32(raw)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// DecodeBase64 decodes standard (padded) base64. Each byte sequence has
// exactly one accepted text form: line breaks and non-zero trailing bits are
// rejected.
func DecodeBase64(text []byte) ([]byte, error) {
	if i := bytes.IndexAny(text, "\r\n"); i >= 0 {
		return nil, fmt.Errorf("fixedbytes: invalid base64: line break at offset %d", i)
	}
	out := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Strict().Decode(out, text)
	if err != nil {
		return nil, fmt.Errorf("fixedbytes: invalid base64: %w", err)
	}
	return out[:n], nil
}
