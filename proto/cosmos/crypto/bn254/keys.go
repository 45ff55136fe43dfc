// Package bn254pb is the wire form of cosmos.crypto.bn254.PubKey.
//
// The message has a single bytes field, so it is encoded by hand with protowire
// rather than through a protoc/codegen toolchain. Proto definition: keys.proto.
package bn254pb

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// TypeURL identifies PubKey inside a google.protobuf.Any. External decoders
// dispatch on this exact value.
const TypeURL = "/cosmos.crypto.bn254.PubKey"

// MessageName is the fully-qualified protobuf message name.
const MessageName = "cosmos.crypto.bn254.PubKey"

const fieldKey protowire.Number = 1

// PubKey carries key bytes of any length as delivered by a wire decoder.
type PubKey struct {
	Key []byte
}

func (m *PubKey) Reset() { *m = PubKey{} }

func (m *PubKey) GetKey() []byte {
	if m == nil {
		return nil
	}
	return m.Key
}

// Size returns the encoded length in bytes.
func (m *PubKey) Size() int {
	if m == nil || len(m.Key) == 0 {
		return 0
	}
	return protowire.SizeTag(fieldKey) + protowire.SizeBytes(len(m.Key))
}

// Marshal returns the proto3 binary encoding. An empty key encodes to no bytes.
func (m *PubKey) Marshal() ([]byte, error) {
	return m.MarshalAppend(make([]byte, 0, m.Size())), nil
}

// MarshalAppend appends the binary encoding to b.
func (m *PubKey) MarshalAppend(b []byte) []byte {
	if m == nil || len(m.Key) == 0 {
		return b
	}
	b = protowire.AppendTag(b, fieldKey, protowire.BytesType)
	return protowire.AppendBytes(b, m.Key)
}

// Unmarshal decodes b into m. Unknown fields are skipped and a repeated key
// field replaces the earlier value.
func (m *PubKey) Unmarshal(b []byte) error {
	m.Reset()
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("bn254pb: %w", protowire.ParseError(n))
		}
		b = b[n:]

		if num != fieldKey {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("bn254pb: field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}

		if typ != protowire.BytesType {
			return fmt.Errorf("bn254pb: field key has wire type %d, want %d", typ, protowire.BytesType)
		}
		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return fmt.Errorf("bn254pb: field key: %w", protowire.ParseError(n))
		}
		m.Key = append([]byte(nil), v...)
		b = b[n:]
	}
	return nil
}
