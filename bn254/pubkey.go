// Package bn254 is the typed form of a BN254 public key as carried by the
// Cosmos wire message cosmos.crypto.bn254.PubKey.
//
// bn254pb.PubKey is the unvalidated wire counterpart; FromProto is the only
// way from it to a PubKey and enforces the 32-byte length. Importing this
// package registers the codec with typeurl.
package bn254

import (
	"encoding/json"
	"fmt"

	"github.com/ipfs/go-cid"

	"xdao.co/cosmoskey/fixedbytes"
	"xdao.co/cosmoskey/keyid"
	bn254pb "xdao.co/cosmoskey/proto/cosmos/crypto/bn254"
)

// TypeURL is the type identifier of the wire message.
const TypeURL = bn254pb.TypeURL

// PubKeySize is the length of a BN254 public key in bytes.
const PubKeySize = fixedbytes.Size32

// PubKey is a BN254 public key. Key is base64 in JSON.
type PubKey struct {
	Key fixedbytes.Bytes32 `json:"key"`
}

// NewPubKey copies b into a PubKey. b must be exactly PubKeySize bytes.
func NewPubKey(b []byte) (PubKey, error) {
	k, err := fixedbytes.To32(b)
	if err != nil {
		return PubKey{}, err
	}
	return PubKey{Key: k}, nil
}

func PubKeyFromArray(b [PubKeySize]byte) PubKey {
	return PubKey{Key: fixedbytes.Bytes32(b)}
}

// FromProto validates a wire message. A key of any length other than
// PubKeySize fails with *fixedbytes.InvalidLengthError.
func FromProto(m *bn254pb.PubKey) (PubKey, error) {
	return NewPubKey(m.GetKey())
}

// Proto returns the wire message for k.
func (k PubKey) Proto() *bn254pb.PubKey {
	return &bn254pb.PubKey{Key: k.Key.Slice()}
}

// Marshal returns the protobuf binary encoding of k.
func (k PubKey) Marshal() ([]byte, error) {
	return k.Proto().Marshal()
}

// Unmarshal decodes protobuf binary bytes into k.
func (k *PubKey) Unmarshal(b []byte) error {
	var m bn254pb.PubKey
	if err := m.Unmarshal(b); err != nil {
		return err
	}
	v, err := FromProto(&m)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func (k PubKey) Bytes() []byte { return k.Key.Slice() }

func (k PubKey) Equal(other PubKey) bool { return k.Key.Equal(other.Key) }

func (k PubKey) TypeURL() string { return TypeURL }

func (k PubKey) String() string {
	return fmt.Sprintf("PubKeyBN254{%s}", k.Key)
}

// CID returns the content identifier of k's wire encoding.
func (k PubKey) CID() (cid.Cid, error) {
	b, err := k.Marshal()
	if err != nil {
		return cid.Undef, err
	}
	return keyid.Of(b)
}

type pubKeyJSON struct {
	Key *fixedbytes.Bytes32 `json:"key"`
}

// UnmarshalJSON requires the key field; a decoded key of the wrong length
// fails with *fixedbytes.InvalidLengthError.
func (k *PubKey) UnmarshalJSON(b []byte) error {
	var aux pubKeyJSON
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.Key == nil {
		return fmt.Errorf("bn254: missing field %q", "key")
	}
	k.Key = *aux.Key
	return nil
}
