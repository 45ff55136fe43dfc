// Package keyid derives content identifiers for public keys.
//
// The identifier of a key is a CIDv1 using the "raw" multicodec and a sha2-256
// multihash over the key's canonical protobuf wire bytes, so two encoders that
// agree on the wire form agree on the identifier.
package keyid

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Of returns the CIDv1 (raw + sha2-256) of wire.
func Of(wire []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(wire, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// String returns the CIDv1 string of wire.
func String(wire []byte) string {
	id, err := Of(wire)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1 length,
		// this should be unreachable.
		return ""
	}
	return id.String()
}

// Verify reports an error unless id is the identifier of wire.
func Verify(id cid.Cid, wire []byte) error {
	if !id.Defined() {
		return fmt.Errorf("keyid: undefined cid")
	}
	got, err := Of(wire)
	if err != nil {
		return err
	}
	if !got.Equals(id) {
		return fmt.Errorf("keyid: mismatch: got %s, want %s", got, id)
	}
	return nil
}

// Parse decodes a CID string and checks it uses the raw codec with sha2-256.
func Parse(s string) (cid.Cid, error) {
	id, err := cid.Decode(s)
	if err != nil {
		return cid.Undef, fmt.Errorf("keyid: %w", err)
	}
	p := id.Prefix()
	if p.Version != 1 || p.Codec != cid.Raw || p.MhType != multihash.SHA2_256 {
		return cid.Undef, fmt.Errorf("keyid: unexpected cid prefix %v", p)
	}
	return id, nil
}
