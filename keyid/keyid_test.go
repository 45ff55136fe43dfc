package keyid

import (
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/require"
)

func TestOf_Deterministic(t *testing.T) {
	a, err := Of([]byte("key bytes"))
	require.NoError(t, err)
	b, err := Of([]byte("key bytes"))
	require.NoError(t, err)
	require.True(t, a.Equals(b))
	require.Equal(t, a.String(), String([]byte("key bytes")))

	c, err := Of([]byte("other key"))
	require.NoError(t, err)
	require.False(t, a.Equals(c))
}

func TestOf_Prefix(t *testing.T) {
	id, err := Of([]byte{1, 2, 3})
	require.NoError(t, err)
	p := id.Prefix()
	require.Equal(t, uint64(1), p.Version)
	require.Equal(t, uint64(cid.Raw), p.Codec)
	require.Equal(t, uint64(multihash.SHA2_256), p.MhType)
}

func TestVerify(t *testing.T) {
	wire := []byte{0x0a, 0x01, 0x00}
	id, err := Of(wire)
	require.NoError(t, err)
	require.NoError(t, Verify(id, wire))
	require.Error(t, Verify(id, []byte{0x0a, 0x01, 0x01}))
	require.Error(t, Verify(cid.Undef, wire))
}

func TestParse(t *testing.T) {
	id, err := Of([]byte("abc"))
	require.NoError(t, err)

	got, err := Parse(id.String())
	require.NoError(t, err)
	require.True(t, got.Equals(id))

	_, err = Parse("not-a-cid")
	require.Error(t, err)

	sum, err := multihash.Sum([]byte("abc"), multihash.SHA2_256, -1)
	require.NoError(t, err)
	_, err = Parse(cid.NewCidV1(cid.DagProtobuf, sum).String())
	require.Error(t, err)
}
