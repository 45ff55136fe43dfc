package typeurl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/anypb"
)

type echo string

func echoCodec(url string) Codec {
	return Codec{
		URL:         url,
		Description: "test codec",
		Decode: func(value []byte) (any, error) {
			if len(value) == 0 {
				return nil, errors.New("empty")
			}
			return echo(value), nil
		},
		Encode: func(v any) ([]byte, error) {
			e, ok := v.(echo)
			if !ok {
				return nil, fmt.Errorf("%w: got %T", ErrTypeMismatch, v)
			}
			return []byte(e), nil
		},
	}
}

func TestRegister_Validation(t *testing.T) {
	c := echoCodec("")
	require.Error(t, Register(c))

	c = echoCodec("no.leading.slash")
	require.Error(t, Register(c))

	c = echoCodec("/test.typeurl.MissingDecode")
	c.Decode = nil
	require.Error(t, Register(c))

	c = echoCodec("/test.typeurl.MissingEncode")
	c.Encode = nil
	require.Error(t, Register(c))
}

func TestRegister_Duplicate(t *testing.T) {
	require.NoError(t, Register(echoCodec("/test.typeurl.Dup")))
	require.Error(t, Register(echoCodec("/test.typeurl.Dup")))
	require.Panics(t, func() { MustRegister(echoCodec("/test.typeurl.Dup")) })
}

func TestListSorted(t *testing.T) {
	MustRegister(echoCodec("/test.typeurl.Zed"))
	MustRegister(echoCodec("/test.typeurl.Alpha"))

	urls := URLs()
	require.Contains(t, urls, "/test.typeurl.Zed")
	require.Contains(t, urls, "/test.typeurl.Alpha")
	require.IsIncreasing(t, urls)
}

func TestPackUnpack(t *testing.T) {
	const url = "/test.typeurl.Echo"
	MustRegister(echoCodec(url))

	a, err := Pack(url, echo("hello"))
	require.NoError(t, err)
	require.Equal(t, url, a.GetTypeUrl())
	require.Equal(t, []byte("hello"), a.GetValue())

	v, err := Unpack(a)
	require.NoError(t, err)
	require.Equal(t, echo("hello"), v)

	_, err = Pack(url, 42)
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Unpack(&anypb.Any{TypeUrl: url})
	require.EqualError(t, err, "empty")
}

func TestUnknownType(t *testing.T) {
	_, err := Unpack(&anypb.Any{TypeUrl: "/test.typeurl.Nope", Value: []byte{1}})
	require.True(t, IsUnknownType(err))

	_, err = Unpack(nil)
	require.True(t, IsUnknownType(err))

	_, err = Pack("/test.typeurl.Nope", echo("x"))
	require.ErrorIs(t, err, ErrUnknownType)

	_, ok := Lookup("/test.typeurl.Nope")
	require.False(t, ok)
}
