package fixedbytes

import (
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func seq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i + 1)
	}
	return b
}

func TestTo32_ExactLength(t *testing.T) {
	in := seq(Size32)
	got, err := To32(in)
	require.NoError(t, err)
	require.Equal(t, in, got[:])

	// The result must not alias the input.
	in[0] = 0xff
	require.Equal(t, byte(1), got[0])
}

func TestTo32_LengthMismatch(t *testing.T) {
	for _, n := range []int{0, 1, 31, 33, 64} {
		t.Run(fmt.Sprintf("len=%d", n), func(t *testing.T) {
			_, err := To32(seq(n))
			var lenErr *InvalidLengthError
			require.True(t, errors.As(err, &lenErr))
			require.Equal(t, Size32, lenErr.Expected)
			require.Equal(t, n, lenErr.Found)
			require.True(t, IsInvalidLength(err))
			require.True(t, IsInvalidLength(fmt.Errorf("wrapped: %w", err)))
		})
	}
}

func TestInvalidLengthError_Message(t *testing.T) {
	err := &InvalidLengthError{Expected: 32, Found: 31}
	require.Equal(t, "invalid length: expected 32 bytes, found 31", err.Error())
}

func TestBytes32_TextRoundTrip(t *testing.T) {
	v, err := To32(seq(Size32))
	require.NoError(t, err)

	text, err := v.MarshalText()
	require.NoError(t, err)
	require.Equal(t, base64.StdEncoding.EncodeToString(seq(Size32)), string(text))
	require.Equal(t, string(text), v.String())

	var back Bytes32
	require.NoError(t, back.UnmarshalText(text))
	require.True(t, back.Equal(v))
}

func TestBytes32_UnmarshalText_WrongDecodedLength(t *testing.T) {
	var b Bytes32
	err := b.UnmarshalText([]byte(base64.StdEncoding.EncodeToString(seq(31))))
	var lenErr *InvalidLengthError
	require.ErrorAs(t, err, &lenErr)
	require.Equal(t, 31, lenErr.Found)
	require.True(t, b.IsZero())
}

func TestBytes32_UnmarshalText_BadBase64(t *testing.T) {
	var b Bytes32
	err := b.UnmarshalText([]byte("not base64!"))
	require.Error(t, err)
	require.False(t, IsInvalidLength(err))
}

func TestBytes32_SliceIsCopy(t *testing.T) {
	v, err := To32(seq(Size32))
	require.NoError(t, err)
	s := v.Slice()
	s[0] = 0xff
	require.Equal(t, byte(1), v[0])
}

func TestDecodeBase64_Strict(t *testing.T) {
	raw := seq(Size32)
	text := base64.StdEncoding.EncodeToString(raw)

	got, err := DecodeBase64([]byte(text))
	require.NoError(t, err)
	require.Equal(t, raw, got)

	for _, bad := range []string{
		text[:10] + "\n" + text[10:],
		text[:10] + "\r" + text[10:],
		text + "\n",
		text[:len(text)-2] + "h=",
	} {
		_, err := DecodeBase64([]byte(bad))
		require.Error(t, err, "%q", bad)
	}
}
