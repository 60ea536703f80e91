package b64url

import (
	"testing"

	"github.com/rawbytedev/b64"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

func TestEncodeStripsPadding(t *testing.T) {
	require.Equal(t, "Zg", Encode([]byte("f")))
	require.Equal(t, "Zm8", Encode([]byte("fo")))
	require.Equal(t, "Zm9v", Encode([]byte("foo")))
	require.Equal(t, "Zm9vYmFyYmF6", Encode([]byte("foobarbaz")))
	require.Equal(t, "", Encode(nil))
}

func TestEncodeURLSafeSymbols(t *testing.T) {
	// fb ff bf packs into the values 62 63 62 63.
	out := Encode([]byte{0xfb, 0xff, 0xbf})
	require.Equal(t, "-_-_", out)
	require.NotContains(t, out, "+")
	require.NotContains(t, out, "/")
	require.NotContains(t, out, "=")
}

func TestDecodePaddedAndUnpadded(t *testing.T) {
	want := []byte("fo")
	got, err := Decode("Zm8")
	require.NoError(t, err)
	require.Equal(t, want, got)
	got, err = Decode("Zm8=")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDecodeRejectsStdSymbols(t *testing.T) {
	_, err := Decode("+/+/")
	require.ErrorIs(t, err, b64.ErrInvalidChar)
	_, err = Decode("Zm9vY")
	require.ErrorIs(t, err, b64.ErrMalformedInput)
}

func TestRoundTrip(t *testing.T) {
	for srclen := 0; srclen < 128; srclen++ {
		src := frand.Bytes(srclen)
		got, err := Decode(Encode(src))
		require.NoError(t, err)
		require.Equal(t, src, got)
	}
}
