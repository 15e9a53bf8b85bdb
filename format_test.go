package emailaddr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestURI(t *testing.T) {
	for _, tc := range []struct {
		addr string
		uri  string
	}{
		{"johnstonsk@gmail.com", "mailto:johnstonsk%40gmail.com"},
		{"user.name+tag+sorting@example.com", "mailto:user.name%2Btag%2Bsorting%40example.com"},
		{"jsmith@[192.168.2.1]", "mailto:jsmith%40%5B192.168.2.1%5D"},
		{"jsmith@[IPv6:2001:db8::1]", "mailto:jsmith%40%5BIPv6%3A2001%3Adb8%3A%3A1%5D"},
		// '"' is not in the reserved set and stays as-is.
		{"\"Abc@def\"@example.com", "mailto:\"Abc%40def\"%40example.com"},
		{"用户@例子.广告", "mailto:用户%40例子.广告"},
	} {
		parsed, err := Parse(tc.addr)
		require.NoError(t, err)
		require.Equal(t, tc.uri, parsed.URI())
	}
}

func TestURIProperties(t *testing.T) {
	for _, addr := range validAddresses {
		parsed, err := Parse(addr)
		require.NoError(t, err)

		uri := parsed.URI()
		require.True(t, strings.HasPrefix(uri, "mailto:"))
		require.NotContains(t, uri, "@")
		require.NotContains(t, uri, "[")
		require.NotContains(t, uri, "]")
	}
}

func TestURIUppercaseHex(t *testing.T) {
	parsed, err := Parse("a+b@example.com")
	require.NoError(t, err)
	require.Equal(t, "mailto:a%2Bb%40example.com", parsed.URI())
}

func TestDisplay(t *testing.T) {
	parsed, err := Parse("johnstonsk@gmail.com")
	require.NoError(t, err)
	require.Equal(t, "Simon Johnston <johnstonsk@gmail.com>", parsed.Display("Simon Johnston"))
}
