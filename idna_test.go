package emailaddr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToASCII(t *testing.T) {
	parsed, err := Parse("jsmith@пример.рф")
	require.NoError(t, err)

	ace, err := parsed.ToASCII()
	require.NoError(t, err)
	require.Equal(t, "jsmith@xn--e1afmkfd.xn--p1ai", ace.String())

	// ASCII addresses pass through unchanged.
	parsed, err = Parse("simple@example.com")
	require.NoError(t, err)
	ace, err = parsed.ToASCII()
	require.NoError(t, err)
	require.Equal(t, parsed, ace)
}

func TestToASCIIUnicodeLocalPart(t *testing.T) {
	parsed, err := Parse("коля@пример.рф")
	require.NoError(t, err)

	_, err = parsed.ToASCII()
	require.ErrorIs(t, err, ErrUnicodeLocalPart)
}

func TestToASCIIDomainLiteral(t *testing.T) {
	parsed, err := Parse("jsmith@[192.168.2.1]")
	require.NoError(t, err)

	ace, err := parsed.ToASCII()
	require.NoError(t, err)
	require.Equal(t, parsed, ace)
}

func TestToUnicode(t *testing.T) {
	parsed, err := Parse("jsmith@xn--e1afmkfd.xn--p1ai")
	require.NoError(t, err)

	ulabel, err := parsed.ToUnicode()
	require.NoError(t, err)
	require.Equal(t, "jsmith@пример.рф", ulabel.String())
}

func TestSelectIDNA(t *testing.T) {
	parsed, err := Parse("jsmith@пример.рф")
	require.NoError(t, err)

	ace, err := SelectIDNA(false, parsed)
	require.NoError(t, err)
	require.Equal(t, "jsmith@xn--e1afmkfd.xn--p1ai", ace.String())

	back, err := SelectIDNA(true, ace)
	require.NoError(t, err)
	require.Equal(t, parsed, back)
}
