package emailaddr

import (
	"errors"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// ErrUnicodeLocalPart is returned by ToASCII when the local-part
// contains non-ASCII characters: unlike the domain, it has no ACE form.
var ErrUnicodeLocalPart = errors.New("emailaddr: can not convert the Unicode local-part to the ACE form")

// ToASCII converts the domain to its A-label (Punycode) form and
// revalidates the result. It fails with ErrUnicodeLocalPart if the
// local-part contains non-ASCII characters. Domain literals contain no
// non-ASCII characters and pass through unchanged.
func (a EmailAddress) ToASCII() (EmailAddress, error) {
	for _, c := range a.local {
		if isUchar(c) {
			return a, ErrUnicodeLocalPart
		}
	}

	aDomain, err := idna.ToASCII(a.domain)
	if err != nil {
		return a, err
	}
	return Parse(a.local + "@" + aDomain)
}

// ToUnicode converts the domain to its U-label form, NFC-normalizes the
// whole address, and revalidates the result.
func (a EmailAddress) ToUnicode() (EmailAddress, error) {
	uDomain, err := idna.ToUnicode(a.domain)
	if err != nil {
		return a, err
	}
	return Parse(norm.NFC.String(a.local + "@" + uDomain))
}

// SelectIDNA is a convenience function for conversion of the domain
// to/from the Punycode form.
//
// ulabel=true => ToUnicode is used.
// ulabel=false => ToASCII is used.
func SelectIDNA(ulabel bool, addr EmailAddress) (EmailAddress, error) {
	if ulabel {
		return addr.ToUnicode()
	}
	return addr.ToASCII()
}
