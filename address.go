package emailaddr

import (
	"strings"
	"unicode/utf8"
)

// Length limits from RFC 5321 §4.5.3.1 with the RFC 3696 erratum 1690
// correction for the overall domain.
const (
	maxLocalPartLength = 64
	maxDomainLength    = 254
	maxSubDomainLength = 63
)

// EmailAddress is a validated addr-spec split into its local-part and
// domain. The zero value is not a valid address; instances are produced
// by Parse only. Values are immutable and comparable: == and map-key use
// are structural over (local-part, domain).
type EmailAddress struct {
	local  string
	domain string
}

// Parse validates address against the addr-spec grammar and returns its
// two components. A single enclosing pair of angle brackets is stripped
// first. The address is split on the last '@', so a quoted local-part
// may itself contain '@' ("Abc@def"@example.com is valid). On failure
// one of the Err* values of this package is returned.
func Parse(address string) (EmailAddress, error) {
	if strings.HasPrefix(address, "<") && strings.HasSuffix(address, ">") && len(address) >= 2 {
		address = address[1 : len(address)-1]
	}

	// '@' never occurs inside a multi-byte UTF-8 sequence, byte search
	// is safe here.
	at := strings.LastIndexByte(address, '@')
	if at < 0 {
		return EmailAddress{}, ErrMissingSeparator
	}
	local, domain := address[:at], address[at+1:]

	if err := validateLocalPart(local); err != nil {
		return EmailAddress{}, err
	}
	if err := validateDomain(domain); err != nil {
		return EmailAddress{}, err
	}
	return EmailAddress{local: local, domain: domain}, nil
}

// IsValid reports whether Parse would accept address.
func IsValid(address string) bool {
	_, err := Parse(address)
	return err == nil
}

// IsValidLocalPart reports whether part alone would be accepted as the
// local-part of an address.
func IsValidLocalPart(part string) bool {
	return validateLocalPart(part) == nil
}

// IsValidDomain reports whether part alone would be accepted as the
// domain of an address.
func IsValidDomain(part string) bool {
	return validateDomain(part) == nil
}

// LocalPart returns the part before the separator, exactly as it
// appeared in the parsed input, surrounding quotes included.
func (a EmailAddress) LocalPart() string {
	return a.local
}

// Domain returns the part after the separator, exactly as it appeared in
// the parsed input, brackets of a domain literal included.
func (a EmailAddress) Domain() string {
	return a.domain
}

// IsZero reports whether a is the zero value rather than a parsed
// address.
func (a EmailAddress) IsZero() bool {
	return a.local == "" && a.domain == ""
}

// String returns the canonical "local-part@domain" form. Parsing the
// result yields a value equal to a. The zero value formats as "".
func (a EmailAddress) String() string {
	if a.IsZero() {
		return ""
	}
	return a.local + "@" + a.domain
}

func validateLocalPart(part string) error {
	switch {
	case part == "":
		return ErrLocalPartEmpty
	case utf8.RuneCountInString(part) > maxLocalPartLength:
		return ErrLocalPartTooLong
	}

	if len(part) >= 2 && strings.HasPrefix(part, `"`) && strings.HasSuffix(part, `"`) {
		if len(part) == 2 {
			return ErrLocalPartEmpty
		}
		if !isQcontent(part[1 : len(part)-1]) {
			return ErrInvalidCharacter
		}
		return nil
	}

	// The quoted form is all-or-nothing (RFC 3696 §3): a '"' anywhere
	// but at both ends makes the local-part unquoted, and '"' is not
	// atext, so it fails here.
	if !isDotAtomText(part) {
		return ErrInvalidCharacter
	}
	return nil
}

func validateDomain(part string) error {
	switch {
	case part == "":
		return ErrDomainEmpty
	case utf8.RuneCountInString(part) > maxDomainLength:
		return ErrDomainTooLong
	}

	if len(part) >= 2 && strings.HasPrefix(part, "[") && strings.HasSuffix(part, "]") {
		// Only the dtext character class is checked, not IP address
		// shape: "[IPv6:2001:db8::1]" and even "[]" pass. See
		// ErrInvalidIPAddress.
		if !isDtext(part[1 : len(part)-1]) {
			return ErrInvalidCharacter
		}
		return nil
	}

	if !isDotAtomText(part) {
		return ErrInvalidCharacter
	}
	for _, label := range strings.Split(part, ".") {
		if utf8.RuneCountInString(label) > maxSubDomainLength {
			return ErrSubDomainTooLong
		}
	}
	return nil
}
