package emailaddr

import (
	"fmt"
	"strings"
)

const mailtoPrefix = "mailto:"

// URI returns the address as a mailto URI, with the characters reserved
// by RFC 3986 percent-encoded: "name@example.org" becomes
// "mailto:name%40example.org". Non-ASCII characters are left as-is.
func (a EmailAddress) URI() string {
	return mailtoPrefix + percentEncode(a.String())
}

// Display returns the address together with a display name, in the form
// commonly used in message headers: "My Name <name@example.org>". The
// name is not escaped or quoted.
func (a EmailAddress) Display(name string) string {
	return name + " <" + a.String() + ">"
}

func percentEncode(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, c := range s {
		if isURIReserved(c) {
			fmt.Fprintf(&sb, "%%%02X", c)
		} else {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

func isURIReserved(c rune) bool {
	switch c {
	case '!', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',',
		'/', ':', ';', '=', '?', '@', '[', ']':
		return true
	}
	return false
}
