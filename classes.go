package emailaddr

import "strings"

// Character classes from RFC 5322 §3.2, with the RFC 6531/6532
// UTF8-non-ascii extension folded into atext and qtext. dtext is kept
// ASCII-only, matching RFC 5322 §3.4.1.

func isAtext(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '/',
		'=', '?', '^', '_', '`', '{', '|', '}', '~':
		return true
	}
	return isUchar(c)
}

// isUchar reports whether c falls into the UTF8-non-ascii range. Input
// strings are already valid UTF-8 (Go strings iterated by rune), so no
// byte-sequence check is needed.
func isUchar(c rune) bool {
	return c >= 0x80
}

func isVchar(c rune) bool {
	return c >= 0x21 && c <= 0x7E
}

func isWsp(c rune) bool {
	return c == ' ' || c == '\t'
}

func isQtextChar(c rune) bool {
	return c == 0x21 || (c >= 0x23 && c <= 0x5B) || (c >= 0x5D && c <= 0x7E) || isUchar(c)
}

func isDtextChar(c rune) bool {
	return (c >= 0x21 && c <= 0x5A) || (c >= 0x5E && c <= 0x7E)
}

func isAtom(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !isAtext(c) {
			return false
		}
	}
	return true
}

// isDotAtomText implements the dot-atom-text production: atoms joined by
// single dots. Leading, trailing and doubled dots produce an empty
// segment and fail the atom check.
func isDotAtomText(s string) bool {
	for _, atom := range strings.Split(s, ".") {
		if !isAtom(atom) {
			return false
		}
	}
	return true
}

// isQcontent scans the interior of a quoted local-part. A backslash
// consumes the following character as a quoted-pair, which must be a
// VCHAR; everything else must be WSP or qtext. The empty string is
// accepted, emptiness is the caller's concern.
func isQcontent(s string) bool {
	escaped := false
	for _, c := range s {
		if escaped {
			if !isVchar(c) {
				return false
			}
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if !isWsp(c) && !isQtextChar(c) {
			return false
		}
	}
	return !escaped
}

func isDtext(s string) bool {
	for _, c := range s {
		if !isDtextChar(c) {
			return false
		}
	}
	return true
}
