// Package emailaddr implements validation and representation of email
// addresses (the RFC 5322 addr-spec production) as extended for
// internationalized mail by RFC 6531/6532, with RFC 3696 quoting rules.
//
// The package recognizes the addr-spec grammar in isolation: dot-atom and
// quoted-string local-parts, dot-atom and bracketed-literal domains, and
// the full non-ASCII range as UTF8-non-ascii. Folding whitespace, comments
// and the obsolete productions are not supported, nor is the broader
// mailbox/address-list grammar; an address enclosed in a single pair of
// angle brackets is accepted as a convenience.
package emailaddr
