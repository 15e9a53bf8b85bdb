package emailaddr

import "errors"

// Validation errors returned by Parse. Exactly one error value describes a
// failed attempt; validation stops at the first violation encountered.
var (
	// ErrInvalidCharacter means some component of the address contains a
	// character that is not legal for its position.
	ErrInvalidCharacter = errors.New("emailaddr: invalid character")

	// ErrMissingSeparator means no '@' separator between the local-part
	// and the domain was found.
	ErrMissingSeparator = errors.New("emailaddr: missing '@' separator")

	// ErrLocalPartEmpty means the local-part is an empty string. It is
	// also returned for the empty quoted form `""`.
	ErrLocalPartEmpty = errors.New("emailaddr: local-part is empty")

	// ErrLocalPartTooLong means the local-part exceeds 64 characters.
	ErrLocalPartTooLong = errors.New("emailaddr: local-part is too long")

	// ErrDomainEmpty means the domain is an empty string.
	ErrDomainEmpty = errors.New("emailaddr: domain is empty")

	// ErrDomainTooLong means the domain exceeds 254 characters.
	ErrDomainTooLong = errors.New("emailaddr: domain is too long")

	// ErrSubDomainTooLong means a label within the domain exceeds 63
	// characters.
	ErrSubDomainTooLong = errors.New("emailaddr: domain label is too long")
)

// Reserved errors. These are part of the taxonomy but are never returned
// by the current validators; they are declared so that callers layering
// stricter policies on top of Parse have stable values to report.
var (
	// ErrDomainTooFew is reserved for a minimum-label-count policy.
	// No such policy is enforced: "admin@mailserver1" is accepted.
	ErrDomainTooFew = errors.New("emailaddr: too few labels in the domain")

	// ErrDomainInvalidSeparator is reserved. Misplaced dots are reported
	// as ErrInvalidCharacter by the dot-atom recognizer.
	ErrDomainInvalidSeparator = errors.New("emailaddr: invalid placement of the '.' separator")

	// ErrUnbalancedQuotes is reserved. A local-part with a stray '"' is
	// reported as ErrInvalidCharacter, since the quoted form is detected
	// only by a leading and trailing quote pair.
	ErrUnbalancedQuotes = errors.New("emailaddr: quotes around the local-part are unbalanced")

	// ErrInvalidComment is reserved. Comments are not supported at all.
	ErrInvalidComment = errors.New("emailaddr: malformed comment")

	// ErrInvalidIPAddress is reserved. Domain literals are checked only
	// against the dtext character class, not for IP address shape, so
	// even "[]" passes. Callers needing real IP validation must layer
	// their own check on top.
	ErrInvalidIPAddress = errors.New("emailaddr: invalid IP address in the domain literal")

	// ErrImpossible marks states the implementation asserts cannot occur.
	ErrImpossible = errors.New("emailaddr: impossible state reached")
)
