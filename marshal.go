package emailaddr

// MarshalText implements encoding.TextMarshaler, emitting the canonical
// "local-part@domain" form.
func (a EmailAddress) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by running the text
// through Parse.
func (a *EmailAddress) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
