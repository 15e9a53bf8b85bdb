package emailaddr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalText(t *testing.T) {
	parsed, err := Parse("simple@example.com")
	require.NoError(t, err)

	blob, err := json.Marshal(map[string]EmailAddress{"to": parsed})
	require.NoError(t, err)
	require.JSONEq(t, `{"to":"simple@example.com"}`, string(blob))
}

func TestUnmarshalText(t *testing.T) {
	var msg struct {
		To EmailAddress `json:"to"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"to":"simple@example.com"}`), &msg))
	require.Equal(t, "simple", msg.To.LocalPart())
	require.Equal(t, "example.com", msg.To.Domain())

	err := json.Unmarshal([]byte(`{"to":"Abc.example.com"}`), &msg)
	require.ErrorIs(t, err, ErrMissingSeparator)
}
