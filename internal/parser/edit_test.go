package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbaille/abook/internal/commands"
	"github.com/pbaille/abook/internal/domain"
)

func TestParseAdd(t *testing.T) {
	got, err := ParseAdd(" n/Bob Choo p/22222222 e/bob@example.com a/Block 123, Bobby Street 3 c/VIP c/Corporate Client")
	require.NoError(t, err)

	p := got.Person
	assert.Equal(t, "Bob Choo", p.Name)
	assert.Equal(t, "22222222", p.Phone)
	assert.Equal(t, "bob@example.com", p.Email)
	assert.Equal(t, "Block 123, Bobby Street 3", p.Address)
	assert.Equal(t, []string{"VIP", "Corporate Client"}, p.ClientTypes)
	assert.NotEmpty(t, p.ID)
}

func TestParseAddDropsRepeatedClientTypes(t *testing.T) {
	got, err := ParseAdd(" n/Bob p/222 e/bob@example.com a/x c/VIP c/vip")
	require.NoError(t, err)
	assert.Equal(t, []string{"VIP"}, got.Person.ClientTypes)
}

func TestParseAddMissingField(t *testing.T) {
	format := commands.InvalidCommandFormat(commands.AddUsage)
	for _, args := range []string{
		" p/222 e/bob@example.com a/x",
		" n/Bob e/bob@example.com a/x",
		" n/Bob p/222 a/x",
		" n/Bob p/222 e/bob@example.com",
		" pre n/Bob p/222 e/bob@example.com a/x",
	} {
		_, err := ParseAdd(args)
		assertParseError(t, err, InvalidFormat, format)
	}
}

func TestParseAddInvalidValue(t *testing.T) {
	tests := []struct {
		args string
		msg  string
	}{
		{" n/B0b p/222 e/bob@example.com a/x", domain.NameConstraints},
		{" n/Bob p/2a2 e/bob@example.com a/x", domain.PhoneConstraints},
		{" n/Bob p/222 e/bob a/x", domain.EmailConstraints},
		{" n/Bob p/222 e/bob@example.com a/x c/V-I-P", domain.ClientTypeConstraints},
		{" n/Bob n/Amy p/222 e/bob@example.com a/x", "Multiple values specified for the following single-valued field(s): n/"},
	}
	for _, tt := range tests {
		_, err := ParseAdd(tt.args)
		assertParseError(t, err, InvalidValue, tt.msg)
	}
}

func TestParseDelete(t *testing.T) {
	got, err := ParseDelete(" 1 ")
	require.NoError(t, err)
	assert.Equal(t, commands.NewDeleteCommand(1), got)

	for _, args := range []string{"", "a", "0", "-1", "1 2"} {
		_, err := ParseDelete(args)
		assertParseError(t, err, InvalidFormat, commands.InvalidCommandFormat(commands.DeleteUsage))
	}
}
