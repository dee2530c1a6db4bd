package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbaille/abook/internal/commands"
	"github.com/pbaille/abook/internal/domain"
)

func TestParseDispatch(t *testing.T) {
	tests := []struct {
		input string
		want  commands.Command
	}{
		{"fn Alice", commands.NewFindNameCommand(domain.NewNameContainsKeywords([]string{"Alice"}))},
		{"  fc   VIP  ", commands.NewFindClientTypeCommand(domain.NewClientTypeContainsKeywords([]string{"VIP"}))},
		{"find n/Al", commands.NewFindCommand(domain.NewNameStartsWithKeywords([]string{"Al"}))},
		{"delete 3", commands.NewDeleteCommand(3)},
		{"list", commands.ListCommand{}},
		{"list extra", commands.ListCommand{}},
		{"clear", commands.ClearCommand{}},
		{"help", commands.HelpCommand{}},
		{"exit", commands.ExitCommand{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseAddViaDispatch(t *testing.T) {
	got, err := Parse("add n/Amy Bee p/85355255 e/amy@gmail.com a/123, Jurong West c/VIP")
	require.NoError(t, err)
	want := commands.NewAddCommand(domain.Person{
		Name: "Amy Bee", Phone: "85355255", Email: "amy@gmail.com",
		Address: "123, Jurong West", ClientTypes: []string{"VIP"},
	})
	assert.True(t, want.Equal(got))
}

func TestParseEmpty(t *testing.T) {
	cmd, err := Parse("   ")
	assert.Nil(t, cmd)
	assertParseError(t, err, InvalidFormat, commands.InvalidCommandFormat(commands.HelpUsage))
}

func TestParseUnknownCommand(t *testing.T) {
	cmd, err := Parse("unknownCommand")
	assert.Nil(t, cmd)
	assertParseError(t, err, UnknownCommand, commands.MessageUnknownCommand)

	// command words are case-sensitive
	_, err = Parse("FN Alice")
	assertParseError(t, err, UnknownCommand, "")
}

func TestParseFailureReturnsNilCommand(t *testing.T) {
	cmd, err := Parse("fn   ")
	assert.Nil(t, cmd)
	assertParseError(t, err, InvalidFormat, commands.InvalidCommandFormat(commands.FindNameUsage))
}

func TestParseRoundTrip(t *testing.T) {
	for _, input := range []string{"fn Alice Bob", "fc VIP", "find c/Retail", "delete 1"} {
		a, err := Parse(input)
		require.NoError(t, err)
		b, err := Parse(input)
		require.NoError(t, err)
		assert.True(t, a.Equal(b), input)
	}
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "invalid_format", InvalidFormat.String())
	assert.Equal(t, "unknown_command", UnknownCommand.String())
	assert.Equal(t, "invalid_value", InvalidValue.String())
}
