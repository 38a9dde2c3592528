package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/estatebook/internal/command"
	"github.com/mesh-intelligence/estatebook/internal/testutil"
	"github.com/mesh-intelligence/estatebook/pkg/types"
)

func mustValue[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		name string
		line string
		want command.Command
	}{
		{
			name: "add buyer",
			line: "addbuyer n/Amy Bee p/85355255 e/amy@gmail.com",
			want: command.AddPersonCommand{Person: testutil.NewPersonBuilder().Build()},
		},
		{
			name: "add buyer fields in any order",
			line: "addbuyer  e/amy@gmail.com n/Amy Bee p/85355255",
			want: command.AddPersonCommand{Person: testutil.NewPersonBuilder().Build()},
		},
		{
			name: "add property",
			line: "addprop n/Peak Residence p/3000000 a/333 Thompson Road d/" + testutil.DefaultDescription +
				" s/John Doe sp/94351253",
			want: command.AddPropertyCommand{Property: testutil.Peak},
		},
		{
			name: "add property with characteristics",
			line: "addprop n/Bishan Loft p/1250000 a/9 Bishan Place d/Loft unit near the park " +
				"s/Mary Tan sp/91112222 c/Bright; Near MRT",
			want: command.AddPropertyCommand{Property: testutil.Bishan},
		},
		{
			name: "edit buyer",
			line: "editbuyer 2 p/91234567",
			want: command.EditPersonCommand{
				Index:      1,
				Descriptor: command.EditPersonDescriptor{Phone: types.Some(mustValue(types.NewPhone("91234567")))},
			},
		},
		{
			name: "edit property clears characteristics",
			line: "editprop 2 p/1300000 c/",
			want: command.EditPropertyCommand{
				Index: 1,
				Descriptor: command.EditPropertyDescriptor{
					Price:                 types.Some(mustValue(types.NewPrice("1300000"))),
					CharacteristicsEdited: true,
				},
			},
		},
		{
			name: "delete buyer",
			line: "deletebuyer 3",
			want: command.DeletePersonCommand{Index: 2},
		},
		{
			name: "delete property",
			line: "deleteprop 1",
			want: command.DeletePropertyCommand{Index: 0},
		},
		{
			name: "find buyer",
			line: "findbuyer Alice \t Bob",
			want: command.FindPersonCommand{Predicate: types.NameContainsKeywords{Keywords: []string{"Alice", "Bob"}}},
		},
		{
			name: "find property",
			line: "findprop peak",
			want: command.FindPropertyCommand{Predicate: types.PropertyNameContainsKeywords{Keywords: []string{"peak"}}},
		},
		{name: "list buyers", line: "listbuyer", want: command.ListPersonsCommand{}},
		{name: "list properties", line: "  listprop  ", want: command.ListPropertiesCommand{}},
		{name: "clear", line: "clear", want: command.ClearCommand{}},
		{name: "help", line: "help", want: command.HelpCommand{}},
		{name: "exit", line: "exit", want: command.ExitCommand{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := command.Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		message string
	}{
		{"unknown word", "launch rockets", command.MessageUnknownCommand},
		{"empty line", "   ", ""},
		{"add buyer missing email", "addbuyer n/Amy Bee p/85355255", ""},
		{"add buyer with preamble", "addbuyer junk n/Amy Bee p/85355255 e/amy@gmail.com", ""},
		{"add buyer bad phone", "addbuyer n/Amy Bee p/12 e/amy@gmail.com", types.MessagePhoneConstraints},
		{"add buyer bad name", "addbuyer n/Amy* p/85355255 e/amy@gmail.com", types.MessageNameConstraints},
		{"add property missing seller", "addprop n/Peak p/1 a/Road d/Nice", ""},
		{"add property bad price", "addprop n/Peak p/1.234 a/Road d/Nice s/John Doe", types.MessagePriceConstraints},
		{"add property blank characteristic", "addprop n/Peak p/1 a/Road d/Nice s/John Doe c/Bright;;", types.MessageCharacteristicsConstraints},
		{"edit buyer no fields", "editbuyer 1", command.MessageNotEdited},
		{"edit buyer no index", "editbuyer n/Amy Bee", ""},
		{"edit property zero index", "editprop 0 n/Peak", ""},
		{"edit property blank name", "editprop 1 n/", types.MessagePropertyNameConstraints},
		{"delete property bad index", "deleteprop one", ""},
		{"find buyer no keywords", "findbuyer   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := command.Parse(tt.line)

			var pe *command.ParseError
			require.ErrorAs(t, err, &pe)
			if tt.message != "" {
				assert.Equal(t, tt.message, pe.Message)
			} else {
				assert.Contains(t, pe.Message, "Invalid command format!")
			}
		})
	}
}

func TestParseInvalidFormatMessage(t *testing.T) {
	_, err := command.Parse("addbuyer n/Jane")

	var pe *command.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Invalid command format!\n"+command.AddPersonUsage, pe.Message)
}

func TestHelpTextListsEveryCommand(t *testing.T) {
	help := command.HelpText()
	for _, word := range []string{
		command.AddPersonWord, command.EditPersonWord, command.DeletePersonWord,
		command.FindPersonWord, command.ListPersonsWord,
		command.AddPropertyWord, command.EditPropertyWord, command.DeletePropertyWord,
		command.FindPropertyWord, command.ListPropertiesWord,
		command.ClearWord, command.HelpWord, command.ExitWord,
	} {
		assert.Contains(t, help, word+":")
	}
}
