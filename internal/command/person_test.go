package command_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/estatebook/internal/book"
	"github.com/mesh-intelligence/estatebook/internal/command"
	"github.com/mesh-intelligence/estatebook/internal/model"
	"github.com/mesh-intelligence/estatebook/internal/testutil"
	"github.com/mesh-intelligence/estatebook/pkg/types"
)

func newTypicalModel() *model.Manager {
	return model.NewManager(testutil.TypicalPersonBook(), testutil.TypicalPropertyBook(), model.DefaultUserPrefs("data"))
}

// run parses and executes line against m.
func run(t *testing.T, m model.Model, line string) (command.Result, error) {
	t.Helper()
	c, err := command.Parse(line)
	require.NoError(t, err, "parse %q", line)
	return c.Execute(m)
}

func TestAddPersonCommand(t *testing.T) {
	m := newTypicalModel()

	res, err := command.AddPersonCommand{Person: testutil.Hoon}.Execute(m)

	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(command.MessageAddPersonSuccess, testutil.Hoon), res.Feedback)
	assert.Equal(t, command.ViewPersons, res.View)
	assert.Equal(t, append(testutil.TypicalPersons(), testutil.Hoon), m.PersonBook().Persons())
}

func TestAddPersonCommandDuplicate(t *testing.T) {
	m := newTypicalModel()
	sameName := testutil.NewPersonBuilder().WithName("Alice Pauline").Build()

	_, err := command.AddPersonCommand{Person: sameName}.Execute(m)

	var ce *command.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, command.MessageDuplicatePerson, ce.Message)
	assert.ErrorIs(t, err, book.ErrDuplicate)
	assert.Equal(t, 4, m.PersonBook().Len())
}

func TestEditPersonCommand(t *testing.T) {
	m := newTypicalModel()

	res, err := run(t, m, "editbuyer 2 p/90001111 e/benson@example.com")

	require.NoError(t, err)
	edited := testutil.PersonBuilderFrom(testutil.Benson).WithPhone("90001111").WithEmail("benson@example.com").Build()
	assert.Equal(t, fmt.Sprintf(command.MessageEditPersonSuccess, edited), res.Feedback)
	assert.Equal(t, []types.Person{testutil.Alice, edited, testutil.Carl, testutil.Daniel}, m.PersonBook().Persons())
}

func TestEditPersonCommandFilteredIndex(t *testing.T) {
	m := newTypicalModel()
	_, err := run(t, m, "findbuyer Meier")
	require.NoError(t, err)

	// Index 2 of the filtered view is Daniel, not Benson.
	_, err = run(t, m, "editbuyer 2 n/Daniel Meyer")
	require.NoError(t, err)

	assert.Equal(t, "Daniel Meyer", m.PersonBook().Persons()[3].Name().String())
	assert.Len(t, m.FilteredPersons(), 4, "edit shows all buyers")
}

func TestEditPersonCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		message string
	}{
		{"index out of range", "editbuyer 5 n/Someone", command.MessageInvalidPersonIndex},
		{"collision", "editbuyer 1 n/Carl Kurz", command.MessageDuplicatePerson},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTypicalModel()

			_, err := run(t, m, tt.line)

			var ce *command.Error
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.message, ce.Message)
			assert.Equal(t, testutil.TypicalPersons(), m.PersonBook().Persons())
		})
	}
}

func TestDeletePersonCommand(t *testing.T) {
	m := newTypicalModel()

	res, err := run(t, m, "deletebuyer 1")

	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(command.MessageDeletePersonSuccess, testutil.Alice), res.Feedback)
	assert.False(t, m.HasPerson(testutil.Alice))

	_, err = run(t, m, "deletebuyer 4")
	var ce *command.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, command.MessageInvalidPersonIndex, ce.Message)
}

func TestFindPersonCommand(t *testing.T) {
	m := newTypicalModel()

	res, err := run(t, m, "findbuyer meier kurz")

	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(command.MessagePersonsListed, 3), res.Feedback)
	assert.Equal(t, []types.Person{testutil.Benson, testutil.Carl, testutil.Daniel}, m.FilteredPersons())

	res, err = run(t, m, "listbuyer")
	require.NoError(t, err)
	assert.Equal(t, command.MessageListPersonsSuccess, res.Feedback)
	assert.Equal(t, testutil.TypicalPersons(), m.FilteredPersons())
}

func TestFindPersonCommandEqual(t *testing.T) {
	first := command.FindPersonCommand{Predicate: types.NameContainsKeywords{Keywords: []string{"first"}}}
	firstCopy := command.FindPersonCommand{Predicate: types.NameContainsKeywords{Keywords: []string{"first"}}}
	second := command.FindPersonCommand{Predicate: types.NameContainsKeywords{Keywords: []string{"first", "second"}}}

	assert.Equal(t, first, firstCopy)
	assert.NotEqual(t, first, second)
}
