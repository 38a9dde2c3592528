package command

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/estatebook/internal/book"
	"github.com/mesh-intelligence/estatebook/internal/model"
	"github.com/mesh-intelligence/estatebook/pkg/types"
)

// Buyer command words and usage.
const (
	AddPersonWord    = "addbuyer"
	EditPersonWord   = "editbuyer"
	DeletePersonWord = "deletebuyer"
	FindPersonWord   = "findbuyer"
	ListPersonsWord  = "listbuyer"

	AddPersonUsage = AddPersonWord + ": Adds a buyer to the buyer book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL\n" +
		"Example: " + AddPersonWord + " n/John Doe p/98765432 e/johnd@example.com"
	EditPersonUsage = EditPersonWord + ": Edits the buyer identified by the index number used in the displayed buyer list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL]\n" +
		"Example: " + EditPersonWord + " 1 p/91234567 e/johndoe@example.com"
	DeletePersonUsage = DeletePersonWord + ": Deletes the buyer identified by the index number used in the displayed buyer list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeletePersonWord + " 1"
	FindPersonUsage = FindPersonWord + ": Finds all buyers whose names contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + FindPersonWord + " alice bob charlie"
	ListPersonsUsage = ListPersonsWord + ": Lists all buyers."
)

// Buyer command feedback.
const (
	MessageAddPersonSuccess    = "New buyer added: %s"
	MessageEditPersonSuccess   = "Edited buyer: %s"
	MessageDeletePersonSuccess = "Deleted buyer: %s"
	MessageListPersonsSuccess  = "Listed all buyers"
)

// AddPersonCommand adds a buyer.
type AddPersonCommand struct {
	Person types.Person
}

func parseAddPerson(args string) (Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail)
	rawName, hasName := m.Value(PrefixName)
	rawPhone, hasPhone := m.Value(PrefixPhone)
	rawEmail, hasEmail := m.Value(PrefixEmail)
	if !hasName || !hasPhone || !hasEmail || m.Preamble() != "" {
		return nil, invalidFormat(AddPersonUsage)
	}

	name, err := parseValue(rawName, types.NewName)
	if err != nil {
		return nil, err
	}
	phone, err := parseValue(rawPhone, types.NewPhone)
	if err != nil {
		return nil, err
	}
	email, err := parseValue(rawEmail, types.NewEmail)
	if err != nil {
		return nil, err
	}
	person, err := types.NewPerson(name, phone, email)
	if err != nil {
		return nil, &ParseError{Message: err.Error(), Err: err}
	}
	return AddPersonCommand{Person: person}, nil
}

func (c AddPersonCommand) Execute(m model.Model) (Result, error) {
	if err := m.AddPerson(c.Person); err != nil {
		if errors.Is(err, book.ErrDuplicate) {
			return Result{}, &Error{Message: MessageDuplicatePerson, Err: err}
		}
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageAddPersonSuccess, c.Person), View: ViewPersons}, nil
}

// EditPersonDescriptor holds the fields to change on a buyer. Empty fields
// keep their current value.
type EditPersonDescriptor struct {
	Name  types.Optional[types.Name]
	Phone types.Optional[types.Phone]
	Email types.Optional[types.Email]
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditPersonDescriptor) IsAnyFieldEdited() bool {
	return d.Name.IsPresent() || d.Phone.IsPresent() || d.Email.IsPresent()
}

// apply returns p with the descriptor's fields applied.
func (d EditPersonDescriptor) apply(p types.Person) (types.Person, error) {
	return types.NewPerson(
		d.Name.OrElse(p.Name()),
		d.Phone.OrElse(p.Phone()),
		d.Email.OrElse(p.Email()),
	)
}

// EditPersonCommand replaces the buyer at Index in the displayed list.
type EditPersonCommand struct {
	Index      int
	Descriptor EditPersonDescriptor
}

func parseEditPerson(args string) (Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail)
	if m.Preamble() == "" {
		return nil, invalidFormat(EditPersonUsage)
	}
	index, err := parseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormat(EditPersonUsage)
	}

	var d EditPersonDescriptor
	if raw, ok := m.Value(PrefixName); ok {
		v, err := parseValue(raw, types.NewName)
		if err != nil {
			return nil, err
		}
		d.Name = types.Some(v)
	}
	if raw, ok := m.Value(PrefixPhone); ok {
		v, err := parseValue(raw, types.NewPhone)
		if err != nil {
			return nil, err
		}
		d.Phone = types.Some(v)
	}
	if raw, ok := m.Value(PrefixEmail); ok {
		v, err := parseValue(raw, types.NewEmail)
		if err != nil {
			return nil, err
		}
		d.Email = types.Some(v)
	}
	if !d.IsAnyFieldEdited() {
		return nil, &ParseError{Message: MessageNotEdited}
	}
	return EditPersonCommand{Index: index, Descriptor: d}, nil
}

func (c EditPersonCommand) Execute(m model.Model) (Result, error) {
	shown := m.FilteredPersons()
	if c.Index < 0 || c.Index >= len(shown) {
		return Result{}, &Error{Message: MessageInvalidPersonIndex}
	}
	target := shown[c.Index]
	edited, err := c.Descriptor.apply(target)
	if err != nil {
		return Result{}, err
	}
	if err := m.SetPerson(target, edited); err != nil {
		if errors.Is(err, book.ErrDuplicate) {
			return Result{}, &Error{Message: MessageDuplicatePerson, Err: err}
		}
		return Result{}, err
	}
	m.UpdateFilteredPersons(nil)
	return Result{Feedback: fmt.Sprintf(MessageEditPersonSuccess, edited), View: ViewPersons}, nil
}

// DeletePersonCommand deletes the buyer at Index in the displayed list.
type DeletePersonCommand struct {
	Index int
}

func parseDeletePerson(args string) (Command, error) {
	index, err := parseIndex(args)
	if err != nil {
		return nil, invalidFormat(DeletePersonUsage)
	}
	return DeletePersonCommand{Index: index}, nil
}

func (c DeletePersonCommand) Execute(m model.Model) (Result, error) {
	shown := m.FilteredPersons()
	if c.Index < 0 || c.Index >= len(shown) {
		return Result{}, &Error{Message: MessageInvalidPersonIndex}
	}
	target := shown[c.Index]
	if err := m.DeletePerson(target); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageDeletePersonSuccess, target), View: ViewPersons}, nil
}

// FindPersonCommand filters the displayed buyers by name keywords.
type FindPersonCommand struct {
	Predicate types.NameContainsKeywords
}

func parseFindPerson(args string) (Command, error) {
	keywords, err := parseKeywords(args, FindPersonUsage)
	if err != nil {
		return nil, err
	}
	return FindPersonCommand{Predicate: types.NameContainsKeywords{Keywords: keywords}}, nil
}

func (c FindPersonCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredPersons(c.Predicate.Test)
	return Result{
		Feedback: fmt.Sprintf(MessagePersonsListed, len(m.FilteredPersons())),
		View:     ViewPersons,
	}, nil
}

// ListPersonsCommand shows every buyer.
type ListPersonsCommand struct{}

func (ListPersonsCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredPersons(nil)
	return Result{Feedback: MessageListPersonsSuccess, View: ViewPersons}, nil
}
