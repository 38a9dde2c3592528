package command

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/estatebook/internal/book"
	"github.com/mesh-intelligence/estatebook/internal/model"
	"github.com/mesh-intelligence/estatebook/pkg/types"
)

// Property command words and usage.
const (
	AddPropertyWord    = "addprop"
	EditPropertyWord   = "editprop"
	DeletePropertyWord = "deleteprop"
	FindPropertyWord   = "findprop"
	ListPropertiesWord = "listprop"

	AddPropertyUsage = AddPropertyWord + ": Adds a property to the property book. " +
		"Parameters: n/NAME p/PRICE a/ADDRESS d/DESCRIPTION s/SELLER [sp/SELLER_PHONE] [c/CHARACTERISTICS]\n" +
		"Example: " + AddPropertyWord + " n/Peak Residence p/3000000 a/333 Thompson Road " +
		"d/5-storey condo on a hill s/John Doe sp/94351253 c/Bright; Near MRT"
	EditPropertyUsage = EditPropertyWord + ": Edits the property identified by the index number used in the displayed property list. " +
		"Existing values will be overwritten by the input values. An empty c/ or sp/ clears that field.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PRICE] [a/ADDRESS] [d/DESCRIPTION] " +
		"[s/SELLER] [sp/SELLER_PHONE] [c/CHARACTERISTICS]\n" +
		"Example: " + EditPropertyWord + " 1 p/2800000 c/"
	DeletePropertyUsage = DeletePropertyWord + ": Deletes the property identified by the index number used in the displayed property list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeletePropertyWord + " 1"
	FindPropertyUsage = FindPropertyWord + ": Finds all properties whose names contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + FindPropertyWord + " peak residence"
	ListPropertiesUsage = ListPropertiesWord + ": Lists all properties."
)

// Property command feedback.
const (
	MessageAddPropertySuccess    = "New property added: %s"
	MessageEditPropertySuccess   = "Edited property: %s"
	MessageDeletePropertySuccess = "Deleted property: %s"
	MessageListPropertiesSuccess = "Listed all properties"
)

var propertyPrefixes = []Prefix{
	PrefixName, PrefixPrice, PrefixAddress, PrefixDescription,
	PrefixSeller, PrefixSellerPhone, PrefixCharacteristics,
}

// AddPropertyCommand adds a property.
type AddPropertyCommand struct {
	Property types.Property
}

func parseAddProperty(args string) (Command, error) {
	m := Tokenize(args, propertyPrefixes...)
	for _, p := range []Prefix{PrefixName, PrefixPrice, PrefixAddress, PrefixDescription, PrefixSeller} {
		if !m.Has(p) {
			return nil, invalidFormat(AddPropertyUsage)
		}
	}
	if m.Preamble() != "" {
		return nil, invalidFormat(AddPropertyUsage)
	}

	rawName, _ := m.Value(PrefixName)
	name, err := parseValue(rawName, types.NewPropertyName)
	if err != nil {
		return nil, err
	}
	rawPrice, _ := m.Value(PrefixPrice)
	price, err := parseValue(rawPrice, types.NewPrice)
	if err != nil {
		return nil, err
	}
	rawAddress, _ := m.Value(PrefixAddress)
	address, err := parseValue(rawAddress, types.NewAddress)
	if err != nil {
		return nil, err
	}
	rawDescription, _ := m.Value(PrefixDescription)
	description, err := parseValue(rawDescription, types.NewDescription)
	if err != nil {
		return nil, err
	}
	rawSeller, _ := m.Value(PrefixSeller)
	sellerName, err := parseValue(rawSeller, types.NewName)
	if err != nil {
		return nil, err
	}
	rawSellerPhone, _ := m.Value(PrefixSellerPhone)
	sellerPhone, err := parseOptional(rawSellerPhone, types.NewPhone)
	if err != nil {
		return nil, err
	}
	rawCharacteristics, _ := m.Value(PrefixCharacteristics)
	characteristics, err := parseOptional(rawCharacteristics, types.NewCharacteristics)
	if err != nil {
		return nil, err
	}

	owner, err := types.NewOwner(sellerName, sellerPhone)
	if err != nil {
		return nil, &ParseError{Message: err.Error(), Err: err}
	}
	property, err := types.NewProperty(name, price, address, description, owner, characteristics)
	if err != nil {
		return nil, &ParseError{Message: err.Error(), Err: err}
	}
	return AddPropertyCommand{Property: property}, nil
}

func (c AddPropertyCommand) Execute(m model.Model) (Result, error) {
	if err := m.AddProperty(c.Property); err != nil {
		if errors.Is(err, book.ErrDuplicate) {
			return Result{}, &Error{Message: MessageDuplicateProperty, Err: err}
		}
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageAddPropertySuccess, c.Property), View: ViewProperties}, nil
}

// EditPropertyDescriptor holds the fields to change on a property. Empty
// fields keep their current value. The optional fields carry an explicit
// edited flag so that they can be cleared.
type EditPropertyDescriptor struct {
	Name        types.Optional[types.PropertyName]
	Price       types.Optional[types.Price]
	Address     types.Optional[types.Address]
	Description types.Optional[types.Description]
	SellerName  types.Optional[types.Name]

	SellerPhoneEdited bool
	SellerPhone       types.Optional[types.Phone]

	CharacteristicsEdited bool
	Characteristics       types.Optional[types.Characteristics]
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditPropertyDescriptor) IsAnyFieldEdited() bool {
	return d.Name.IsPresent() || d.Price.IsPresent() || d.Address.IsPresent() ||
		d.Description.IsPresent() || d.SellerName.IsPresent() ||
		d.SellerPhoneEdited || d.CharacteristicsEdited
}

// apply returns p with the descriptor's fields applied.
func (d EditPropertyDescriptor) apply(p types.Property) (types.Property, error) {
	phone := p.Owner().Phone()
	if d.SellerPhoneEdited {
		phone = d.SellerPhone
	}
	owner, err := types.NewOwner(d.SellerName.OrElse(p.Owner().Name()), phone)
	if err != nil {
		return types.Property{}, err
	}
	characteristics := p.Characteristics()
	if d.CharacteristicsEdited {
		characteristics = d.Characteristics
	}
	return types.NewProperty(
		d.Name.OrElse(p.Name()),
		d.Price.OrElse(p.Price()),
		d.Address.OrElse(p.Address()),
		d.Description.OrElse(p.Description()),
		owner,
		characteristics,
	)
}

// EditPropertyCommand replaces the property at Index in the displayed list.
type EditPropertyCommand struct {
	Index      int
	Descriptor EditPropertyDescriptor
}

func parseEditProperty(args string) (Command, error) {
	m := Tokenize(args, propertyPrefixes...)
	if m.Preamble() == "" {
		return nil, invalidFormat(EditPropertyUsage)
	}
	index, err := parseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormat(EditPropertyUsage)
	}

	var d EditPropertyDescriptor
	if raw, ok := m.Value(PrefixName); ok {
		if d.Name, err = parseRequired(raw, types.NewPropertyName); err != nil {
			return nil, err
		}
	}
	if raw, ok := m.Value(PrefixPrice); ok {
		if d.Price, err = parseRequired(raw, types.NewPrice); err != nil {
			return nil, err
		}
	}
	if raw, ok := m.Value(PrefixAddress); ok {
		if d.Address, err = parseRequired(raw, types.NewAddress); err != nil {
			return nil, err
		}
	}
	if raw, ok := m.Value(PrefixDescription); ok {
		if d.Description, err = parseRequired(raw, types.NewDescription); err != nil {
			return nil, err
		}
	}
	if raw, ok := m.Value(PrefixSeller); ok {
		if d.SellerName, err = parseRequired(raw, types.NewName); err != nil {
			return nil, err
		}
	}
	if raw, ok := m.Value(PrefixSellerPhone); ok {
		if d.SellerPhone, err = parseOptional(raw, types.NewPhone); err != nil {
			return nil, err
		}
		d.SellerPhoneEdited = true
	}
	if raw, ok := m.Value(PrefixCharacteristics); ok {
		if d.Characteristics, err = parseOptional(raw, types.NewCharacteristics); err != nil {
			return nil, err
		}
		d.CharacteristicsEdited = true
	}
	if !d.IsAnyFieldEdited() {
		return nil, &ParseError{Message: MessageNotEdited}
	}
	return EditPropertyCommand{Index: index, Descriptor: d}, nil
}

func (c EditPropertyCommand) Execute(m model.Model) (Result, error) {
	shown := m.FilteredProperties()
	if c.Index < 0 || c.Index >= len(shown) {
		return Result{}, &Error{Message: MessageInvalidPropertyIndex}
	}
	target := shown[c.Index]
	edited, err := c.Descriptor.apply(target)
	if err != nil {
		return Result{}, err
	}
	if err := m.SetProperty(target, edited); err != nil {
		if errors.Is(err, book.ErrDuplicate) {
			return Result{}, &Error{Message: MessageDuplicateProperty, Err: err}
		}
		return Result{}, err
	}
	m.UpdateFilteredProperties(nil)
	return Result{Feedback: fmt.Sprintf(MessageEditPropertySuccess, edited), View: ViewProperties}, nil
}

// DeletePropertyCommand deletes the property at Index in the displayed list.
type DeletePropertyCommand struct {
	Index int
}

func parseDeleteProperty(args string) (Command, error) {
	index, err := parseIndex(args)
	if err != nil {
		return nil, invalidFormat(DeletePropertyUsage)
	}
	return DeletePropertyCommand{Index: index}, nil
}

func (c DeletePropertyCommand) Execute(m model.Model) (Result, error) {
	shown := m.FilteredProperties()
	if c.Index < 0 || c.Index >= len(shown) {
		return Result{}, &Error{Message: MessageInvalidPropertyIndex}
	}
	target := shown[c.Index]
	if err := m.DeleteProperty(target); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageDeletePropertySuccess, target), View: ViewProperties}, nil
}

// FindPropertyCommand filters the displayed properties by name keywords.
type FindPropertyCommand struct {
	Predicate types.PropertyNameContainsKeywords
}

func parseFindProperty(args string) (Command, error) {
	keywords, err := parseKeywords(args, FindPropertyUsage)
	if err != nil {
		return nil, err
	}
	return FindPropertyCommand{Predicate: types.PropertyNameContainsKeywords{Keywords: keywords}}, nil
}

func (c FindPropertyCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredProperties(c.Predicate.Test)
	return Result{
		Feedback: fmt.Sprintf(MessagePropertiesListed, len(m.FilteredProperties())),
		View:     ViewProperties,
	}, nil
}

// ListPropertiesCommand shows every property.
type ListPropertiesCommand struct{}

func (ListPropertiesCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredProperties(nil)
	return Result{Feedback: MessageListPropertiesSuccess, View: ViewProperties}, nil
}
