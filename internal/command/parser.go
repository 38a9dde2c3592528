package command

import (
	"strings"
	"unicode"
)

// usages lists every command's usage in the order the help text shows them.
var usages = []string{
	AddPersonUsage,
	EditPersonUsage,
	DeletePersonUsage,
	FindPersonUsage,
	ListPersonsUsage,
	AddPropertyUsage,
	EditPropertyUsage,
	DeletePropertyUsage,
	FindPropertyUsage,
	ListPropertiesUsage,
	ClearWord + ": Deletes every buyer and property.",
	HelpWord + ": Shows this help.",
	ExitWord + ": Exits the program.",
}

// HelpText returns the usage of every command.
func HelpText() string {
	return strings.Join(usages, "\n\n")
}

// Parse turns a line of user input into a Command. The first
// whitespace-separated word selects the command; the rest are its arguments.
func Parse(line string) (Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, invalidFormat(HelpWord + ": Shows this help.")
	}
	word, args := trimmed, ""
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		word, args = trimmed[:i], strings.TrimSpace(trimmed[i:])
	}

	switch word {
	case AddPersonWord:
		return parseAddPerson(args)
	case EditPersonWord:
		return parseEditPerson(args)
	case DeletePersonWord:
		return parseDeletePerson(args)
	case FindPersonWord:
		return parseFindPerson(args)
	case ListPersonsWord:
		return ListPersonsCommand{}, nil
	case AddPropertyWord:
		return parseAddProperty(args)
	case EditPropertyWord:
		return parseEditProperty(args)
	case DeletePropertyWord:
		return parseDeleteProperty(args)
	case FindPropertyWord:
		return parseFindProperty(args)
	case ListPropertiesWord:
		return ListPropertiesCommand{}, nil
	case ClearWord:
		return ClearCommand{}, nil
	case HelpWord:
		return HelpCommand{}, nil
	case ExitWord:
		return ExitCommand{}, nil
	default:
		return nil, &ParseError{Message: MessageUnknownCommand}
	}
}
