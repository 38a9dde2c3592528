package command

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/estatebook/pkg/types"
)

// parseIndex parses a one-based index and returns it zero-based.
func parseIndex(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err != nil || n <= 0 || strings.HasPrefix(trimmed, "+") {
		return 0, &ParseError{Message: MessageInvalidIndex, Err: err}
	}
	return n - 1, nil
}

// parseValue runs a value-object constructor and turns a validation failure
// into a ParseError carrying the constraint message.
func parseValue[T any](raw string, construct func(string) (T, error)) (T, error) {
	v, err := construct(raw)
	if err != nil {
		var ve *types.ValidationError
		if errors.As(err, &ve) {
			return v, &ParseError{Message: ve.Message, Err: err}
		}
		return v, &ParseError{Message: err.Error(), Err: err}
	}
	return v, nil
}

// parseOptional parses raw unless it is empty, in which case the result is
// empty. Used by edit commands to clear optional fields.
func parseOptional[T any](raw string, construct func(string) (T, error)) (types.Optional[T], error) {
	if strings.TrimSpace(raw) == "" {
		return types.None[T](), nil
	}
	v, err := parseValue(raw, construct)
	if err != nil {
		return types.None[T](), err
	}
	return types.Some(v), nil
}

// parseRequired parses raw and wraps the value for a descriptor field.
func parseRequired[T any](raw string, construct func(string) (T, error)) (types.Optional[T], error) {
	v, err := parseValue(raw, construct)
	if err != nil {
		return types.None[T](), err
	}
	return types.Some(v), nil
}

// parseKeywords splits a find preamble into whitespace-separated keywords.
func parseKeywords(args, usage string) ([]string, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(usage)
	}
	return keywords, nil
}
