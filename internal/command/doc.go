// Package command parses single-line user input into typed commands and
// executes them against a model.Model.
//
// Input has the form "COMMAND_WORD ARGUMENTS". Arguments are introduced by
// prefixes such as "n/" or "p/", each of which must be preceded by
// whitespace. Text before the first prefix is the preamble, used for
// indices and keywords.
package command
