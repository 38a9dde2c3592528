package command

import "github.com/mesh-intelligence/estatebook/internal/model"

// General command words.
const (
	ClearWord = "clear"
	HelpWord  = "help"
	ExitWord  = "exit"
)

// General command feedback.
const (
	MessageClearSuccess = "Property book and buyer book have been cleared!"
	MessageShowHelp     = "Opened help window."
	MessageExit         = "Exiting estatebook as requested ..."
)

// ClearCommand empties both books.
type ClearCommand struct{}

func (ClearCommand) Execute(m model.Model) (Result, error) {
	m.ResetData()
	return Result{Feedback: MessageClearSuccess, View: ViewProperties}, nil
}

// HelpCommand asks the shell to print the command summary.
type HelpCommand struct{}

func (HelpCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: MessageShowHelp, ShowHelp: true}, nil
}

// ExitCommand asks the shell to stop.
type ExitCommand struct{}

func (ExitCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: MessageExit, Exit: true}, nil
}
