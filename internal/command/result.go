package command

import "github.com/mesh-intelligence/estatebook/internal/model"

// View names the list the shell should render after a command.
type View int

const (
	ViewNone View = iota
	ViewPersons
	ViewProperties
)

// Result is the outcome of a successfully executed command.
type Result struct {
	Feedback string
	View     View
	ShowHelp bool
	Exit     bool
}

// Command is an executable user command.
type Command interface {
	Execute(m model.Model) (Result, error)
}
