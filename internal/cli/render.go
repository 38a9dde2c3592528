package cli

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/estatebook/internal/command"
	"github.com/mesh-intelligence/estatebook/internal/model"
)

// render prints the feedback for res followed by the list it names.
func render(w io.Writer, m model.Model, res command.Result) {
	fmt.Fprintln(w, res.Feedback)
	if res.ShowHelp {
		fmt.Fprintln(w)
		fmt.Fprintln(w, command.HelpText())
		return
	}
	switch res.View {
	case command.ViewPersons:
		for i, p := range m.FilteredPersons() {
			fmt.Fprintf(w, "%d. %s\n", i+1, p)
		}
	case command.ViewProperties:
		for i, p := range m.FilteredProperties() {
			fmt.Fprintf(w, "%d. %s\n", i+1, p)
		}
	}
}
