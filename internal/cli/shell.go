package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/estatebook/internal/logic"
)

const prompt = "> "

// runShell reads commands from stdin until exit or end of input.
func runShell(cmd *cobra.Command, flags *rootFlags) (err error) {
	a, err := startApp(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := a.stop(); stopErr != nil && err == nil {
			err = sysError(stopErr)
		}
	}()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "estatebook "+Version+". Type help for the list of commands.")
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		res, execErr := a.logic.Execute(line)
		switch {
		case execErr == nil:
			render(out, a.model, res)
		case errors.Is(execErr, logic.ErrSave):
			// The command ran; only persisting failed.
			render(out, a.model, res)
			fmt.Fprintln(out, execErr)
		default:
			fmt.Fprintln(out, execErr)
		}
		if res.Exit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return sysError(fmt.Errorf("reading input: %w", err))
	}
	return nil
}
