package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/estatebook/internal/logic"
)

func newExecCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command line>",
		Short: "Run one command and exit",
		Long: "exec joins its arguments into a single command line, runs it against\n" +
			"the stored books and prints the result. For example:\n\n" +
			"  estatebook exec addbuyer n/Jane Doe p/91234567 e/jane@example.com",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			a, err := startApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() {
				if stopErr := a.stop(); stopErr != nil && err == nil {
					err = sysError(stopErr)
				}
			}()

			res, err := a.logic.Execute(strings.Join(args, " "))
			if err != nil {
				if errors.Is(err, logic.ErrSave) {
					render(cmd.OutOrStdout(), a.model, res)
				}
				return classify(err)
			}
			render(cmd.OutOrStdout(), a.model, res)
			return nil
		},
	}
}
