package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	exitInvalid = 1
	exitFault   = 2
)

// exitError carries a process exit code out of a command without printing anything.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd(cfg cliConfig) *cobra.Command {
	root := &cobra.Command{
		Use:           "validflow",
		Short:         "Validate user payloads with composable validators",
		Long:          `validflow runs the user validation flow over JSON or YAML payloads and reports every problem found.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCheckCmd(cfg), newVersionCmd())
	return root
}
