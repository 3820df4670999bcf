// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "power version %s\n", version)
			fmt.Fprintln(out, "Calculate X to the power of Y")
			fmt.Fprintln(out, "https://github.com/arc-language/power")
		},
	}
}
