package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "fetch.timeout_seconds = %d\n", cfg.Fetch.TimeoutSeconds)
		fmt.Fprintf(out, "fetch.max_concurrent  = %d\n", cfg.Fetch.MaxConcurrent)
		fmt.Fprintf(out, "fetch.user_agent      = %q\n", cfg.Fetch.UserAgent)
		fmt.Fprintf(out, "fetch.max_page_bytes  = %d\n", cfg.Fetch.MaxPageBytes)
		fmt.Fprintf(out, "fetch.max_icon_bytes  = %d\n", cfg.Fetch.MaxIconBytes)
		fmt.Fprintf(out, "output.size           = %q\n", cfg.Output.Size)
		fmt.Fprintf(out, "output.format         = %q\n", cfg.Output.Format)
		fmt.Fprintf(out, "logging.level         = %q\n", cfg.Logging.Level)
		fmt.Fprintf(out, "logging.format        = %q\n", cfg.Logging.Format)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
