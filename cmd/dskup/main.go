package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "dskup <config>",
		Short: "dskup — iTerm2 layouts from a config file",
		Long: "dskup reads a layout file (tabs, split panes, startup commands) and opens\n" +
			"a new iTerm2 window laid out to match, via AppleScript.",
		Args: cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(cmd.ErrOrStderr(), v.GetString("log-level"), truthy(v.GetString("debug")))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd, v, args[0])
		},
	}

	flags := cmd.PersistentFlags()
	flags.Bool("debug", false, "print the generated AppleScript before running it (env DSKUP_DEBUG)")
	flags.String("osascript", "osascript", "AppleScript interpreter to run (env DSKUP_OSASCRIPT)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error (env DSKUP_LOG_LEVEL)")
	bindOption(v, flags.Lookup("debug"), "DSKUP_DEBUG")
	bindOption(v, flags.Lookup("osascript"), "DSKUP_OSASCRIPT")
	bindOption(v, flags.Lookup("log-level"), "DSKUP_LOG_LEVEL")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCompileCmd(v))
	cmd.AddCommand(newValidateCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dskup %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
