package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/zulandar/dskup/internal/config"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config>",
		Short: "Check a layout file for problems",
		Long:  "Loads a layout and reports split settings that will be ignored or cannot be compiled.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			path := args[0]

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			warnings, errs := config.Lint(cfg)

			out := cmd.OutOrStdout()
			r := lipgloss.NewRenderer(out)
			warnStyle := r.NewStyle().Foreground(lipgloss.Color("3"))
			errStyle := r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
			okStyle := r.NewStyle().Foreground(lipgloss.Color("2"))

			for _, w := range warnings {
				fmt.Fprintf(out, "%s %s\n", warnStyle.Render("warning:"), w)
			}
			for _, e := range errs {
				fmt.Fprintf(out, "%s %s\n", errStyle.Render("error:"), e)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%s: %d error(s)", path, len(errs))
			}
			fmt.Fprintf(out, "%s %s (%d tabs)\n", okStyle.Render("ok:"), path, len(cfg.Tabs))
			return nil
		},
	}
}
