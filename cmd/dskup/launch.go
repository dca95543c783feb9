package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zulandar/dskup/internal/config"
	"github.com/zulandar/dskup/internal/launch"
	"github.com/zulandar/dskup/internal/osascript"
	"golang.org/x/term"
)

// newRunner builds the interpreter runner for a launch. Tests replace it.
var newRunner = func(binary string) osascript.Runner {
	return osascript.RealRunner{Binary: binary}
}

// bindOption makes flag readable through v, falling back to env when the
// flag is not given on the command line.
func bindOption(v *viper.Viper, flag *pflag.Flag, env string) {
	_ = v.BindPFlag(flag.Name, flag)
	_ = v.BindEnv(flag.Name, env)
}

// truthy reports whether an option value switches a feature on. Any
// non-empty value counts, except ones that parse as a false boolean.
func truthy(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return true
}

func configureLogging(w io.Writer, level string, debug bool) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    !isTerminal(w),
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
		log.Warnf("invalid log level %s, defaulting to warn", level)
	}
	if debug {
		lvl = log.DebugLevel
	}
	log.SetLevel(lvl)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// loadLayout loads the layout at path and logs lint warnings.
func loadLayout(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	warnings, _ := config.Lint(cfg)
	for _, w := range warnings {
		log.Warn(w)
	}
	return cfg, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.WithError(err).Debug("home directory unknown; leaving ~ unexpanded")
		return ""
	}
	return home
}

func runLaunch(cmd *cobra.Command, v *viper.Viper, path string) error {
	cmd.SilenceUsage = true

	cfg, err := loadLayout(path)
	if err != nil {
		return err
	}
	debug := truthy(v.GetString("debug"))
	log.WithFields(log.Fields{"config": path, "debug": debug}).Debug("launching layout")

	_, err = launch.Launch(cmd.Context(), launch.Opts{
		Config: cfg,
		Home:   homeDir(),
		Debug:  debug,
		Out:    cmd.OutOrStdout(),
		Runner: newRunner(v.GetString("osascript")),
	})
	return err
}

func newCompileCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "compile <config>",
		Short: "Print the AppleScript for a layout without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadLayout(args[0])
			if err != nil {
				return err
			}
			res, err := launch.Launch(cmd.Context(), launch.Opts{
				Config: cfg,
				Home:   homeDir(),
				DryRun: true,
				Runner: newRunner(v.GetString("osascript")),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Script)
			return nil
		},
	}
}
