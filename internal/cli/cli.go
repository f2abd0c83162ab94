// Package cli holds what both preparation tools share around cobra:
// exit codes, usage error reporting and environment backed flags.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// EnvPrefix is prepended to flag names to find their environment variable,
// e.g. --bwa-map-extra is read from WES_BWA_MAP_EXTRA.
const EnvPrefix = "WES"

// LoadDotenv loads .env style files into the process environment.
// Missing files are ignored and variables already set are kept.
func LoadDotenv(filenames ...string) {
	_ = godotenv.Load(filenames...)
}

// NewEnv binds the named flags to viper so that a flag given on the command
// line wins over WES_<NAME>, which wins over the flag default.
func NewEnv(flags *pflag.FlagSet, names ...string) (*viper.Viper, error) {
	var v = viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, name := range names {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return v, nil
}

// Execute runs cmd with args and maps the outcome to an exit code.
// Errors raised before the command starts running (unknown flags, wrong
// positional count, conflicting flags) are usage errors: they are printed
// with the usage text and give ExitUsage. Errors returned by the run itself
// are expected to be logged by the command and give ExitFailure.
func Execute(cmd *cobra.Command, args []string, stderr io.Writer) int {
	var (
		started bool
		run     = cmd.RunE
	)
	if run != nil {
		cmd.RunE = func(c *cobra.Command, a []string) error {
			started = true
			return run(c, a)
		}
	}
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetErr(stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		if !started {
			fmt.Fprintf(stderr, "Error: %v\n%s", err, cmd.UsageString())
			return ExitUsage
		}
		return ExitFailure
	}
	return ExitSuccess
}
