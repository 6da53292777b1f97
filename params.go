package main

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/launchdarkly/suite-runner/framework"

	"github.com/alessio/shellescape"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SUITE_RUNNER"

type commandParams struct {
	Run        []string `mapstructure:"run"`
	Skip       []string `mapstructure:"skip"`
	StopOnFail bool     `mapstructure:"stop-on-fail"`
	NoColor    bool     `mapstructure:"no-color"`
	Debug      bool     `mapstructure:"debug"`

	DebugOnFailure bool `mapstructure:"debug-on-failure"`
}

// readParams merges, from highest to lowest precedence, command-line flags, SUITE_RUNNER_*
// environment variables, and the config file if one was given.
func readParams(fs *pflag.FlagSet, configFile string) (commandParams, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var params commandParams
	for _, name := range []string{"run", "skip", "stop-on-fail", "no-color", "debug", "debug-on-failure"} {
		if err := v.BindPFlag(name, fs.Lookup(name)); err != nil {
			return params, err
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return params, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&params); err != nil {
		return params, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return params, nil
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a command line that runs only the tests that failed or had errors.
func rerunCommand(params commandParams, results framework.Results) (string, error) {
	ids := append(append([]framework.TestID(nil), results.Failed...), results.Errored...)
	if len(ids) == 0 {
		return "", errors.New("no failed tests")
	}
	var b commandBuilder
	b.add(commandName)
	for _, id := range ids {
		b.add("--run", "^"+regexp.QuoteMeta(id.String())+"$")
	}
	if params.NoColor {
		b.add("--no-color")
	}
	if params.Debug {
		b.add("--debug")
	} else if params.DebugOnFailure {
		b.add("--debug-on-failure")
	}
	return b.String(), nil
}

func printRerunHint(w io.Writer, params commandParams, results framework.Results) {
	command, err := rerunCommand(params, results)
	if err != nil {
		return
	}
	fmt.Fprintln(w, "To run only the tests that did not pass:")
	fmt.Fprintf(w, "  %s\n", command)
}
