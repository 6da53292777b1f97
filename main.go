package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/launchdarkly/suite-runner/framework"
	"github.com/launchdarkly/suite-runner/selfcheck"

	"github.com/spf13/cobra"
)

const (
	exitUsageError = 2
	commandName    = "suite-runner"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	exitCode := framework.ExitSuccess
	cmd := newRootCommand(stdout, stderr, &exitCode)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Invalid parameters: %s\n", err)
		return exitUsageError
	}
	return exitCode
}

func newRootCommand(stdout, stderr io.Writer, exitCode *int) *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   commandName,
		Short: "Runs the framework's self-check suites",
		Long: `suite-runner runs the built-in test suites that check the assertion functions,
suites and runner of this framework, and reports each test as OK, FAIL or ERROR.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.StringVar(&configFile, "config", "", "YAML file to read parameters from")
	fs.StringArray("run", nil, "regex pattern(s) to select tests to run")
	fs.StringArray("skip", nil, "regex pattern(s) to select tests not to run")
	fs.Bool("stop-on-fail", false, "stop at the first test that fails or has an error")
	fs.Bool("no-color", false, "do not color the output")
	fs.Bool("debug", false, "enable debug logging to standard error")
	fs.Bool("debug-on-failure", false, "write the debug log to standard error only if a test did not pass")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		params, err := readParams(fs, configFile)
		if err != nil {
			return err
		}
		code, err := runSuites(params, stdout, stderr)
		if err != nil {
			return err
		}
		*exitCode = code
		return nil
	}
	return cmd
}

func runSuites(params commandParams, stdout, stderr io.Writer) (int, error) {
	var formatter framework.Formatter = framework.NewColorFormatter()
	if params.NoColor {
		formatter = framework.PlainFormatter{}
	}
	debugLogger := framework.NullLogger()
	var captured *framework.CapturingLogger
	switch {
	case params.Debug:
		debugLogger = log.New(stderr, "", log.LstdFlags)
	case params.DebugOnFailure:
		captured = &framework.CapturingLogger{}
		debugLogger = captured
	}

	runner := framework.NewRunner(
		framework.WithReporter(framework.NewConsoleReporter(stdout, formatter)),
		framework.WithDebugLogger(debugLogger),
		framework.WithStopOnFail(params.StopOnFail),
	)
	for _, p := range params.Run {
		if err := runner.AddFilter(p, false); err != nil {
			return 0, err
		}
	}
	for _, p := range params.Skip {
		if err := runner.AddFilter(p, true); err != nil {
			return 0, err
		}
	}

	framework.DescribeFilters(stdout, *runner.Filters())
	selfcheck.Register(runner)

	results := runner.Execute()
	if !results.OK() {
		if captured != nil {
			dumpDebugOutput(stderr, captured.Output())
		}
		printRerunHint(stdout, params, results)
	}
	return results.ExitCode(), nil
}

func dumpDebugOutput(w io.Writer, output framework.CapturedOutput) {
	if len(output) == 0 {
		return
	}
	fmt.Fprintln(w, "Debug output from this run:")
	output.Dump(w, "  ")
}
