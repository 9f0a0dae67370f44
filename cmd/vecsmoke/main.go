/*
Command vecsmoke runs smoke-test scenarios against package vector.

Usage:

    vecsmoke builtin                 # run the built-in scenarios
    vecsmoke run a.yaml b.yaml       # run scenarios from files
    vecsmoke list                    # list the built-in scenarios

Flag --trace sets the trace level (Error, Info or Debug) for packages vector and script.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/dynarray/script"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

var traceLevel string

func main() {
	if err := rootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "vecsmoke",
		Short:        "smoke tests for dynamic arrays",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupTracing(traceLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "Error", "trace level (Error, Info, Debug)")

	builtinCmd := &cobra.Command{
		Use:   "builtin",
		Short: "run the built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := script.Builtin()
			if err != nil {
				return err
			}
			return runAll(out, scenarios)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [file.yaml]...",
		Short: "run scenarios from YAML files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var scenarios []*script.Scenario
			for _, path := range args {
				sc, err := script.Load(path)
				if err != nil {
					return err
				}
				scenarios = append(scenarios, sc...)
			}
			return runAll(out, scenarios)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list the built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := script.Builtin()
			if err != nil {
				return err
			}
			for _, sc := range scenarios {
				fmt.Fprintf(out, "%-30s %3d steps\n", sc.Name, len(sc.Steps))
			}
			return nil
		},
	}

	rootCmd.AddCommand(builtinCmd, runCmd, listCmd)
	return rootCmd
}

// runAll runs every scenario, printing its snapshots. It does not stop at failing
// scenarios, but reports an error if any of them failed.
func runAll(out io.Writer, scenarios []*script.Scenario) error {
	failed := 0
	for _, sc := range scenarios {
		fmt.Fprintf(out, "--- %s ---\n", sc.Name)
		report, err := script.Run(sc)
		if report != nil {
			for _, snap := range report.Snapshots {
				fmt.Fprintln(out, snap)
			}
		}
		if err != nil {
			fmt.Fprintf(out, "FAIL: %v\n", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(scenarios))
	}
	fmt.Fprintf(out, "all %d scenarios passed\n", len(scenarios))
	return nil
}

// setupTracing routes tracing of our packages to the Go standard logger.
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":            "go",
		"tracelevel.root":            level,
		"tracelevel.dynarray.vector": level,
		"tracelevel.dynarray.script": level,
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
