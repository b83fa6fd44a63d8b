// Copyright 2024 Aerospike, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aerospike/dataproc/cmd/internal/app"
	"github.com/aerospike/dataproc/cmd/internal/config"
	"github.com/aerospike/dataproc/cmd/internal/flags"
	"github.com/aerospike/dataproc/cmd/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	VersionDev     = "dev"
	welcomeMessage = "Welcome to the dataproc CLI tool!"
)

// Cmd holds the flags and the logger shared by the root command and its subcommands.
type Cmd struct {
	// Version params.
	appVersion string
	commitHash string

	// Root flags.
	flagsApp *flags.App

	// Subcommand flags.
	flagsRun     *flags.Run
	flagsProcess *flags.Process

	Logger *slog.Logger
}

func NewCmd(appVersion, commitHash string) (*cobra.Command, *Cmd) {
	c := &Cmd{
		appVersion: appVersion,
		commitHash: commitHash,

		flagsApp:     flags.NewApp(),
		flagsRun:     flags.NewRun(),
		flagsProcess: flags.NewProcess(),
		// First init default logger.
		Logger: logging.NewDefaultLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "dataproc",
		Short: "dataproc CLI tool",
		Long:  welcomeMessage,
		RunE:  c.run,
	}

	// Disable sorting
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.SilenceUsage = true
	// Errors are reported through the logger by main.
	rootCmd.SilenceErrors = true

	appFlagSet := c.flagsApp.NewFlagSet()
	runFlagSet := c.flagsRun.NewFlagSet()
	processFlagSet := c.flagsProcess.NewFlagSet()

	rootCmd.PersistentFlags().AddFlagSet(appFlagSet)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Create a processor for a path and run it",
		Args:  cobra.NoArgs,
		RunE:  c.runProcessor,
	}
	runCmd.Flags().AddFlagSet(runFlagSet)

	processCmd := &cobra.Command{
		Use:   "process",
		Short: "Report {\"status\":\"ok\"} for each existing input and null otherwise",
		Args:  cobra.NoArgs,
		RunE:  c.processData,
	}
	processCmd.Flags().AddFlagSet(processFlagSet)

	rootCmd.AddCommand(runCmd, processCmd)

	// Beautify help for the root command only, subcommands keep cobra defaults.
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != rootCmd {
			defaultHelp(cmd, args)

			return
		}

		printHelp(cmd, appFlagSet, runFlagSet, processFlagSet)
	})

	return rootCmd, c
}

func (c *Cmd) run(cmd *cobra.Command, _ []string) error {
	// Show version.
	if c.flagsApp.Version {
		c.printVersion(cmd)

		return nil
	}

	if err := cmd.Help(); err != nil {
		return fmt.Errorf("failed to load help: %w", err)
	}

	return nil
}

func (c *Cmd) runProcessor(cmd *cobra.Command, _ []string) error {
	serviceConfig, dp, err := c.newService(cmd)
	if err != nil {
		return err
	}

	if err = dp.Run(cmd.Context(), serviceConfig.Run); err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	return nil
}

func (c *Cmd) processData(cmd *cobra.Command, _ []string) error {
	serviceConfig, dp, err := c.newService(cmd)
	if err != nil {
		return err
	}

	if err = dp.Process(cmd.Context(), serviceConfig.Process); err != nil {
		return fmt.Errorf("process failed: %w", err)
	}

	return nil
}

func (c *Cmd) newService(cmd *cobra.Command) (*config.ServiceConfig, *app.DataProc, error) {
	serviceConfig, err := config.NewServiceConfig(
		c.flagsApp.GetApp(),
		c.flagsRun.GetRun(),
		c.flagsProcess.GetProcess(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	// Init logger.
	logger, err := logging.NewLogger(
		cmd.ErrOrStderr(),
		serviceConfig.App.LogLevel,
		serviceConfig.App.Verbose,
		serviceConfig.App.LogJSON,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	// After initialization replace logger.
	c.Logger = logger

	return serviceConfig, app.NewDataProc(cmd.OutOrStdout(), logger), nil
}

func (c *Cmd) printVersion(cmd *cobra.Command) {
	version := c.appVersion
	if c.appVersion == VersionDev {
		version += " (" + c.commitHash + ")"
	}

	fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", version)
}

func printHelp(cmd *cobra.Command, appFlagSet, runFlagSet, processFlagSet *pflag.FlagSet) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, welcomeMessage)
	fmt.Fprintln(out, strings.Repeat("-", len(welcomeMessage)))

	fmt.Fprintln(out, "\nUsage:")
	fmt.Fprintln(out, "  dataproc [command] [flags]")

	fmt.Fprintln(out, "\nCommands:")
	fmt.Fprintln(out, "  run        Create a processor for a path and run it")
	fmt.Fprintln(out, "  process    Check input paths and print a result per input")

	// Print section: App Flags
	fmt.Fprintln(out, "\nGeneral Flags:")
	fmt.Fprint(out, appFlagSet.FlagUsages())

	// Print section: Run Flags
	fmt.Fprintln(out, "\nRun Flags:")
	fmt.Fprint(out, runFlagSet.FlagUsages())

	// Print section: Process Flags
	fmt.Fprintln(out, "\nProcess Flags:")
	fmt.Fprint(out, processFlagSet.FlagUsages())
}
