// Package cli implements the myfinlab command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"myfinlab/internal/common"
	versionpkg "myfinlab/internal/version"
)

// CLI Constants
const (
	CmdVersion  = "version"
	CmdStatus   = "status"
	CmdModules  = "modules"
	CmdConfig   = "config"
	FlagConfig  = "config"
	FlagVerbose = "verbose"
	FlagLibrary = "library"
	FlagJSON    = "json"
	FlagOut     = "out"
)

// CLI Variables
var (
	configPath string
	verbose    bool
	library    string
	formatJSON bool
	outPath    string
)

// Root command
var rootCmd = &cobra.Command{
	Use:   "myfinlab",
	Short: "MyFinLab - unified namespace for optional quant-finance libraries",
	Long: `MyFinLab packages two optional quantitative-finance libraries under one namespace:

  - mlfinlab: financial machine learning (labeling, bet sizing, sampling, ...)
  - arbitragelab: statistical arbitrage and pairs trading (cointegration, copulas, ...)

Either library may be absent. MyFinLab detects what is installed, re-exposes the
submodules of every library that resolved, and reports availability so programs
can branch before touching missing functionality.

AVAILABLE COMMANDS:

  myfinlab status                    # Show library availability
  myfinlab modules                   # List reachable submodules
  myfinlab version                   # Show version information
  myfinlab config generate           # Write a default configuration file

Use 'myfinlab <command> --help' for detailed command information.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Command definitions
var (
	versionCmd = &cobra.Command{
		Use:   CmdVersion,
		Short: "Show version information",
		Long: `Display version information for MyFinLab.

The version belongs to the unifying package itself and is unrelated to the
versions of the wrapped libraries. Use --verbose for build details.`,
		RunE: runVersionCmd,
	}

	statusCmd = &cobra.Command{
		Use:   CmdStatus,
		Short: "Show wrapped library availability",
		Long:  `Display the availability of each wrapped library and the diagnostic recorded for any that failed to resolve.`,
		RunE:  runStatusCmd,
	}

	modulesCmd = &cobra.Command{
		Use:   CmdModules,
		Short: "List reachable submodules",
		Long: `List every submodule reachable through the unified namespace.

Submodules of unavailable libraries are absent from the listing, matching what
a program would observe at lookup time.`,
		RunE: runModulesCmd,
	}

	configCmd = &cobra.Command{
		Use:   CmdConfig,
		Short: "Manage configuration",
		RunE:  runConfigCmd,
	}

	configGenerateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Write a default configuration file",
		Long: `Write the default configuration file, with both libraries enabled and the
standard plugin search paths.

Examples:
  myfinlab config generate
  myfinlab config generate --out ./myfinlab.yaml`,
		RunE: runConfigGenerateCmd,
	}
)

func init() {
	versionCmd.Flags().BoolVarP(&verbose, FlagVerbose, "v", false, "Show detailed version information")

	statusCmd.Flags().StringVarP(&configPath, FlagConfig, "c", "", "Configuration file path (optional, will use defaults if not provided)")

	modulesCmd.Flags().StringVarP(&configPath, FlagConfig, "c", "", "Configuration file path (optional)")
	modulesCmd.Flags().StringVarP(&library, FlagLibrary, "l", "", "Only list submodules of this library")
	modulesCmd.Flags().BoolVar(&formatJSON, FlagJSON, false, "Output in JSON format")

	configGenerateCmd.Flags().StringVar(&outPath, FlagOut, "", "Output path (defaults to the standard config location)")

	configCmd.AddCommand(configGenerateCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(configCmd)
}

func runVersionCmd(cmd *cobra.Command, args []string) error {
	if verbose {
		common.CLILogger.Info("%s", versionpkg.GetFullVersionInfo())
		return nil
	}
	common.CLILogger.Info("myfinlab %s", versionpkg.GetVersion())
	return nil
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	return ShowStatus(configPath)
}

func runModulesCmd(cmd *cobra.Command, args []string) error {
	return ShowModules(configPath, library, formatJSON)
}

func runConfigCmd(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

func runConfigGenerateCmd(cmd *cobra.Command, args []string) error {
	return GenerateConfig(outPath)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
