package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jward/findpkg"
	"github.com/jward/findpkg/internal/store"
)

var (
	flagPrefix  string
	flagFormat  string
	flagVerbose bool
)

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "findpkg",
	Short:         "Index the CMake packages installed under a prefix",
	Long:          "findpkg scans an installation prefix for CMake config packages and module packages, the way a find_package() call would resolve them, and prints or exports the resulting index.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPrefix, "prefix", "", "installation prefix to scan (default: $MSYSTEM_PREFIX, then $CMAKE_PREFIX_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "json", "output format: json|text")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log skipped files and directories to stderr")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(exportCmd)
}

// newScanner builds a Scanner from the persistent flags.
func newScanner() *findpkg.Scanner {
	var opts []findpkg.Option
	if flagPrefix != "" {
		opts = append(opts, findpkg.WithPrefix(flagPrefix))
	}
	if flagVerbose {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "findpkg",
			Level:  log.DebugLevel,
		})
		opts = append(opts, findpkg.WithLogger(logger))
	}
	return findpkg.NewScanner(opts...)
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the prefix and print every discovered package",
	Args:  cobra.NoArgs,
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	start := time.Now()
	idx := newScanner().Scan()
	pkgs := idx.Packages()

	if err := outputResult(CLIResult{Command: "scan", Results: toCLIPackages(pkgs)}); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Found %d package(s) in %s\n",
		len(pkgs), time.Since(start).Round(time.Millisecond))
	return nil
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Scan the prefix and print one package by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	name := args[0]
	pkg, ok := newScanner().Scan().Lookup(name)
	if !ok {
		return outputError("lookup", fmt.Errorf("package %q not found", name))
	}
	return outputResult(CLIResult{Command: "lookup", Results: toCLIPackage(pkg)})
}

var flagDB string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Scan the prefix and write the index to a SQLite database",
	Long:  "Runs a fresh scan and replaces the snapshot stored in the database, so other tooling can read the index without rescanning the prefix.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagDB, "db", "", "database path (required)")
	exportCmd.MarkFlagRequired("db")
}

func runExport(cmd *cobra.Command, args []string) error {
	idx := newScanner().Scan()

	s, err := store.NewStore(flagDB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer s.Close()

	if err := s.Migrate(); err != nil {
		return fmt.Errorf("preparing database: %w", err)
	}
	pkgs := idx.Packages()
	if err := s.SaveIndex(pkgs); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Exported %d package(s) to %s\n", len(pkgs), flagDB)
	return nil
}
