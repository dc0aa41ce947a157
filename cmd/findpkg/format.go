package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// formatPackagesText formats CLIPackage results as aligned columns.
func formatPackagesText(w io.Writer, pkgs []CLIPackage) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tVERSION\tLOCATION")
	for _, p := range pkgs {
		version := "-"
		if p.Version != nil {
			version = *p.Version
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, p.FileType, version, p.Location)
	}
	tw.Flush()
}

// formatPackageText formats a single CLIPackage with its navigation
// targets.
func formatPackageText(w io.Writer, pkg CLIPackage) {
	fmt.Fprintf(w, "Package: %s\n", pkg.Name)
	fmt.Fprintf(w, "Type: %s\n", pkg.FileType)
	if pkg.Version != nil {
		fmt.Fprintf(w, "Version: %s\n", *pkg.Version)
	}
	fmt.Fprintf(w, "Location: %s\n", pkg.Location)
	fmt.Fprintf(w, "Provenance: %s\n", pkg.Provenance)

	if len(pkg.NavigationTargets) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Navigation Targets:")
		for _, target := range pkg.NavigationTargets {
			fmt.Fprintf(w, "  %s\n", target)
		}
	}
}

// outputResultText dispatches to the appropriate text formatter based on
// the result type. It writes to os.Stdout.
func outputResultText(result CLIResult) error {
	w := io.Writer(os.Stdout)

	switch v := result.Results.(type) {
	case []CLIPackage:
		formatPackagesText(w, v)
	case CLIPackage:
		formatPackageText(w, v)
	case nil:
		// No output for nil results.
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}
	return nil
}

// outputResult marshals a CLIResult to stdout in the selected format.
func outputResult(result CLIResult) error {
	if flagFormat == "text" {
		return outputResultText(result)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError writes an error in the selected format and returns it so
// RunE propagates the non-zero exit status.
func outputError(command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: command,
		Error:   err.Error(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
