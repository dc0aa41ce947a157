package main

import "github.com/jward/findpkg"

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLIPackage is a JSON-friendly package representation.
type CLIPackage struct {
	Name              string   `json:"name"`
	FileType          string   `json:"filetype"`
	Location          string   `json:"location"`
	Version           *string  `json:"version,omitempty"`
	NavigationTargets []string `json:"navigation_targets"`
	Provenance        string   `json:"provenance"`
}

func toCLIPackage(pkg findpkg.Package) CLIPackage {
	return CLIPackage{
		Name:              pkg.Name,
		FileType:          string(pkg.FileType),
		Location:          pkg.Location,
		Version:           pkg.Version,
		NavigationTargets: pkg.NavigationTargets,
		Provenance:        string(pkg.Provenance),
	}
}

func toCLIPackages(pkgs []findpkg.Package) []CLIPackage {
	out := make([]CLIPackage, len(pkgs))
	for i, pkg := range pkgs {
		out[i] = toCLIPackage(pkg)
	}
	return out
}
