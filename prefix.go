package findpkg

import (
	"os"
	"path/filepath"
)

// Environment variables consulted for the installation prefix, in order.
// MSYS2 shells export MSYSTEM_PREFIX; everything else falls back to
// CMAKE_PREFIX_PATH.
const (
	envMsystemPrefix   = "MSYSTEM_PREFIX"
	envCMakePrefixPath = "CMAKE_PREFIX_PATH"
)

// libDirs is the fixed candidate list of library directories under a
// prefix. The order is part of the scan contract: library roots are
// visited in this order.
var libDirs = [...]string{"lib", "lib32", "lib64", "share"}

// resolvePrefix returns the installation prefix from the environment.
// ok is false when neither variable is set; an unconfigured prefix is
// not an error, it just yields an empty index.
func resolvePrefix() (string, bool) {
	if prefix, ok := os.LookupEnv(envMsystemPrefix); ok {
		return prefix, true
	}
	return os.LookupEnv(envCMakePrefixPath)
}

// libraryRoots returns the existing <prefix>/<lib>/cmake directories in
// candidate order. Missing candidates are simply absent from the result.
func libraryRoots(prefix string) []string {
	var roots []string
	for _, lib := range libDirs {
		p := filepath.Join(prefix, lib, "cmake")
		if _, err := os.Stat(p); err == nil {
			roots = append(roots, p)
		}
	}
	return roots
}
