// Package cmakefile classifies CMake file names and extracts package
// metadata from file contents. The discovery scanner consumes these as
// opaque predicates; none of them touch the filesystem.
package cmakefile

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// Generated config packages come in two spellings: exported targets
	// use <Name>Config.cmake, lowercase projects use <name>-config.cmake.
	configRe        = regexp.MustCompile(`(Config|-config)\.cmake$`)
	configVersionRe = regexp.MustCompile(`(ConfigVersion|-config-version)\.cmake$`)

	// A config-version file declares its version with
	// set(PACKAGE_VERSION "1.2.3"); quoting is optional in CMake.
	packageVersionRe = regexp.MustCompile(`set\s*\(\s*PACKAGE_VERSION\s+"?([^"\s)]+)"?`)
)

// IsModuleFile reports whether name is a CMake module file.
func IsModuleFile(name string) bool {
	return strings.HasSuffix(name, ".cmake")
}

// IsConfigFile reports whether name is a package config file
// (<Name>Config.cmake or <name>-config.cmake). Finding one marks its
// directory as a package.
func IsConfigFile(name string) bool {
	return configRe.MatchString(name)
}

// IsConfigVersionFile reports whether name is a package version file
// (<Name>ConfigVersion.cmake or <name>-config-version.cmake).
func IsConfigVersionFile(name string) bool {
	return configVersionRe.MatchString(name)
}

// ExtractVersion returns the version declared by the first
// set(PACKAGE_VERSION ...) in content. ok is false when content declares
// nothing parseable; callers leave the package version absent in that
// case.
func ExtractVersion(content string) (string, bool) {
	m := packageVersionRe.FindStringSubmatch(content)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// FileURI converts path to an absolute file:// URI. A failure here is
// recoverable: the scanner drops the affected entry and keeps going.
func FileURI(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}
