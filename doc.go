// Package findpkg discovers the CMake packages installed under a
// filesystem prefix and builds an immutable in-memory index mapping
// package name to location, declared version, and navigation targets.
// It exists to power editor features such as go-to-definition and
// completion for find_package() calls in CMake-aware tooling.
//
// # Discovery
//
// A scan runs two phases against one prefix, resolved from
// $MSYSTEM_PREFIX (first) or $CMAKE_PREFIX_PATH:
//
//  1. Config trees: every share/<Name>/cmake/ directory holding a
//     <Name>Config.cmake (or <name>-config.cmake) file becomes a
//     directory-style package named <Name>.
//  2. Library roots: the immediate children of each existing
//     {lib,lib32,lib64,share}/cmake directory. A child directory becomes
//     a directory-style package under its own name; a child file becomes
//     a single-file package named by truncating at the first dot
//     (FindFoo.cmake -> FindFoo).
//
// Records merge first-insert-wins, so config-tree packages always win a
// name collision against library-root packages. Declared versions come
// from set(PACKAGE_VERSION ...) in config-version files.
//
// # Usage
//
// Build an index explicitly:
//
//	idx := findpkg.NewScanner().Scan()
//	pkg, ok := idx.Lookup("VulkanHeaders")
//	for _, p := range idx.Packages() { ... }
//
// Or share one process-wide index, built lazily on first access:
//
//	pkg, ok := findpkg.Default().Lookup("ECM")
//
// Scanning is best-effort throughout: unreadable directories are
// skipped, unparsable versions are left absent, and an unconfigured
// prefix yields an empty index. The caller only ever receives a
// (possibly partial, possibly empty) index, never an error.
package findpkg
