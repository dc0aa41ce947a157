package findpkg

import "strings"

// derivePackageName derives a package name from a standalone module file
// name by truncating at the first dot: "FindFoo.cmake" becomes "FindFoo".
// Extra dotted segments truncate there too ("Foo.Bar.cmake" becomes
// "Foo"), and a leading dot leaves the empty string, which callers must
// drop: an empty key could never be resolved by a find_package() call.
func derivePackageName(filename string) string {
	if i := strings.IndexByte(filename, '.'); i >= 0 {
		return filename[:i]
	}
	return filename
}
