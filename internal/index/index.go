// Package index defines the package-record data model and the immutable
// discovery index built from a prefix scan.
package index

// FileType says how a package is laid out on disk.
type FileType string

const (
	// FileTypeDir is a package represented by a directory holding one or
	// more relevant .cmake files.
	FileTypeDir FileType = "dir"
	// FileTypeFile is a package represented by a single standalone module
	// file.
	FileTypeFile FileType = "file"
)

// Provenance tags where a record was discovered. Scanning a system prefix
// is the only provenance this module produces; editors layer their own
// sources (workspace, registry) on top.
type Provenance string

// ProvenanceSystem marks records found under the installation prefix.
const ProvenanceSystem Provenance = "system"

// Package is a single discovered CMake package.
type Package struct {
	// Name is the lookup key a find_package() call would use.
	Name string
	// FileType distinguishes directory-style from single-file packages.
	FileType FileType
	// Location is an absolute file:// URI: the package directory for
	// dir-type records, the module file itself for file-type records.
	Location string
	// Version is the declared package version, nil when no config-version
	// file parsed successfully. Never points at an empty string.
	Version *string
	// NavigationTargets are absolute file paths relevant to the package
	// (config and module files), in discovery order. Tooling jumps here
	// for go-to-definition.
	NavigationTargets []string
	// Provenance records which scan produced this entry.
	Provenance Provenance
}

// Index is an immutable view over discovered packages: an
// insertion-ordered sequence plus a name-keyed lookup. Construct one
// through a Builder; it is never mutated afterward and is safe for
// concurrent readers.
type Index struct {
	records []Package
	byName  map[string]int
}

// Packages returns all records in insertion order. The slice is a copy,
// so callers cannot disturb the index.
func (ix *Index) Packages() []Package {
	out := make([]Package, len(ix.records))
	copy(out, ix.records)
	return out
}

// Lookup returns the record for name, if any.
func (ix *Index) Lookup(name string) (Package, bool) {
	i, ok := ix.byName[name]
	if !ok {
		return Package{}, false
	}
	return ix.records[i], true
}

// Len returns the number of records.
func (ix *Index) Len() int {
	return len(ix.records)
}

// Builder accumulates packages with first-insert-wins semantics: once a
// name is taken, later candidates with the same name are ignored. Scan
// phases rely on this for precedence, so they must run in priority order.
type Builder struct {
	idx *Index
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{idx: &Index{byName: make(map[string]int)}}
}

// Add inserts pkg unless a record with the same name already exists.
// Reports whether the record was inserted.
func (b *Builder) Add(pkg Package) bool {
	if _, taken := b.idx.byName[pkg.Name]; taken {
		return false
	}
	b.idx.byName[pkg.Name] = len(b.idx.records)
	b.idx.records = append(b.idx.records, pkg)
	return true
}

// Build hands over the accumulated Index. The Builder must not be used
// after Build.
func (b *Builder) Build() *Index {
	idx := b.idx
	b.idx = nil
	return idx
}
