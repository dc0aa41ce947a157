package findpkg

import "github.com/jward/findpkg/internal/index"

// Public type aliases for the internal index types used in the Scanner
// API. These are Go type aliases (=) — identical to the internal types at
// compile time. External consumers use these names; no conversion is
// needed.

type Index = index.Index
type Package = index.Package
type FileType = index.FileType
type Provenance = index.Provenance

const (
	FileTypeDir      = index.FileTypeDir
	FileTypeFile     = index.FileTypeFile
	ProvenanceSystem = index.ProvenanceSystem
)
