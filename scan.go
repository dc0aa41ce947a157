package findpkg

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/jward/findpkg/internal/cmakefile"
	"github.com/jward/findpkg/internal/index"
)

// Scanner discovers CMake packages under a single installation prefix.
//
// A scan runs two phases in a fixed order: config trees under
// share/*/cmake first, then the immediate children of each library root.
// Records merge first-insert-wins, so the phase order is the precedence
// contract: a config-style package always beats a library-root package
// with the same name. Within the library-root phase, directory
// enumeration order is OS-dependent, so precedence between same-named
// entries of that one phase is unspecified and must not be relied on.
type Scanner struct {
	prefix    string
	hasPrefix bool
	logger    *log.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithPrefix scans the given prefix instead of consulting the
// environment. Tests and tools that manage their own prefix
// configuration use this to build independent indices.
func WithPrefix(prefix string) Option {
	return func(s *Scanner) {
		s.prefix = prefix
		s.hasPrefix = true
	}
}

// WithLogger enables debug diagnostics during the scan. The index itself
// carries no error channel; skipped files and directories are only
// visible through the logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// NewScanner returns a Scanner configured by opts.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Default returns the process-wide index, built from the
// environment-configured prefix on first access and immutable afterward.
// Concurrent readers need no synchronization. A process that wants a
// fresh view after installing packages must construct its own Scanner.
var Default = sync.OnceValue(func() *Index {
	return NewScanner().Scan()
})

// Scan builds a fresh index. It never fails: unreadable directories and
// files are skipped, entries whose paths cannot be converted are
// dropped, unparsable versions are left absent, and an unconfigured
// prefix yields an empty index.
func (s *Scanner) Scan() *Index {
	b := index.NewBuilder()

	prefix, ok := s.prefix, s.hasPrefix
	if !ok {
		prefix, ok = resolvePrefix()
	}
	if !ok {
		s.debugf("no prefix configured, index is empty")
		return b.Build()
	}

	s.scanConfigTrees(b, prefix)
	for _, root := range libraryRoots(prefix) {
		s.scanLibraryRoot(b, root)
	}
	return b.Build()
}

// scanConfigTrees discovers config-style packages under
// <prefix>/share/*/cmake. The package name is the directory between
// share/ and /cmake, the location is the tree itself.
func (s *Scanner) scanConfigTrees(b *index.Builder, prefix string) {
	trees, err := filepath.Glob(filepath.Join(prefix, "share", "*", "cmake"))
	if err != nil {
		// Only a prefix containing glob metacharacters gets here.
		s.debugf("config tree glob failed for %s: %v", prefix, err)
		return
	}
	for _, tree := range trees {
		if info, err := os.Stat(tree); err != nil || !info.IsDir() {
			continue
		}
		files, err := filepath.Glob(filepath.Join(tree, "*.cmake"))
		if err != nil {
			continue
		}

		var (
			targets   []string
			version   *string
			isPackage bool
		)
		for _, f := range files {
			abs, err := filepath.Abs(f)
			if err != nil {
				s.debugf("skipping %s: %v", f, err)
				continue
			}
			targets = append(targets, abs)

			name := filepath.Base(f)
			if cmakefile.IsConfigFile(name) {
				isPackage = true
			}
			if cmakefile.IsConfigVersionFile(name) {
				// Last successful parse among version files in the same
				// tree wins.
				if content, err := os.ReadFile(f); err == nil {
					if v, ok := cmakefile.ExtractVersion(string(content)); ok {
						version = &v
					}
				}
			}
		}
		if !isPackage {
			continue
		}

		location, err := cmakefile.FileURI(tree)
		if err != nil {
			s.debugf("dropping %s: %v", tree, err)
			continue
		}
		b.Add(index.Package{
			Name:              filepath.Base(filepath.Dir(tree)),
			FileType:          index.FileTypeDir,
			Location:          location,
			Version:           version,
			NavigationTargets: targets,
			Provenance:        index.ProvenanceSystem,
		})
	}
}

// scanLibraryRoot discovers directory-style and single-file packages
// among the immediate children of root. An unreadable root contributes
// nothing.
func (s *Scanner) scanLibraryRoot(b *index.Builder, root string) {
	entries, err := os.ReadDir(root)
	if err != nil {
		s.debugf("skipping library root %s: %v", root, err)
		return
	}
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())

		location, err := cmakefile.FileURI(path)
		if err != nil {
			s.debugf("dropping %s: %v", path, err)
			continue
		}

		if entry.IsDir() {
			if pkg, ok := s.dirPackage(path, entry.Name(), location); ok {
				b.Add(pkg)
			}
			continue
		}

		name := derivePackageName(entry.Name())
		if name == "" {
			// A leading dot leaves nothing to key the record on.
			s.debugf("dropping %s: empty package name", path)
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			s.debugf("dropping %s: %v", path, err)
			continue
		}
		b.Add(index.Package{
			Name:              name,
			FileType:          index.FileTypeFile,
			Location:          location,
			NavigationTargets: []string{abs},
			Provenance:        index.ProvenanceSystem,
		})
	}
}

// dirPackage builds a dir-type record for a library-root subdirectory
// named after the directory itself. An unreadable directory is skipped
// entirely rather than recorded without targets.
func (s *Scanner) dirPackage(path, name, location string) (index.Package, bool) {
	entries, err := os.ReadDir(path)
	if err != nil {
		s.debugf("skipping %s: %v", path, err)
		return index.Package{}, false
	}

	var (
		targets []string
		version *string
	)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fname := entry.Name()
		if !cmakefile.IsModuleFile(fname) {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(path, fname))
		if err != nil {
			s.debugf("skipping %s: %v", fname, err)
			continue
		}
		targets = append(targets, abs)
		if cmakefile.IsConfigVersionFile(fname) {
			if content, err := os.ReadFile(abs); err == nil {
				if v, ok := cmakefile.ExtractVersion(string(content)); ok {
					version = &v
				}
			}
		}
	}

	return index.Package{
		Name:              name,
		FileType:          index.FileTypeDir,
		Location:          location,
		Version:           version,
		NavigationTargets: targets,
		Provenance:        index.ProvenanceSystem,
	}, true
}

func (s *Scanner) debugf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Debugf(format, args...)
	}
}
