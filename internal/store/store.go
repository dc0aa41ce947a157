// Package store persists a completed discovery snapshot to SQLite so
// downstream tooling can consume the index without rescanning. A scan
// never reads from the store: exporting is a one-shot write of an
// already-built index, not a cache consulted during discovery.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jward/findpkg/internal/index"
)

// Store is the SQLite access layer for exported package snapshots.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database at dbPath with WAL mode enabled.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use in transactions.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Migrate creates the snapshot tables and indexes. Idempotent.
func (s *Store) Migrate() error {
	if _, err := s.db.Exec(schemaDDL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS packages (
  id         INTEGER PRIMARY KEY,
  name       TEXT NOT NULL UNIQUE,
  filetype   TEXT NOT NULL,
  location   TEXT NOT NULL,
  version    TEXT,
  provenance TEXT NOT NULL,
  ordinal    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS navigation_targets (
  id         INTEGER PRIMARY KEY,
  package_id INTEGER NOT NULL REFERENCES packages(id),
  path       TEXT NOT NULL,
  ordinal    INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_packages_name ON packages(name);
CREATE INDEX IF NOT EXISTS idx_packages_ordinal ON packages(ordinal);
CREATE INDEX IF NOT EXISTS idx_navigation_targets_package ON navigation_targets(package_id);
`

// SaveIndex transactionally replaces the stored snapshot with pkgs. The
// ordinal columns preserve insertion order for packages and discovery
// order for navigation targets.
func (s *Store) SaveIndex(pkgs []index.Package) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM navigation_targets"); err != nil {
		return fmt.Errorf("clear navigation targets: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM packages"); err != nil {
		return fmt.Errorf("clear packages: %w", err)
	}

	for i, pkg := range pkgs {
		res, err := tx.Exec(
			`INSERT INTO packages (name, filetype, location, version, provenance, ordinal)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			pkg.Name, string(pkg.FileType), pkg.Location, pkg.Version, string(pkg.Provenance), i,
		)
		if err != nil {
			return fmt.Errorf("insert package %s: %w", pkg.Name, err)
		}
		pkgID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("package id for %s: %w", pkg.Name, err)
		}
		for j, target := range pkg.NavigationTargets {
			if _, err := tx.Exec(
				`INSERT INTO navigation_targets (package_id, path, ordinal) VALUES (?, ?, ?)`,
				pkgID, target, j,
			); err != nil {
				return fmt.Errorf("insert navigation target for %s: %w", pkg.Name, err)
			}
		}
	}

	return tx.Commit()
}

// ListPackages returns the stored snapshot in its original insertion
// order.
func (s *Store) ListPackages() ([]index.Package, error) {
	rows, err := s.db.Query(
		`SELECT id, name, filetype, location, version, provenance
		 FROM packages ORDER BY ordinal`,
	)
	if err != nil {
		return nil, fmt.Errorf("query packages: %w", err)
	}
	defer rows.Close()

	var (
		pkgs []index.Package
		ids  []int64
	)
	for rows.Next() {
		var (
			id      int64
			pkg     index.Package
			version sql.NullString
		)
		if err := rows.Scan(&id, &pkg.Name, &pkg.FileType, &pkg.Location, &version, &pkg.Provenance); err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		if version.Valid {
			pkg.Version = &version.String
		}
		pkgs = append(pkgs, pkg)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate packages: %w", err)
	}

	for i, id := range ids {
		targets, err := s.navigationTargets(id)
		if err != nil {
			return nil, err
		}
		pkgs[i].NavigationTargets = targets
	}
	return pkgs, nil
}

// PackageByName returns the stored record for name, or nil if the
// snapshot has no such package.
func (s *Store) PackageByName(name string) (*index.Package, error) {
	var (
		id      int64
		pkg     index.Package
		version sql.NullString
	)
	err := s.db.QueryRow(
		`SELECT id, name, filetype, location, version, provenance
		 FROM packages WHERE name = ?`, name,
	).Scan(&id, &pkg.Name, &pkg.FileType, &pkg.Location, &version, &pkg.Provenance)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query package %s: %w", name, err)
	}
	if version.Valid {
		pkg.Version = &version.String
	}
	targets, err := s.navigationTargets(id)
	if err != nil {
		return nil, err
	}
	pkg.NavigationTargets = targets
	return &pkg, nil
}

func (s *Store) navigationTargets(pkgID int64) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT path FROM navigation_targets WHERE package_id = ? ORDER BY ordinal`, pkgID,
	)
	if err != nil {
		return nil, fmt.Errorf("query navigation targets: %w", err)
	}
	defer rows.Close()

	var targets []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("scan navigation target: %w", err)
		}
		targets = append(targets, path)
	}
	return targets, rows.Err()
}
