package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/findpkg/internal/index"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { s.Close() })
	return s
}

func ptr[T any](v T) *T { return &v }

func testPackages() []index.Package {
	return []index.Package{
		{
			Name:     "VulkanHeaders",
			FileType: index.FileTypeDir,
			Location: "file:///usr/share/VulkanHeaders/cmake",
			Version:  ptr("1.3.295"),
			NavigationTargets: []string{
				"/usr/share/VulkanHeaders/cmake/VulkanHeadersConfig.cmake",
				"/usr/share/VulkanHeaders/cmake/VulkanHeadersConfigVersion.cmake",
			},
			Provenance: index.ProvenanceSystem,
		},
		{
			Name:              "FindFoo",
			FileType:          index.FileTypeFile,
			Location:          "file:///usr/lib/cmake/FindFoo.cmake",
			NavigationTargets: []string{"/usr/lib/cmake/FindFoo.cmake"},
			Provenance:        index.ProvenanceSystem,
		},
	}
}

func TestMigrate_TablesExist(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	for _, table := range []string{"packages", "navigation_targets"} {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.Migrate())
}

func TestNewStore_InvalidPath(t *testing.T) {
	t.Parallel()
	_, err := NewStore("/nonexistent/dir/db.sqlite")
	require.Error(t, err)
}

func TestSaveIndex_RoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	want := testPackages()
	require.NoError(t, s.SaveIndex(want))

	got, err := s.ListPackages()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveIndex_ReplacesPreviousSnapshot(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.SaveIndex(testPackages()))

	replacement := []index.Package{{
		Name:              "ECM",
		FileType:          index.FileTypeDir,
		Location:          "file:///usr/share/ECM/cmake",
		Version:           ptr("6.5.0"),
		NavigationTargets: []string{"/usr/share/ECM/cmake/ECMConfig.cmake"},
		Provenance:        index.ProvenanceSystem,
	}}
	require.NoError(t, s.SaveIndex(replacement))

	got, err := s.ListPackages()
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	var orphans int
	require.NoError(t, s.db.QueryRow(
		`SELECT COUNT(*) FROM navigation_targets
		 WHERE package_id NOT IN (SELECT id FROM packages)`,
	).Scan(&orphans))
	assert.Zero(t, orphans)
}

func TestSaveIndex_EmptyIndex(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.SaveIndex(nil))

	got, err := s.ListPackages()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPackageByName(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.SaveIndex(testPackages()))

	pkg, err := s.PackageByName("VulkanHeaders")
	require.NoError(t, err)
	require.NotNil(t, pkg)
	assert.Equal(t, testPackages()[0], *pkg)
}

func TestPackageByName_Missing(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.SaveIndex(testPackages()))

	pkg, err := s.PackageByName("Missing")
	require.NoError(t, err)
	assert.Nil(t, pkg)
}

func TestListPackages_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	var want []index.Package
	for _, name := range []string{"Zlib", "Boost", "Abseil"} {
		want = append(want, index.Package{
			Name:              name,
			FileType:          index.FileTypeDir,
			Location:          "file:///usr/share/" + name + "/cmake",
			NavigationTargets: []string{"/usr/share/" + name + "/cmake/" + name + "Config.cmake"},
			Provenance:        index.ProvenanceSystem,
		})
	}
	require.NoError(t, s.SaveIndex(want))

	got, err := s.ListPackages()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
