package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/findpkg"
)

func ptr[T any](v T) *T { return &v }

func TestValidateFormat(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateFormat("json"))
	assert.NoError(t, validateFormat("text"))
	assert.Error(t, validateFormat("yaml"))
	assert.Error(t, validateFormat(""))
}

func TestToCLIPackages(t *testing.T) {
	t.Parallel()
	pkgs := []findpkg.Package{{
		Name:              "ECM",
		FileType:          findpkg.FileTypeDir,
		Location:          "file:///usr/share/ECM/cmake",
		Version:           ptr("6.5.0"),
		NavigationTargets: []string{"/usr/share/ECM/cmake/ECMConfig.cmake"},
		Provenance:        findpkg.ProvenanceSystem,
	}}

	got := toCLIPackages(pkgs)
	require.Len(t, got, 1)
	assert.Equal(t, "ECM", got[0].Name)
	assert.Equal(t, "dir", got[0].FileType)
	assert.Equal(t, "file:///usr/share/ECM/cmake", got[0].Location)
	require.NotNil(t, got[0].Version)
	assert.Equal(t, "6.5.0", *got[0].Version)
	assert.Equal(t, "system", got[0].Provenance)
}

func TestFormatPackagesText(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	formatPackagesText(&sb, []CLIPackage{
		{Name: "ECM", FileType: "dir", Version: ptr("6.5.0"), Location: "file:///usr/share/ECM/cmake"},
		{Name: "FindFoo", FileType: "file", Location: "file:///usr/lib/cmake/FindFoo.cmake"},
	})

	out := sb.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "ECM")
	assert.Contains(t, out, "6.5.0")
	// Missing versions render as a dash.
	assert.Contains(t, out, "-")
	assert.Contains(t, out, "FindFoo")
}

func TestFormatPackageText(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	formatPackageText(&sb, CLIPackage{
		Name:              "VulkanHeaders",
		FileType:          "dir",
		Version:           ptr("1.3.295"),
		Location:          "file:///usr/share/VulkanHeaders/cmake",
		Provenance:        "system",
		NavigationTargets: []string{"/usr/share/VulkanHeaders/cmake/VulkanHeadersConfig.cmake"},
	})

	out := sb.String()
	assert.Contains(t, out, "Package: VulkanHeaders")
	assert.Contains(t, out, "Version: 1.3.295")
	assert.Contains(t, out, "Navigation Targets:")
	assert.Contains(t, out, "VulkanHeadersConfig.cmake")
}

func TestFormatPackageText_NoVersion(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	formatPackageText(&sb, CLIPackage{Name: "FindFoo", FileType: "file", Location: "file:///x", Provenance: "system"})
	assert.NotContains(t, sb.String(), "Version:")
}
