package persistence_test

import (
	"os"
	"testing"

	"github.com/NeilSeligmann/libloadorder/internal/persistence"
	"github.com/NeilSeligmann/libloadorder/internal/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSynchronised_TimestampAlwaysTrue(t *testing.T) {
	profile := tes4Profile(t)

	ok, err := persistence.IsSynchronised(profile, probe.NewHeaderProbe())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsSynchronised_MissingLoadOrderFileIsSynchronised(t *testing.T) {
	profile := tes5Profile(t)

	ok, err := persistence.IsSynchronised(profile, probe.NewHeaderProbe())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsSynchronised_MissingActivePluginsFileIsSynchronised(t *testing.T) {
	profile := tes5Profile(t)
	require.NoError(t, os.WriteFile(profile.LoadOrderFile, []byte("Skyrim.esm\n"), 0644))

	ok, err := persistence.IsSynchronised(profile, probe.NewHeaderProbe())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsSynchronised_TrueWhenSetsMatch(t *testing.T) {
	profile := tes5Profile(t)
	writeFixture(t, profile.PluginsFolder, "Skyrim.esm", "TES4", true)
	writeFixture(t, profile.PluginsFolder, "Blank.esp", "TES4", false)

	require.NoError(t, os.WriteFile(profile.LoadOrderFile, []byte("Skyrim.esm\nBlank.esp\n"), 0644))
	require.NoError(t, os.WriteFile(profile.ActivePluginsFile, []byte("Skyrim.esm\nBlank.esp\n"), 0644))

	ok, err := persistence.IsSynchronised(profile, probe.NewHeaderProbe())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsSynchronised_FalseWhenSetsDiffer(t *testing.T) {
	profile := tes5Profile(t)
	writeFixture(t, profile.PluginsFolder, "Skyrim.esm", "TES4", true)
	writeFixture(t, profile.PluginsFolder, "Blank.esp", "TES4", false)
	writeFixture(t, profile.PluginsFolder, "Another.esp", "TES4", false)

	require.NoError(t, os.WriteFile(profile.LoadOrderFile, []byte("Skyrim.esm\nBlank.esp\n"), 0644))
	require.NoError(t, os.WriteFile(profile.ActivePluginsFile, []byte("Skyrim.esm\nAnother.esp\n"), 0644))

	ok, err := persistence.IsSynchronised(profile, probe.NewHeaderProbe())
	require.NoError(t, err)
	assert.False(t, ok)
}
