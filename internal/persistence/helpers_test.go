package persistence_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NeilSeligmann/libloadorder/internal/domain"
	"github.com/NeilSeligmann/libloadorder/internal/probe"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func writeFixture(t *testing.T, dir, name, signature string, isMaster bool) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), probe.WriteHeader(signature, isMaster), 0644))
}

func tes5Profile(t *testing.T) domain.GameProfile {
	t.Helper()
	pluginsDir := t.TempDir()
	stateDir := t.TempDir()
	return domain.GameProfile{
		ID:                domain.TES5,
		Method:            domain.Textfile,
		Encoding:          unicode.UTF8,
		MasterFile:        "Skyrim.esm",
		ImplicitActives:   []string{"Skyrim.esm", "Update.esm"},
		PluginsFolder:     pluginsDir,
		ActivePluginsFile: filepath.Join(stateDir, "plugins.txt"),
		LoadOrderFile:     filepath.Join(stateDir, "loadorder.txt"),
	}
}

func tes4Profile(t *testing.T) domain.GameProfile {
	t.Helper()
	pluginsDir := t.TempDir()
	stateDir := t.TempDir()
	return domain.GameProfile{
		ID:                domain.TES4,
		Method:            domain.Timestamp,
		Encoding:          charmap.Windows1252,
		MasterFile:        "Oblivion.esm",
		ImplicitActives:   []string{"Oblivion.esm"},
		PluginsFolder:     pluginsDir,
		ActivePluginsFile: filepath.Join(stateDir, "plugins.txt"),
	}
}

func tes3Profile(t *testing.T) domain.GameProfile {
	t.Helper()
	pluginsDir := t.TempDir()
	stateDir := t.TempDir()
	return domain.GameProfile{
		ID:                domain.TES3,
		Method:            domain.Timestamp,
		Encoding:          charmap.Windows1252,
		MasterFile:        "Morrowind.esm",
		ImplicitActives:   []string{"Morrowind.esm"},
		PluginsFolder:     pluginsDir,
		ActivePluginsFile: filepath.Join(stateDir, "Morrowind.ini"),
	}
}
