// Package libloadorder is the thin facade: it bundles a GameProfile with
// a LoadOrder and the Store that reconciles the two, and exposes the
// operations a caller invokes.
package libloadorder

import (
	"path/filepath"

	"github.com/NeilSeligmann/libloadorder/internal/domain"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// morrowindActivePluginsFile is the conventional relative filename
// Morrowind's active-plugin list lives in, since its active-plugins file
// is a section of the game's own ini rather than a dedicated file.
const morrowindActivePluginsFile = "Morrowind.ini"

// pluginsTxt is the conventional filename every post-Morrowind title in
// scope here uses for its active-plugins file.
const pluginsTxt = "plugins.txt"

// loadOrderTxt is the filename TES5 (the one Textfile game) uses for its
// load-order manifest.
const loadOrderTxt = "loadorder.txt"

// NewProfile builds the GameProfile for id, given the game's installation
// directory (which holds the Data/plugins folder) and the directory the
// game stores its active-plugins (and, for TES5, load-order) state in.
// Per-id constants (master file, implicit actives, encoding, method) are
// fixed by the game's engine and not settable by the caller.
func NewProfile(id domain.GameID, gameDir, stateDir string) domain.GameProfile {
	profile := domain.GameProfile{
		ID:            id,
		Method:        domain.MethodFor(id),
		Encoding:      encodingFor(id),
		MasterFile:    masterFileFor(id),
		PluginsFolder: filepath.Join(gameDir, "Data"),
	}
	profile.ImplicitActives = implicitActivesFor(id, profile.MasterFile)

	if id == domain.TES3 {
		profile.ActivePluginsFile = filepath.Join(stateDir, morrowindActivePluginsFile)
	} else {
		profile.ActivePluginsFile = filepath.Join(stateDir, pluginsTxt)
	}

	if profile.Method == domain.Textfile {
		profile.LoadOrderFile = filepath.Join(stateDir, loadOrderTxt)
	}

	return profile
}

func masterFileFor(id domain.GameID) string {
	switch id {
	case domain.TES3:
		return "Morrowind.esm"
	case domain.TES4:
		return "Oblivion.esm"
	case domain.TES5:
		return "Skyrim.esm"
	case domain.FO3:
		return "Fallout3.esm"
	case domain.FNV:
		return "FalloutNV.esm"
	default:
		return ""
	}
}

// implicitActivesFor returns the game's forced-active files. TES5 alone
// carries Update.esm in addition to its master.
func implicitActivesFor(id domain.GameID, masterFile string) []string {
	if id == domain.TES5 {
		return []string{masterFile, "Update.esm"}
	}
	return []string{masterFile}
}

// encodingFor returns the active-plugins-file encoding: Windows-1252 for
// the two oldest titles, UTF-8 for everything after.
func encodingFor(id domain.GameID) encoding.Encoding {
	switch id {
	case domain.TES3, domain.TES4:
		return charmap.Windows1252
	default:
		return unicode.UTF8
	}
}
