package domain

import "golang.org/x/text/encoding"

// MaxActivePlugins is the hard ceiling on simultaneously active plugins,
// fixed across all five supported games.
const MaxActivePlugins = 255

// GameProfile is an immutable per-game descriptor supplying every
// game-dependent constant the load-order engine needs. Callers build one
// per game (typically from a static table) and never mutate it; the
// engine treats it as read-only for the lifetime of a LoadOrder or
// persistence operation.
type GameProfile struct {
	ID      GameID
	Method  LoadOrderMethod
	Encoding encoding.Encoding

	// MasterFile is the game's own master plugin, e.g. "Skyrim.esm".
	MasterFile string

	// ImplicitActives are plugins the game forces active regardless of
	// user choice. TES5: {MasterFile, "Update.esm"}. Others: {MasterFile}.
	ImplicitActives []string

	// PluginsFolder is the directory plugin files live in.
	PluginsFolder string

	// ActivePluginsFile is the path to the text file listing active
	// plugins (plugins.txt / Plugins.txt / morrowind.ini).
	ActivePluginsFile string

	// LoadOrderFile is the path to the load-order manifest. Only set
	// (and only meaningful) for Textfile-method games.
	LoadOrderFile string
}

// IsImplicitActive reports whether name is one of the game's forced-active
// plugins (by case-insensitive comparison), irrespective of whether the
// backing file currently exists.
func (p GameProfile) IsImplicitActive(name string) bool {
	n := NewCaseInsensitiveName(name)
	for _, implicit := range p.ImplicitActives {
		if n.EqualString(implicit) {
			return true
		}
	}
	return false
}
