package loadorder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/NeilSeligmann/libloadorder/internal/domain"
)

// AddMissingPlugins scans the profile's plugins folder and inserts any
// valid plugin file not already tracked and not one of the game's
// implicit actives (those are handled by enforceImplicitActives so they
// always land in their required position). Masters are inserted at the
// master/non-master boundary, non-masters are appended — the same rule
// Activate uses. Called by the Textfile store's Load; the Timestamp
// store builds its order from a full folder scan and does not call it.
func (lo *LoadOrder) AddMissingPlugins() error {
	entries, err := os.ReadDir(lo.profile.PluginsFolder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return domain.Wrap(domain.ErrKindIO, "reading plugins folder", err)
	}

	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if !hasPluginExtension(name) {
			continue
		}
		if lo.profile.IsImplicitActive(name) {
			continue
		}
		if lo.indexOf(name) >= 0 {
			continue
		}

		path := filepath.Join(lo.profile.PluginsFolder, name)
		if !lo.probe.IsValidPlugin(path) {
			continue
		}

		entry := domain.PluginEntry{
			Name:     domain.NewCaseInsensitiveName(name),
			IsMaster: lo.probe.IsMaster(path),
		}
		lo.entries = insertClassified(lo.entries, entry, lo.profile)
	}

	return nil
}

// Prune drops any tracked entry whose backing file no longer validates
// as a plugin (deleted, truncated, replaced by garbage).
func (lo *LoadOrder) Prune() {
	kept := lo.entries[:0:0]
	for _, e := range lo.entries {
		if lo.probe.IsValidPlugin(lo.pluginPath(e.Name.String())) {
			kept = append(kept, e)
		}
	}
	lo.entries = kept
}

func hasPluginExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".esp" || ext == ".esm"
}
