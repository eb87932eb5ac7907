// Package loadorder implements the in-memory ordered collection of
// plugin entries at the heart of the library, together with every
// mutation operation and the invariants that must hold after each one.
// All mutators follow the same discipline: build a candidate
// next state, validate it in full, and only then swap it in — so a
// failed call leaves the receiver byte-for-byte as it was.
package loadorder

import (
	"path/filepath"

	"github.com/NeilSeligmann/libloadorder/internal/domain"
	"github.com/NeilSeligmann/libloadorder/internal/probe"
)

// LoadOrder is the ordered collection of PluginEntry for one game
// directory. It is single-threaded cooperative: every operation runs to
// completion on the calling goroutine. Distinct LoadOrder instances are
// independent; a LoadOrder does not itself touch disk.
type LoadOrder struct {
	profile domain.GameProfile
	probe   probe.PluginProbe
	entries []domain.PluginEntry
}

// New creates an empty LoadOrder for profile, using p to validate and
// classify plugins.
func New(profile domain.GameProfile, p probe.PluginProbe) *LoadOrder {
	return &LoadOrder{profile: profile, probe: p}
}

// Profile returns the GameProfile this LoadOrder was built for.
func (lo *LoadOrder) Profile() domain.GameProfile { return lo.profile }

// Len returns the number of tracked entries.
func (lo *LoadOrder) Len() int { return len(lo.entries) }

// Clear drops all entries.
func (lo *LoadOrder) Clear() {
	lo.entries = nil
}

// ReplaceAllUnchecked swaps in entries without re-validating the master
// partition or Textfile game-master-first invariants. It exists for the
// persistence layer, which builds entries already arranged correctly
// (sorted by timestamp, or read from the load-order file and fixed up)
// and would otherwise have to re-derive exactly what it just computed.
// Callers outside this module's own persistence package should use
// SetLoadOrder instead, which validates a caller-supplied ordering.
func (lo *LoadOrder) ReplaceAllUnchecked(entries []domain.PluginEntry) {
	lo.entries = entries
}

// Entries returns a copy of the tracked entries, for callers (the
// persistence layer) that need the cached master flag alongside the
// name rather than just the name list GetLoadOrder returns.
func (lo *LoadOrder) Entries() []domain.PluginEntry {
	return append([]domain.PluginEntry(nil), lo.entries...)
}

// GetLoadOrder returns plugin names in order.
func (lo *LoadOrder) GetLoadOrder() []string {
	names := make([]string, len(lo.entries))
	for i, e := range lo.entries {
		names[i] = e.Name.String()
	}
	return names
}

// GetPosition returns the index of name, case-insensitively. If name is
// not present, it returns len(entries) as a sentinel.
func (lo *LoadOrder) GetPosition(name string) int {
	if i := lo.indexOf(name); i >= 0 {
		return i
	}
	return len(lo.entries)
}

// GetPluginAtPosition returns the name at index, or a domain.Error of
// kind ErrKindOutOfRange if index >= Len().
func (lo *LoadOrder) GetPluginAtPosition(index int) (string, error) {
	if index < 0 || index >= len(lo.entries) {
		return "", domain.NewError(domain.ErrKindOutOfRange, "position past end of load order")
	}
	return lo.entries[index].Name.String(), nil
}

// IsActive reports case-insensitive membership in the active set.
func (lo *LoadOrder) IsActive(name string) bool {
	if i := lo.indexOf(name); i >= 0 {
		return lo.entries[i].IsActive
	}
	return false
}

// GetActivePlugins returns the current active set as a name slice
// (order is the load order's, which is stable but not itself
// significant for a set view).
func (lo *LoadOrder) GetActivePlugins() []string {
	var names []string
	for _, e := range lo.entries {
		if e.IsActive {
			names = append(names, e.Name.String())
		}
	}
	return names
}

func (lo *LoadOrder) indexOf(name string) int {
	for i, e := range lo.entries {
		if e.Name.EqualString(name) {
			return i
		}
	}
	return -1
}

// entryFor classifies a not-yet-tracked plugin via the probe, returning
// a domain.Error of kind ErrKindInvalidPlugin if it fails validation.
func (lo *LoadOrder) entryFor(name string) (domain.PluginEntry, error) {
	path := lo.pluginPath(name)
	if !lo.probe.IsValidPlugin(path) {
		return domain.PluginEntry{}, domain.NewError(domain.ErrKindInvalidPlugin, name)
	}
	return domain.PluginEntry{
		Name:     domain.NewCaseInsensitiveName(name),
		IsMaster: lo.probe.IsMaster(path),
	}, nil
}

func (lo *LoadOrder) pluginPath(name string) string {
	if lo.profile.PluginsFolder == "" {
		return name
	}
	return filepath.Join(lo.profile.PluginsFolder, name)
}
