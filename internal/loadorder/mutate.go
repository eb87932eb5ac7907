package loadorder

import "github.com/NeilSeligmann/libloadorder/internal/domain"

// SetLoadOrder replaces the entire load order with names. On failure the
// receiver is left exactly as it was. On success, prior
// active flags are preserved for names still present, dropped for names
// removed, and implicit actives are enforced.
func (lo *LoadOrder) SetLoadOrder(names []string) error {
	if hasDuplicateNames(names) {
		return domain.NewError(domain.ErrKindInvalidOrder, "duplicate plugin name")
	}

	if lo.profile.Method == domain.Textfile {
		if len(names) == 0 || !domain.NewCaseInsensitiveName(names[0]).EqualString(lo.profile.MasterFile) {
			return domain.NewError(domain.ErrKindInvalidOrder, "first plugin must be the game master")
		}
	}

	candidate := make([]domain.PluginEntry, len(names))
	for i, name := range names {
		entry, err := lo.entryFor(name)
		if err != nil {
			return err
		}
		if old := lo.indexOf(name); old >= 0 {
			entry.IsActive = lo.entries[old].IsActive
		}
		candidate[i] = entry
	}

	if hasDuplicate(candidate) {
		return domain.NewError(domain.ErrKindInvalidOrder, "duplicate plugin name")
	}
	if !isPartitionedByMaster(candidate) {
		return domain.NewError(domain.ErrKindInvalidOrder, "non-master plugin precedes a master")
	}

	lo.entries = candidate

	if lo.profile.Method == domain.Textfile {
		lo.forceActive(lo.profile.MasterFile)
	}
	return lo.enforceImplicitActives()
}

// SetPosition places name at index, inserting it if it is new. Every
// precondition is checked against a candidate arrangement before
// anything is mutated.
func (lo *LoadOrder) SetPosition(name string, index int) error {
	isMasterFile := domain.NewCaseInsensitiveName(name).EqualString(lo.profile.MasterFile)
	if lo.profile.Method == domain.Textfile {
		if isMasterFile && index != 0 {
			return domain.NewError(domain.ErrKindInvalidOrder, "game master must load first")
		}
		if !isMasterFile && index == 0 {
			return domain.NewError(domain.ErrKindInvalidOrder, "only the game master may load first")
		}
	}

	base := make([]domain.PluginEntry, 0, len(lo.entries))
	var moved domain.PluginEntry
	haveMoved := false
	for _, e := range lo.entries {
		if e.Name.EqualString(name) {
			moved = e
			haveMoved = true
			continue
		}
		base = append(base, e)
	}

	if !haveMoved {
		entry, err := lo.entryFor(name)
		if err != nil {
			return err
		}
		moved = entry
	}

	idx := index
	if idx > len(base) {
		idx = len(base)
	}
	if idx < 0 {
		idx = 0
	}

	candidate := make([]domain.PluginEntry, 0, len(base)+1)
	candidate = append(candidate, base[:idx]...)
	candidate = append(candidate, moved)
	candidate = append(candidate, base[idx:]...)

	if !isPartitionedByMaster(candidate) {
		return domain.NewError(domain.ErrKindInvalidOrder, "move would place a non-master before a master")
	}

	lo.entries = candidate
	return lo.enforceImplicitActives()
}

// Activate sets name active, inserting it into the load order first if
// it isn't already tracked. Fails with ErrKindInvalidPlugin if name
// fails the probe, or ErrKindTooManyActive if activating it would push
// the active count past domain.MaxActivePlugins; in both cases the
// receiver is unchanged.
func (lo *LoadOrder) Activate(name string) error {
	candidate, idx, err := lo.withEntry(name)
	if err != nil {
		return err
	}

	if !candidate[idx].IsActive && countActive(candidate) >= domain.MaxActivePlugins {
		return domain.NewError(domain.ErrKindTooManyActive, "maximum active plugin count exceeded")
	}

	candidate[idx].IsActive = true
	lo.entries = candidate
	return lo.enforceImplicitActives()
}

// Deactivate sets name inactive. Fails with ErrKindImplicitActive if
// name is one of the game's forced-active plugins and its file exists.
// A no-op, not an error, if name isn't tracked.
func (lo *LoadOrder) Deactivate(name string) error {
	if lo.profile.IsImplicitActive(name) && lo.probe.IsValidPlugin(lo.pluginPath(name)) {
		return domain.NewError(domain.ErrKindImplicitActive, name)
	}

	idx := lo.indexOf(name)
	if idx < 0 {
		return nil
	}

	candidate := append([]domain.PluginEntry(nil), lo.entries...)
	candidate[idx].IsActive = false
	lo.entries = candidate
	return nil
}

// SetActivePlugins replaces the active set atomically: every name is
// activated (inserted first if new), and every other tracked plugin is
// deactivated. Every precondition is checked before anything mutates.
func (lo *LoadOrder) SetActivePlugins(names []string) error {
	unique := dedupeNames(names)

	for _, name := range unique {
		if !lo.probe.IsValidPlugin(lo.pluginPath(name)) {
			return domain.NewError(domain.ErrKindInvalidPlugin, name)
		}
	}

	if len(unique) > domain.MaxActivePlugins {
		return domain.NewError(domain.ErrKindTooManyActive, "maximum active plugin count exceeded")
	}

	if lo.profile.Method == domain.Textfile {
		for _, implicit := range lo.profile.ImplicitActives {
			if !lo.probe.IsValidPlugin(lo.pluginPath(implicit)) {
				continue
			}
			if !containsName(unique, implicit) {
				return domain.NewError(domain.ErrKindImplicitActive, implicit)
			}
		}
	}

	if lo.profile.Method == domain.Textfile && !containsName(unique, lo.profile.MasterFile) {
		return domain.NewError(domain.ErrKindInvalidOrder, "game master must be active")
	}

	return lo.ReplaceActivePluginsUnchecked(unique)
}

// ReplaceActivePluginsUnchecked applies names as the active set without
// checking the active-count ceiling or the implicit-active/master-file
// preconditions SetActivePlugins enforces. Names already tracked are not
// probed again; a name not yet tracked is still classified via the probe
// and rejected with ErrKindInvalidPlugin if it fails.
// It exists for the persistence layer, whose input already passed
// through the active-plugins-file reader's own validation and
// truncation, and which must be able to load a fresh install where no
// implicit-active is active yet — SetActivePlugins's precondition would
// reject exactly that case. Implicit actives are still enforced
// afterward.
func (lo *LoadOrder) ReplaceActivePluginsUnchecked(names []string) error {
	candidate := append([]domain.PluginEntry(nil), lo.entries...)
	for i := range candidate {
		candidate[i].IsActive = false
	}

	for _, name := range names {
		if idx := indexOfIn(candidate, name); idx >= 0 {
			candidate[idx].IsActive = true
			continue
		}
		entry, err := lo.entryFor(name)
		if err != nil {
			return err
		}
		entry.IsActive = true
		candidate = insertClassified(candidate, entry, lo.profile)
	}

	lo.entries = candidate
	return lo.enforceImplicitActives()
}

// withEntry returns a candidate entries slice containing name (inserted
// per the activate-insertion rule if it wasn't already tracked) and the
// index of that entry within the candidate, without mutating lo.
func (lo *LoadOrder) withEntry(name string) ([]domain.PluginEntry, int, error) {
	if idx := lo.indexOf(name); idx >= 0 {
		return append([]domain.PluginEntry(nil), lo.entries...), idx, nil
	}

	entry, err := lo.entryFor(name)
	if err != nil {
		return nil, 0, err
	}

	candidate := insertClassified(append([]domain.PluginEntry(nil), lo.entries...), entry, lo.profile)
	return candidate, indexOfIn(candidate, name), nil
}

// insertClassified inserts entry into entries following the activation
// insertion rule: masters go at the master/non-master boundary (index 0
// if entry is the Textfile game's own master), non-masters are appended.
func insertClassified(entries []domain.PluginEntry, entry domain.PluginEntry, profile domain.GameProfile) []domain.PluginEntry {
	if !entry.IsMaster {
		return append(entries, entry)
	}

	pos := firstNonMasterPosition(entries)
	if profile.Method == domain.Textfile && entry.Name.EqualString(profile.MasterFile) {
		pos = 0
	}

	out := make([]domain.PluginEntry, 0, len(entries)+1)
	out = append(out, entries[:pos]...)
	out = append(out, entry)
	out = append(out, entries[pos:]...)
	return out
}

// forceActive sets name active in place, assuming it is already tracked.
func (lo *LoadOrder) forceActive(name string) {
	if idx := lo.indexOf(name); idx >= 0 {
		lo.entries[idx].IsActive = true
	}
}

// EnforceImplicitActives runs the same implicit-active fixup every
// mutator applies after itself, for callers that assemble entries with
// ReplaceAllUnchecked, which does not run it. The persistence stores get
// the fixup through ReplaceActivePluginsUnchecked instead.
func (lo *LoadOrder) EnforceImplicitActives() error {
	return lo.enforceImplicitActives()
}

// enforceImplicitActives is the post-mutation step every mutator runs:
// every implicit-active whose backing file exists must be present and
// active. Missing ones are inserted (classified via the probe) exactly
// as Activate would insert them.
func (lo *LoadOrder) enforceImplicitActives() error {
	if lo.profile.Method != domain.Textfile {
		return nil
	}

	for _, name := range lo.profile.ImplicitActives {
		path := lo.pluginPath(name)
		if !lo.probe.IsValidPlugin(path) {
			continue
		}

		if idx := lo.indexOf(name); idx >= 0 {
			lo.entries[idx].IsActive = true
			continue
		}

		entry, err := lo.entryFor(name)
		if err != nil {
			return err
		}
		entry.IsActive = true
		lo.entries = insertClassified(lo.entries, entry, lo.profile)
	}
	return nil
}

func hasDuplicateNames(names []string) bool {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		key := domain.NewCaseInsensitiveName(n).Key()
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}

func dedupeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		key := domain.NewCaseInsensitiveName(n).Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	return out
}

func containsName(names []string, name string) bool {
	target := domain.NewCaseInsensitiveName(name)
	for _, n := range names {
		if target.EqualString(n) {
			return true
		}
	}
	return false
}
