package loadorder

import "github.com/NeilSeligmann/libloadorder/internal/domain"

// hasDuplicate reports whether entries contains two names that are equal
// case-insensitively.
func hasDuplicate(entries []domain.PluginEntry) bool {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		key := e.Name.Key()
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}

// firstNonMasterPosition returns the index of the first non-master entry,
// or len(entries) if there is none. Used both to validate the master
// partition and to find the insertion boundary for a new master.
func firstNonMasterPosition(entries []domain.PluginEntry) int {
	for i, e := range entries {
		if !e.IsMaster {
			return i
		}
	}
	return len(entries)
}

// isPartitionedByMaster reports whether every master entry precedes
// every non-master entry.
func isPartitionedByMaster(entries []domain.PluginEntry) bool {
	boundary := firstNonMasterPosition(entries)
	for i := boundary; i < len(entries); i++ {
		if entries[i].IsMaster {
			return false
		}
	}
	return true
}

// countActive returns the number of active entries.
func countActive(entries []domain.PluginEntry) int {
	n := 0
	for _, e := range entries {
		if e.IsActive {
			n++
		}
	}
	return n
}

// indexOfIn returns the index of name within entries, or -1.
func indexOfIn(entries []domain.PluginEntry, name string) int {
	for i, e := range entries {
		if e.Name.EqualString(name) {
			return i
		}
	}
	return -1
}
