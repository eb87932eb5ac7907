package persistence

import (
	"os"
	"strings"

	"github.com/NeilSeligmann/libloadorder/internal/domain"
	"github.com/NeilSeligmann/libloadorder/internal/loadorder"
	"github.com/NeilSeligmann/libloadorder/internal/probe"
)

// TextfileStore implements the Textfile load-order method: order is
// encoded by a line-delimited manifest, one filename per line.
type TextfileStore struct {
	profile domain.GameProfile
	probe   probe.PluginProbe
}

// NewTextfileStore returns a Store for profile, which must use the
// Textfile method.
func NewTextfileStore(profile domain.GameProfile, p probe.PluginProbe) *TextfileStore {
	return &TextfileStore{profile: profile, probe: p}
}

// Load parses load_order_file (or, if it is absent, the active-plugins
// file as a hint), discards invalid and duplicate entries, forces the
// game master to the front, fixes up the master partition, appends any
// plugin the folder has that the manifest didn't mention, and applies
// the active set read from the active-plugins file.
func (s *TextfileStore) Load() (*loadorder.LoadOrder, error) {
	names, existed, err := readLines(s.profile.LoadOrderFile)
	if err != nil {
		return nil, err
	}
	if !existed {
		names, err = ReadActivePlugins(s.profile, s.probe)
		if err != nil {
			return nil, err
		}
	}

	names = s.filterValid(names)
	names = dedupeKeepFirst(names)
	if s.probe.IsValidPlugin(pluginPath(s.profile, s.profile.MasterFile)) {
		names = forceMasterFirst(names, s.profile.MasterFile)
	}

	entries := make([]domain.PluginEntry, len(names))
	for i, name := range names {
		entries[i] = domain.PluginEntry{
			Name:     domain.NewCaseInsensitiveName(name),
			IsMaster: s.probe.IsMaster(pluginPath(s.profile, name)),
		}
	}
	entries = partitionMasters(entries)

	lo := loadorder.New(s.profile, s.probe)
	lo.ReplaceAllUnchecked(entries)
	lo.Prune()
	if err := lo.AddMissingPlugins(); err != nil {
		return nil, err
	}

	active, err := ReadActivePlugins(s.profile, s.probe)
	if err != nil {
		return nil, err
	}
	if err := lo.ReplaceActivePluginsUnchecked(active); err != nil {
		return nil, err
	}
	return lo, nil
}

// Save writes the in-memory order verbatim to load_order_file, one
// filename per line, then rewrites the active-plugins file.
func (s *TextfileStore) Save(lo *loadorder.LoadOrder) error {
	var b strings.Builder
	for _, name := range lo.GetLoadOrder() {
		b.WriteString(name)
		b.WriteString("\n")
	}
	if err := writeFileAtomic(s.profile.LoadOrderFile, []byte(b.String())); err != nil {
		return err
	}

	data, err := WriteActivePlugins(s.profile, lo.GetActivePlugins())
	if err != nil {
		return domain.Wrap(domain.ErrKindIO, "encoding active plugins file", err)
	}
	return writeFileAtomic(s.profile.ActivePluginsFile, data)
}

func (s *TextfileStore) filterValid(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if s.probe.IsValidPlugin(pluginPath(s.profile, name)) {
			out = append(out, name)
		}
	}
	return out
}

// forceMasterFirst removes any existing occurrence of masterFile and
// reinserts it at index 0, provided its file is valid: the game master
// must load first, moving it there if it's present anywhere else.
func forceMasterFirst(names []string, masterFile string) []string {
	out := make([]string, 0, len(names)+1)
	for _, name := range names {
		if domain.NewCaseInsensitiveName(name).EqualString(masterFile) {
			continue
		}
		out = append(out, name)
	}
	return append([]string{masterFile}, out...)
}

// readLines reads path as LF-delimited text, returning existed=false
// (not an error) if the file is absent.
func readLines(path string) (lines []string, existed bool, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, domain.Wrap(domain.ErrKindIO, "reading "+path, err)
	}

	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, true, nil
}
