package persistence

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/NeilSeligmann/libloadorder/internal/domain"
	"github.com/NeilSeligmann/libloadorder/internal/loadorder"
	"github.com/NeilSeligmann/libloadorder/internal/probe"
)

// timestampStep is the gap between successive plugins' assigned mtimes
// on save, chosen to survive filesystems with one-second mtime
// resolution.
const timestampStep = time.Minute

// TimestampStore implements the Timestamp load-order method: order is
// encoded entirely by each plugin file's last-modified time.
type TimestampStore struct {
	profile domain.GameProfile
	probe   probe.PluginProbe
}

// NewTimestampStore returns a Store for profile, which must use the
// Timestamp method.
func NewTimestampStore(profile domain.GameProfile, p probe.PluginProbe) *TimestampStore {
	return &TimestampStore{profile: profile, probe: p}
}

// Load enumerates plugins_folder, orders entries by mtime (tie-broken
// alphabetically, case-insensitive), fixes up the master partition, and
// applies the active set read from the active-plugins file.
func (s *TimestampStore) Load() (*loadorder.LoadOrder, error) {
	entries, err := s.enumerate()
	if err != nil {
		return nil, err
	}

	lo := loadorder.New(s.profile, s.probe)
	lo.ReplaceAllUnchecked(entries)
	lo.Prune()

	active, err := ReadActivePlugins(s.profile, s.probe)
	if err != nil {
		return nil, err
	}
	if err := lo.ReplaceActivePluginsUnchecked(active); err != nil {
		return nil, err
	}
	return lo, nil
}

// Save assigns strictly increasing timestamps one timestampStep apart to
// the current in-memory ordering, then rewrites the active-plugins file.
func (s *TimestampStore) Save(lo *loadorder.LoadOrder) error {
	entries := lo.Entries()
	base := time.Now()

	for i, e := range entries {
		path := pluginPath(s.profile, e.Name.String())
		mtime := base.Add(time.Duration(i) * timestampStep)
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			return domain.Wrap(domain.ErrKindIO, "setting timestamp for "+e.Name.String(), err)
		}
	}

	data, err := WriteActivePlugins(s.profile, lo.GetActivePlugins())
	if err != nil {
		return domain.Wrap(domain.ErrKindIO, "encoding active plugins file", err)
	}
	return writeFileAtomic(s.profile.ActivePluginsFile, data)
}

func (s *TimestampStore) enumerate() ([]domain.PluginEntry, error) {
	dirEntries, err := os.ReadDir(s.profile.PluginsFolder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, domain.Wrap(domain.ErrKindIO, "reading plugins folder", err)
	}

	type candidate struct {
		name  string
		mtime time.Time
	}

	var candidates []candidate
	for _, de := range dirEntries {
		if de.IsDir() || !hasPluginExtension(de.Name()) {
			continue
		}
		path := filepath.Join(s.profile.PluginsFolder, de.Name())
		if !s.probe.IsValidPlugin(path) {
			continue
		}
		info, err := de.Info()
		if err != nil {
			return nil, domain.Wrap(domain.ErrKindIO, "statting "+de.Name(), err)
		}
		candidates = append(candidates, candidate{name: de.Name(), mtime: info.ModTime()})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if !candidates[i].mtime.Equal(candidates[j].mtime) {
			return candidates[i].mtime.Before(candidates[j].mtime)
		}
		return domain.NewCaseInsensitiveName(candidates[i].name).Key() <
			domain.NewCaseInsensitiveName(candidates[j].name).Key()
	})

	entries := make([]domain.PluginEntry, len(candidates))
	for i, c := range candidates {
		entries[i] = domain.PluginEntry{
			Name:     domain.NewCaseInsensitiveName(c.name),
			IsMaster: s.probe.IsMaster(filepath.Join(s.profile.PluginsFolder, c.name)),
		}
	}

	return partitionMasters(entries), nil
}

// partitionMasters stably moves every master ahead of every non-master,
// preserving relative order within each group.
func partitionMasters(entries []domain.PluginEntry) []domain.PluginEntry {
	out := make([]domain.PluginEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsMaster {
			out = append(out, e)
		}
	}
	for _, e := range entries {
		if !e.IsMaster {
			out = append(out, e)
		}
	}
	return out
}

func hasPluginExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".esp" || ext == ".esm"
}
