package libloadorder

import (
	"github.com/NeilSeligmann/libloadorder/internal/domain"
	"github.com/NeilSeligmann/libloadorder/internal/loadorder"
	"github.com/NeilSeligmann/libloadorder/internal/persistence"
	"github.com/NeilSeligmann/libloadorder/internal/probe"
)

// Handle bundles one game's profile with the LoadOrder built for it and
// the Store that reconciles the two with disk. It is the entry point a
// caller (the CLI, or a future C ABI wrapper) is expected to use; every
// method here does nothing more than delegate.
type Handle struct {
	profile domain.GameProfile
	probe   probe.PluginProbe
	store   persistence.Store
	lo      *loadorder.LoadOrder
}

// New builds a Handle for profile with an empty, unloaded LoadOrder. Call
// Load before using any of the mutation or query methods.
func New(profile domain.GameProfile, p probe.PluginProbe) *Handle {
	return &Handle{
		profile: profile,
		probe:   p,
		store:   persistence.NewStore(profile, p),
		lo:      loadorder.New(profile, p),
	}
}

// Load discards the current in-memory state and reads it fresh from
// disk.
func (h *Handle) Load() error {
	lo, err := h.store.Load()
	if err != nil {
		return err
	}
	h.lo = lo
	return nil
}

// Save writes the current in-memory state to disk.
func (h *Handle) Save() error {
	return h.store.Save(h.lo)
}

// IsSynchronised reports whether the two on-disk mechanisms agree.
// Always true for Timestamp games.
func (h *Handle) IsSynchronised() (bool, error) {
	return persistence.IsSynchronised(h.profile, h.probe)
}

// Profile returns the GameProfile this Handle was built for.
func (h *Handle) Profile() domain.GameProfile { return h.profile }

// LoadOrder exposes the underlying in-memory collection for callers that
// need the full mutation API rather than Handle's pass-through subset.
func (h *Handle) LoadOrder() *loadorder.LoadOrder { return h.lo }

func (h *Handle) GetLoadOrder() []string { return h.lo.GetLoadOrder() }

func (h *Handle) SetLoadOrder(names []string) error { return h.lo.SetLoadOrder(names) }

func (h *Handle) GetPosition(name string) int { return h.lo.GetPosition(name) }

func (h *Handle) SetPosition(name string, index int) error { return h.lo.SetPosition(name, index) }

func (h *Handle) Activate(name string) error { return h.lo.Activate(name) }

func (h *Handle) Deactivate(name string) error { return h.lo.Deactivate(name) }

func (h *Handle) IsActive(name string) bool { return h.lo.IsActive(name) }

func (h *Handle) GetActivePlugins() []string { return h.lo.GetActivePlugins() }

func (h *Handle) SetActivePlugins(names []string) error { return h.lo.SetActivePlugins(names) }
