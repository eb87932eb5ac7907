package persistence

import (
	"github.com/NeilSeligmann/libloadorder/internal/domain"
	"github.com/NeilSeligmann/libloadorder/internal/loadorder"
	"github.com/NeilSeligmann/libloadorder/internal/probe"
)

// Store reconciles a loadorder.LoadOrder with one game's on-disk state.
// The two implementations, TimestampStore and TextfileStore, correspond
// exactly to domain.LoadOrderMethod's two values.
type Store interface {
	Load() (*loadorder.LoadOrder, error)
	Save(lo *loadorder.LoadOrder) error
}

// NewStore returns the Store implementation profile.Method selects.
func NewStore(profile domain.GameProfile, p probe.PluginProbe) Store {
	if profile.Method == domain.Textfile {
		return NewTextfileStore(profile, p)
	}
	return NewTimestampStore(profile, p)
}
