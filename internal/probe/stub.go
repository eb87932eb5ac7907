package probe

import "strings"

// StubProbe is a scripted PluginProbe for tests that need to assert
// specific failure modes (e.g. a name the probe rejects) without wiring
// up real files. Keys are matched
// case-insensitively.
type StubProbe struct {
	Valid   map[string]bool
	Masters map[string]bool
}

// NewStubProbe returns an empty StubProbe; every name is invalid until
// added via Allow or AllowMaster.
func NewStubProbe() *StubProbe {
	return &StubProbe{Valid: map[string]bool{}, Masters: map[string]bool{}}
}

// Allow marks name as a valid non-master plugin.
func (s *StubProbe) Allow(name string) *StubProbe {
	s.Valid[strings.ToLower(name)] = true
	return s
}

// AllowMaster marks name as a valid master plugin.
func (s *StubProbe) AllowMaster(name string) *StubProbe {
	s.Valid[strings.ToLower(name)] = true
	s.Masters[strings.ToLower(name)] = true
	return s
}

func (s *StubProbe) IsValidPlugin(path string) bool {
	return s.Valid[strings.ToLower(baseName(path))]
}

func (s *StubProbe) IsMaster(path string) bool {
	return s.Masters[strings.ToLower(baseName(path))]
}

// baseName strips a directory prefix without pulling in path/filepath's
// OS-specific separator handling, since stub keys are plain filenames.
func baseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[i+1:]
		}
	}
	return path
}
