package persistence

import (
	"os"
	"strings"

	"github.com/NeilSeligmann/libloadorder/internal/domain"
	"github.com/NeilSeligmann/libloadorder/internal/probe"
)

// tes3LinePrefix is the historical, fixed digit Morrowind's active-plugins
// file (morrowind.ini's "[Game Files]" section) uses on every active line.
const tes3LinePrefix = "GameFile0="

// tes3GameFilesHeader is the morrowind.ini section header the active
// plugin lines live under. Everything above and including this line is
// preserved verbatim on write, since morrowind.ini also carries unrelated
// engine settings this package knows nothing about.
const tes3GameFilesHeader = "[Game Files]"

// ReadActivePlugins parses profile.ActivePluginsFile into the active set a
// LoadOrder should apply. A missing file yields an empty set, not an
// error (the caller treats that the same as a fresh install).
func ReadActivePlugins(profile domain.GameProfile, p probe.PluginProbe) ([]string, error) {
	raw, err := os.ReadFile(profile.ActivePluginsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, domain.Wrap(domain.ErrKindIO, "reading active plugins file", err)
	}

	text, err := decodeBytes(profile.Encoding, raw)
	if err != nil {
		return nil, domain.Wrap(domain.ErrKindParse, "decoding active plugins file", err)
	}

	candidates := parseActivePluginLines(text, profile.ID == domain.TES3)

	valid := make([]string, 0, len(candidates))
	for _, name := range candidates {
		path := pluginPath(profile, name)
		if p.IsValidPlugin(path) {
			valid = append(valid, name)
		}
	}

	deduped := dedupeKeepFirst(valid)

	result := requiredActivePlugins(profile, p)
	for _, name := range deduped {
		if containsFold(result, name) {
			continue
		}
		if len(result) >= domain.MaxActivePlugins {
			break
		}
		result = append(result, name)
	}

	return result, nil
}

// requiredActivePlugins returns the names guaranteed a place in the
// active set regardless of truncation: the Textfile game's master,
// then TES5's Update.esm, provided each file actually exists.
func requiredActivePlugins(profile domain.GameProfile, p probe.PluginProbe) []string {
	if profile.Method != domain.Textfile {
		return nil
	}

	var required []string
	if p.IsValidPlugin(pluginPath(profile, profile.MasterFile)) {
		required = append(required, profile.MasterFile)
	}
	for _, implicit := range profile.ImplicitActives {
		if containsFold(required, implicit) {
			continue
		}
		if p.IsValidPlugin(pluginPath(profile, implicit)) {
			required = append(required, implicit)
		}
	}
	return required
}

// parseActivePluginLines splits raw decoded text into candidate plugin
// names, skipping blank lines and comments and handling the TES3 prefix.
func parseActivePluginLines(text string, isTES3 bool) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if isTES3 {
			if !strings.HasPrefix(line, tes3LinePrefix) {
				continue
			}
			line = strings.TrimPrefix(line, tes3LinePrefix)
		}

		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names
}

// WriteActivePlugins renders names to the bytes that should be written to
// profile.ActivePluginsFile. Line order carries no meaning on disk. On
// TES3, morrowind.ini's existing content above "[Game Files]" is read
// back and prepended verbatim, since that file also holds every other
// engine setting and a plain rewrite would otherwise discard them.
func WriteActivePlugins(profile domain.GameProfile, names []string) ([]byte, error) {
	prelude, err := tes3Prelude(profile)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	for _, name := range names {
		if profile.ID == domain.TES3 {
			b.WriteString(tes3LinePrefix)
		}
		b.WriteString(name)
		b.WriteString("\n")
	}

	encoded, err := encodeString(profile.Encoding, b.String())
	if err != nil {
		return nil, err
	}

	return append(prelude, encoded...), nil
}

// tes3Prelude returns the bytes of profile.ActivePluginsFile up to and
// including its "[Game Files]" header line, or nil for every game but
// Morrowind (and for a Morrowind save with no existing file). The
// prelude is copied as raw bytes, not decoded and re-encoded, so it
// survives untouched regardless of what else lives in morrowind.ini.
func tes3Prelude(profile domain.GameProfile) ([]byte, error) {
	if profile.ID != domain.TES3 {
		return nil, nil
	}

	raw, err := os.ReadFile(profile.ActivePluginsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, domain.Wrap(domain.ErrKindIO, "reading active plugins file for prelude", err)
	}

	var prelude []byte
	for _, line := range strings.Split(string(raw), "\n") {
		prelude = append(prelude, line...)
		prelude = append(prelude, '\n')
		if strings.HasPrefix(line, tes3GameFilesHeader) {
			break
		}
	}
	return prelude, nil
}

func dedupeKeepFirst(names []string) []string {
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

func containsFold(names []string, name string) bool {
	target := domain.NewCaseInsensitiveName(name)
	for _, n := range names {
		if target.EqualString(n) {
			return true
		}
	}
	return false
}
