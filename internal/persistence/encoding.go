package persistence

import (
	"path/filepath"

	"github.com/NeilSeligmann/libloadorder/internal/domain"

	"golang.org/x/text/encoding"
)

// pluginPath joins a bare plugin filename with the profile's plugins
// folder, mirroring loadorder.LoadOrder's own path construction so the
// probe sees the same path regardless of which package calls it.
func pluginPath(profile domain.GameProfile, name string) string {
	if profile.PluginsFolder == "" {
		return name
	}
	return filepath.Join(profile.PluginsFolder, name)
}

// decodeBytes converts raw bytes from the game's active-plugins-file
// encoding (Windows-1252 for TES3/TES4, UTF-8 for later titles) to Go's
// native UTF-8 string representation.
func decodeBytes(enc encoding.Encoding, raw []byte) (string, error) {
	if enc == nil {
		return string(raw), nil
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// encodeString converts a UTF-8 string to the bytes the active-plugins
// file must carry for profile.Encoding.
func encodeString(enc encoding.Encoding, s string) ([]byte, error) {
	if enc == nil {
		return []byte(s), nil
	}
	return enc.NewEncoder().Bytes([]byte(s))
}
