package probe

import "encoding/binary"

// WriteHeader builds the bytes of a minimal, valid plugin header for the
// given signature ("TES3" or "TES4") and master flag, padded to
// headerReadLen. Used by tests across packages to materialise real
// .esp/.esm fixtures on disk instead of stubbing PluginProbe, so the
// persistence and load-order tests exercise the real probe end to end.
func WriteHeader(signature string, isMaster bool) []byte {
	buf := make([]byte, headerReadLen)
	copy(buf[0:4], signature)

	var flagsOffset int
	switch signature {
	case "TES3":
		flagsOffset = tes3FlagsOffset
	default:
		flagsOffset = tes4FlagsOffset
	}

	var flags uint32
	if isMaster {
		flags = masterFlagBit
	}
	binary.LittleEndian.PutUint32(buf[flagsOffset:flagsOffset+4], flags)

	return buf
}
