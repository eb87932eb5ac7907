// Package probe answers the two questions the load-order engine asks of
// a file on disk: is it a valid plugin, and if so, is it a master. The
// engine treats this as an external collaborator so it can be swapped
// for a scripted fake in tests without touching real files.
package probe

// PluginProbe tests whether a file on disk is a valid plugin and, if so,
// whether it carries the master flag. Implementations must not retain
// any reference to plugin contents beyond the call: callers may delete
// or overwrite the file between probes.
type PluginProbe interface {
	// IsValidPlugin reports whether path has a recognised extension and
	// a header that parses. False for anything that isn't a plugin at
	// all, including a directory or a missing file.
	IsValidPlugin(path string) bool

	// IsMaster reports whether path's header carries the master flag.
	// Only meaningful when IsValidPlugin(path) is true; callers that
	// call it on an invalid path get an unspecified answer.
	IsMaster(path string) bool
}
