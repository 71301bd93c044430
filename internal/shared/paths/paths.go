// Package paths implements path resolution and root confinement for the shell.
//
// Every user-supplied path argument flows through Resolve before any filesystem
// access. Resolution is pure: it never touches the filesystem, and existence
// checks are the caller's responsibility.
package paths

import (
	"path/filepath"
	"strings"
)

// Root returns the filesystem root of p: the volume name plus separator on
// multi-drive hosts, "/" elsewhere.
func Root(p string) string {
	return filepath.VolumeName(p) + string(filepath.Separator)
}

// Within reports whether p equals root or is a descendant of it. Both inputs
// must already be absolute and normalized.
func Within(p, root string) bool {
	if p == root {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(p, prefix)
}

// Resolve turns a raw path argument into an absolute, normalized path confined
// to the root of cwd. Absolute arguments are normalized as-is; relative ones
// are joined onto cwd. A result that escapes the root of cwd is clamped to
// that root rather than rejected.
//
// cwd must be absolute and normalized, which the session invariant guarantees.
func Resolve(raw, cwd string) string {
	var candidate string
	if filepath.IsAbs(raw) {
		candidate = filepath.Clean(raw)
	} else {
		candidate = filepath.Join(cwd, raw)
	}

	boundary := Root(cwd)
	if !Within(candidate, boundary) {
		return boundary
	}
	return candidate
}

// Parent returns the parent directory of p, or p itself when p is already the
// root of its volume.
func Parent(p string) string {
	if p == Root(p) {
		return p
	}
	return filepath.Dir(p)
}
