package filesystem

import (
	"errors"
	"io"
	"time"
)

// ErrCrossDevice reports a rename that would cross storage devices. The move
// handler catches it and falls back to copy-then-delete.
var ErrCrossDevice = errors.New("rename crosses devices")

// Info describes one filesystem entry. A missing path yields Exists == false
// with a nil error; only unexpected stat failures surface as errors.
type Info struct {
	Exists  bool
	IsFile  bool
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// Entry is one directory listing element.
type Entry struct {
	Name  string
	IsDir bool
}

// WalkEntry is one element of a recursive walk, with Path relative to the
// walk root.
type WalkEntry struct {
	Path  string
	IsDir bool
}

// Storage is the collaborator capability for all file I/O.
type Storage interface {
	// Stat queries existence and kind of path.
	Stat(path string) (Info, error)

	// List enumerates the direct children of a directory.
	List(path string) ([]Entry, error)

	// OpenRead opens path for streamed reading.
	OpenRead(path string) (io.ReadCloser, error)

	// CreateNew creates an empty file, failing with fs.ErrExist when a file
	// of that name is already present.
	CreateNew(path string) error

	// OpenWrite opens path for writing, creating or truncating it.
	OpenWrite(path string) (io.WriteCloser, error)

	// Rename atomically moves src to dest within one device. A cross-device
	// attempt fails with ErrCrossDevice.
	Rename(src, dest string) error

	// Remove unlinks a single file.
	Remove(path string) error

	// Mkdir creates one directory, non-recursively. Existing targets and
	// missing parents fail with fs.ErrExist / fs.ErrNotExist respectively.
	Mkdir(path string) error

	// Walk visits everything under root up to maxDepth levels (0 means
	// unlimited), returning entries sorted by relative path.
	Walk(root string, maxDepth int) ([]WalkEntry, error)

	// DetectMIME sniffs the MIME type of a file's content.
	DetectMIME(path string) (string, error)
}
