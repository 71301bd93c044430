package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"

	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"
)

// OS implements Storage against the host filesystem.
type OS struct{}

// NewOS creates the host-backed storage capability.
func NewOS() *OS {
	return &OS{}
}

func (*OS) Stat(path string) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Info{}, nil
		}
		return Info{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return Info{
		Exists:  true,
		IsFile:  fi.Mode().IsRegular(),
		IsDir:   fi.IsDir(),
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
	}, nil
}

func (*OS) List(path string) ([]Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		entries = append(entries, Entry{Name: d.Name(), IsDir: d.IsDir()})
	}
	return entries, nil
}

func (*OS) OpenRead(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

func (*OS) CreateNew(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return f.Close()
}

func (*OS) OpenWrite(path string) (io.WriteCloser, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open for write %s: %w", path, err)
	}
	return f, nil
}

func (*OS) Rename(src, dest string) error {
	if err := os.Rename(src, dest); err != nil {
		var linkErr *os.LinkError
		if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
			return fmt.Errorf("rename %s: %w", src, ErrCrossDevice)
		}
		return fmt.Errorf("rename %s: %w", src, err)
	}
	return nil
}

func (*OS) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

func (*OS) Mkdir(path string) error {
	if err := os.Mkdir(path, 0755); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}

func (*OS) Walk(root string, maxDepth int) ([]WalkEntry, error) {
	var (
		mu      sync.Mutex
		entries []WalkEntry
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		if err != nil || path == root {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		if maxDepth > 0 && strings.Count(rel, string(filepath.Separator)) >= maxDepth {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		mu.Lock()
		entries = append(entries, WalkEntry{Path: rel, IsDir: d.IsDir()})
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	// fastwalk visits directories concurrently; order for display here.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

func (*OS) DetectMIME(path string) (string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("mime detection %s: %w", path, err)
	}
	return mtype.String(), nil
}
