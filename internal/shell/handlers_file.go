package shell

import (
	"context"
	"io"
	"path/filepath"
	"time"
)

func (it *Interpreter) readFile(ctx context.Context, args []string) Outcome {
	path := it.resolve(args[0])

	info, err := it.storage.Stat(path)
	if err != nil {
		return it.failf(err, "cat: stat %s", path)
	}
	if !info.Exists || !info.IsFile {
		return InvalidInput
	}

	r, err := it.storage.OpenRead(path)
	if err != nil {
		return it.failf(err, "cat: open %s", path)
	}
	defer r.Close()

	if _, err := io.Copy(it.term.Writer(), r); err != nil {
		return it.failf(err, "cat: read %s", path)
	}
	it.term.Println("")
	return Success
}

func (it *Interpreter) createFile(ctx context.Context, args []string) Outcome {
	path := it.resolve(args[0])

	if err := it.storage.CreateNew(path); err != nil {
		return it.failf(err, "add: %s", path)
	}
	return Success
}

func (it *Interpreter) createDir(ctx context.Context, args []string) Outcome {
	path := it.resolve(args[0])

	if err := it.storage.Mkdir(path); err != nil {
		return it.failf(err, "mkdir: %s", path)
	}
	return Success
}

func (it *Interpreter) rename(ctx context.Context, args []string) Outcome {
	oldPath := it.resolve(args[0])
	newPath := filepath.Join(filepath.Dir(oldPath), args[1])

	info, err := it.storage.Stat(oldPath)
	if err != nil {
		return it.failf(err, "rn: stat %s", oldPath)
	}
	if !info.Exists {
		return it.failf(nil, "rn: %s does not exist", oldPath)
	}

	if err := it.storage.Rename(oldPath, newPath); err != nil {
		return it.failf(err, "rn: %s", oldPath)
	}
	return Success
}

func (it *Interpreter) deleteFile(ctx context.Context, args []string) Outcome {
	path := it.resolve(args[0])

	info, err := it.storage.Stat(path)
	if err != nil {
		return it.failf(err, "rm: stat %s", path)
	}
	if !info.Exists || !info.IsFile {
		return InvalidInput
	}

	if err := it.storage.Remove(path); err != nil {
		return it.failf(err, "rm: %s", path)
	}
	return Success
}

func (it *Interpreter) statPath(ctx context.Context, args []string) Outcome {
	path := it.resolve(args[0])

	info, err := it.storage.Stat(path)
	if err != nil {
		return it.failf(err, "stat: %s", path)
	}
	if !info.Exists {
		return InvalidInput
	}

	kind := "FILE"
	if info.IsDir {
		kind = "DIR"
	}
	it.term.Println("Name: %s", filepath.Base(path))
	it.term.Println("Kind: %s", kind)
	it.term.Println("Size: %d bytes", info.Size)
	it.term.Println("Modified: %s", info.ModTime.Format(time.RFC3339))

	if info.IsFile {
		mime, err := it.storage.DetectMIME(path)
		if err != nil {
			return it.failf(err, "stat: mime %s", path)
		}
		it.term.Println("MIME: %s", mime)
	}
	return Success
}
