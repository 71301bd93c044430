package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileManager/internal/providers/filesystem"
)

// checkCopyArgs validates the shared cp/mv preconditions: src must be a
// regular file and dest an existing directory. It returns the final
// destination path preserving src's basename.
func (it *Interpreter) checkCopyArgs(src, destDir string) (string, Outcome) {
	srcInfo, err := it.storage.Stat(src)
	if err != nil {
		return "", it.failf(err, "stat %s", src)
	}
	if !srcInfo.Exists || !srcInfo.IsFile {
		return "", InvalidInput
	}

	destInfo, err := it.storage.Stat(destDir)
	if err != nil {
		return "", it.failf(err, "stat %s", destDir)
	}
	if !destInfo.Exists || !destInfo.IsDir {
		return "", InvalidInput
	}

	return filepath.Join(destDir, filepath.Base(src)), Success
}

// streamCopy copies src to dest through the storage capability, closing both
// stream stages on every path.
func (it *Interpreter) streamCopy(src, dest string) error {
	r, err := it.storage.OpenRead(src)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := it.storage.OpenWrite(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return w.Close()
}

func (it *Interpreter) copyFile(ctx context.Context, args []string) Outcome {
	src := it.resolve(args[0])
	destDir := it.resolve(args[1])

	dest, outcome := it.checkCopyArgs(src, destDir)
	if outcome != Success {
		return outcome
	}

	if err := it.streamCopy(src, dest); err != nil {
		return it.failf(err, "cp: %s", src)
	}
	return Success
}

func (it *Interpreter) moveFile(ctx context.Context, args []string) Outcome {
	src := it.resolve(args[0])
	destDir := it.resolve(args[1])

	dest, outcome := it.checkCopyArgs(src, destDir)
	if outcome != Success {
		return outcome
	}

	err := it.storage.Rename(src, dest)
	if err == nil {
		return Success
	}
	if errors.Is(err, filesystem.ErrCrossDevice) {
		it.log.Debug("mv falling back to copy", zap.String("src", src), zap.String("dest", dest))
	}

	// Rename was refused; stream a copy and delete the source. If the delete
	// fails after a successful copy the source survives as a duplicate, which
	// is the accepted policy.
	if err := it.streamCopy(src, dest); err != nil {
		return it.failf(err, "mv: %s", src)
	}
	if err := it.storage.Remove(src); err != nil {
		return it.failf(err, "mv: remove source %s", src)
	}
	return Success
}

func (it *Interpreter) hashFile(ctx context.Context, args []string) Outcome {
	path := it.resolve(args[0])

	info, err := it.storage.Stat(path)
	if err != nil {
		return it.failf(err, "hash: stat %s", path)
	}
	if !info.Exists || !info.IsFile {
		return InvalidInput
	}

	r, err := it.storage.OpenRead(path)
	if err != nil {
		return it.failf(err, "hash: open %s", path)
	}
	defer r.Close()

	digest, err := it.hasher.Sum(r)
	if err != nil {
		return it.failf(err, "hash: read %s", path)
	}
	it.term.Println("%s", digest)
	return Success
}

// transform runs one src -> codec -> dest pipeline. compressing selects the
// direction of the transform.
func (it *Interpreter) transform(src, dest string, compressing bool) Outcome {
	srcInfo, err := it.storage.Stat(src)
	if err != nil {
		return it.failf(err, "stat %s", src)
	}
	if !srcInfo.Exists || !srcInfo.IsFile {
		return InvalidInput
	}

	parentInfo, err := it.storage.Stat(filepath.Dir(dest))
	if err != nil {
		return it.failf(err, "stat %s", filepath.Dir(dest))
	}
	if !parentInfo.Exists || !parentInfo.IsDir {
		return InvalidInput
	}

	r, err := it.storage.OpenRead(src)
	if err != nil {
		return it.failf(err, "open %s", src)
	}
	defer r.Close()

	w, err := it.storage.OpenWrite(dest)
	if err != nil {
		return it.failf(err, "open %s", dest)
	}

	if compressing {
		err = it.codec.Compress(w, r)
	} else {
		err = it.codec.Decompress(w, r)
	}
	if err != nil {
		w.Close()
		return it.failf(err, "transform %s", src)
	}
	if err := w.Close(); err != nil {
		return it.failf(err, "close %s", dest)
	}
	return Success
}

func (it *Interpreter) compress(ctx context.Context, args []string) Outcome {
	return it.transform(it.resolve(args[0]), it.resolve(args[1]), true)
}

func (it *Interpreter) decompress(ctx context.Context, args []string) Outcome {
	return it.transform(it.resolve(args[0]), it.resolve(args[1]), false)
}
