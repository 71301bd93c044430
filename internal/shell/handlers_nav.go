package shell

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
)

func (it *Interpreter) navigateUp(ctx context.Context, args []string) Outcome {
	it.session.NavigateUp()
	return Success
}

func (it *Interpreter) changeDir(ctx context.Context, args []string) Outcome {
	dest := it.resolve(args[0])

	info, err := it.storage.Stat(dest)
	if err != nil {
		return it.failf(err, "cd: stat %s", dest)
	}
	if !info.Exists || !info.IsDir {
		return InvalidInput
	}

	it.session.SetCwd(dest)
	return Success
}

func (it *Interpreter) list(ctx context.Context, args []string) Outcome {
	entries, err := it.storage.List(it.session.Cwd())
	if err != nil {
		return it.failf(err, "ls: %s", it.session.Cwd())
	}

	// Directories first, each group sorted case-insensitively.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	for _, e := range entries {
		if e.IsDir {
			it.term.Println("%s <DIR>", e.Name)
		} else {
			it.term.Println("%s <FILE>", e.Name)
		}
	}
	return Success
}

// treeDepth bounds the recursive listing so a deep home directory cannot
// flood the terminal.
const treeDepth = 3

func (it *Interpreter) tree(ctx context.Context, args []string) Outcome {
	entries, err := it.storage.Walk(it.session.Cwd(), treeDepth)
	if err != nil {
		return it.failf(err, "tree: %s", it.session.Cwd())
	}

	for _, e := range entries {
		parts := strings.Split(e.Path, string(filepath.Separator))
		indent := strings.Repeat("  ", len(parts)-1)
		name := parts[len(parts)-1]
		if e.IsDir {
			it.term.Println("%s%s <DIR>", indent, name)
		} else {
			it.term.Println("%s%s <FILE>", indent, name)
		}
	}
	return Success
}
