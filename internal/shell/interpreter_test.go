package shell

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/FileManager/internal/codec"
	"github.com/GriffinCanCode/FileManager/internal/providers/filesystem"
)

// runShellOn feeds the given lines to a fresh interpreter rooted at startDir
// over the given storage and returns everything it printed.
func runShellOn(t *testing.T, storage filesystem.Storage, startDir string, lines ...string) string {
	t.Helper()

	input := strings.Join(lines, "\n")
	var out bytes.Buffer

	interp := NewInterpreter(Options{
		Session:  NewSession("alice", startDir, nil),
		Storage:  storage,
		Codec:    codec.Gzip{},
		Terminal: NewTerminal(strings.NewReader(input), &out),
	})
	interp.Run(context.Background())
	return out.String()
}

// runShell is runShellOn against the host filesystem.
func runShell(t *testing.T, startDir string, lines ...string) string {
	t.Helper()
	return runShellOn(t, filesystem.NewOS(), startDir, lines...)
}

func cwdLine(path string) string {
	return "You are currently in " + path
}

func TestScenario(t *testing.T) {
	home := t.TempDir()

	got := runShell(t, home,
		"mkdir sub",
		"cd sub",
		"up",
		"add sub/note.txt",
		"cat sub/note.txt",
		"rm nonexistent.txt",
		"hash sub",
		".exit",
	)

	want := strings.Join([]string{
		"Welcome to the File Manager, alice!",
		cwdLine(home),
		cwdLine(home),                        // mkdir sub
		cwdLine(filepath.Join(home, "sub")),  // cd sub
		cwdLine(home),                        // up
		cwdLine(home),                        // add sub/note.txt
		"",                                   // cat of empty file: trailing newline only
		cwdLine(home),
		"Invalid input", // rm nonexistent.txt
		cwdLine(home),
		"Invalid input", // hash on a directory
		cwdLine(home),
		"Thank you for using File Manager, alice, goodbye!",
		"",
	}, "\n")
	assert.Equal(t, want, got)

	// mkdir and add really happened.
	fi, err := os.Stat(filepath.Join(home, "sub"))
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
	fi, err = os.Stat(filepath.Join(home, "sub", "note.txt"))
	require.NoError(t, err)
	assert.EqualValues(t, 0, fi.Size())
}

func TestEveryCommandReportsCwd(t *testing.T) {
	home := t.TempDir()

	commands := []string{
		"up", "ls", "tree", "cat", "cat missing", "add", "mkdir", "rn", "rn a",
		"cp", "mv", "rm", "hash", "compress", "decompress", "os", "os --bogus",
		"stat", "stat missing", "cd", "cd missing", "nonsense",
	}
	got := runShell(t, home, commands...)

	count := strings.Count(got, "You are currently in ")
	// One report at startup plus exactly one per dispatched command.
	assert.Equal(t, 1+len(commands), count)
}

func TestBlankLinesPrintNothing(t *testing.T) {
	home := t.TempDir()

	got := runShell(t, home, "", "   ", "\t", ".exit")

	want := strings.Join([]string{
		"Welcome to the File Manager, alice!",
		cwdLine(home),
		"Thank you for using File Manager, alice, goodbye!",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestUnknownCommand(t *testing.T) {
	home := t.TempDir()

	got := runShell(t, home, "frobnicate now")

	assert.Contains(t, got, "Invalid input")
}

func TestMissingArguments(t *testing.T) {
	home := t.TempDir()

	for _, cmd := range []string{"cd", "cat", "add", "mkdir", "rn old", "cp one", "mv one", "rm", "hash", "compress one", "decompress one", "os"} {
		got := runShell(t, home, cmd)
		assert.Contains(t, got, "Invalid input", "command %q", cmd)
	}
}

func TestCancelledContextSaysGoodbye(t *testing.T) {
	home := t.TempDir()
	var out bytes.Buffer

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	interp := NewInterpreter(Options{
		Session:  NewSession("bob", home, nil),
		Storage:  filesystem.NewOS(),
		Terminal: NewTerminal(strings.NewReader(""), &out),
	})
	interp.Run(ctx)

	assert.Contains(t, out.String(), "Thank you for using File Manager, bob, goodbye!")
}

func TestListOrdering(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(home, "zoo"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(home, "Alpha"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "beta.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(home, "Ant.txt"), nil, 0644))

	got := runShell(t, home, "ls", ".exit")

	want := strings.Join([]string{
		"Welcome to the File Manager, alice!",
		cwdLine(home),
		"Alpha <DIR>",
		"zoo <DIR>",
		"Ant.txt <FILE>",
		"beta.txt <FILE>",
		cwdLine(home),
		"Thank you for using File Manager, alice, goodbye!",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestCatPrintsContent(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "note.txt"), []byte("hello"), 0644))

	got := runShell(t, home, "cat note.txt")

	assert.Contains(t, got, "hello\n"+cwdLine(home))
}

func TestCatRestOfLineName(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "my notes.txt"), []byte("spaced"), 0644))

	got := runShell(t, home, "cat my notes.txt")

	assert.Contains(t, got, "spaced")
	assert.NotContains(t, got, "Invalid input")
}

func TestAddExistingFileFails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "dup.txt"), nil, 0644))

	got := runShell(t, home, "add dup.txt")

	assert.Contains(t, got, "Operation failed")
}

func TestMkdirExistingFails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(home, "sub"), 0755))

	got := runShell(t, home, "mkdir sub", "mkdir deep/nested")

	assert.Equal(t, 2, strings.Count(got, "Operation failed"))
}

func TestRename(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "old.txt"), []byte("x"), 0644))

	got := runShell(t, home, "rn old.txt new.txt")

	assert.NotContains(t, got, "Operation failed")
	assert.NoFileExists(t, filepath.Join(home, "old.txt"))
	assert.FileExists(t, filepath.Join(home, "new.txt"))
}

func TestRenameMissingSourceFails(t *testing.T) {
	home := t.TempDir()

	got := runShell(t, home, "rn ghost.txt new.txt")

	assert.Contains(t, got, "Operation failed")
}

func TestCopyPreservesSourceAndContent(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "src.txt"), []byte("payload"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(home, "dest"), 0755))

	got := runShell(t, home, "cp src.txt dest")

	assert.NotContains(t, got, "Operation failed")
	assert.NotContains(t, got, "Invalid input")

	original, err := os.ReadFile(filepath.Join(home, "src.txt"))
	require.NoError(t, err)
	copied, err := os.ReadFile(filepath.Join(home, "dest", "src.txt"))
	require.NoError(t, err)
	assert.Equal(t, original, copied)
}

func TestCopyRejectsBadArguments(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(home, "dir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "f.txt"), nil, 0644))

	// Source is a directory.
	got := runShell(t, home, "cp dir dir")
	assert.Contains(t, got, "Invalid input")

	// Destination is a file, not a directory.
	got = runShell(t, home, "cp f.txt f.txt")
	assert.Contains(t, got, "Invalid input")
}

func TestMove(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "src.txt"), []byte("moved content"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(home, "dest"), 0755))

	got := runShell(t, home, "mv src.txt dest")

	assert.NotContains(t, got, "Operation failed")
	assert.NoFileExists(t, filepath.Join(home, "src.txt"))

	data, err := os.ReadFile(filepath.Join(home, "dest", "src.txt"))
	require.NoError(t, err)
	assert.Equal(t, "moved content", string(data))
}

// crossDeviceStorage refuses atomic renames the way a mount boundary does.
type crossDeviceStorage struct {
	filesystem.Storage
}

func (crossDeviceStorage) Rename(src, dest string) error {
	return fmt.Errorf("rename %s: %w", src, filesystem.ErrCrossDevice)
}

func TestMoveCrossDeviceFallsBackToCopy(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "src.txt"), []byte("spans devices"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(home, "dest"), 0755))

	got := runShellOn(t, crossDeviceStorage{filesystem.NewOS()}, home, "mv src.txt dest")

	assert.NotContains(t, got, "Operation failed")
	assert.NotContains(t, got, "Invalid input")

	// Copy-then-delete: the source is gone and the destination holds the
	// original bytes.
	assert.NoFileExists(t, filepath.Join(home, "src.txt"))
	data, err := os.ReadFile(filepath.Join(home, "dest", "src.txt"))
	require.NoError(t, err)
	assert.Equal(t, "spans devices", string(data))
}

func TestHashDeterministic(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "a.txt"), []byte("fixed"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(home, "b.txt"), []byte("fixed"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(home, "c.txt"), []byte("fixeD"), 0644))

	got := runShell(t, home, "hash a.txt", "hash b.txt", "hash c.txt", ".exit")

	lines := strings.Split(got, "\n")
	var digests []string
	for _, line := range lines {
		if len(line) == 64 && !strings.Contains(line, " ") {
			digests = append(digests, line)
		}
	}
	require.Len(t, digests, 3)
	assert.Equal(t, digests[0], digests[1])
	assert.NotEqual(t, digests[0], digests[2])
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	home := t.TempDir()
	payload := []byte("round trip payload\x00\x01\x02")
	require.NoError(t, os.WriteFile(filepath.Join(home, "orig.bin"), payload, 0644))

	got := runShell(t, home,
		"compress orig.bin orig.bin.gz",
		"decompress orig.bin.gz restored.bin",
	)

	assert.NotContains(t, got, "Operation failed")
	assert.NotContains(t, got, "Invalid input")

	restored, err := os.ReadFile(filepath.Join(home, "restored.bin"))
	require.NoError(t, err)
	assert.Equal(t, payload, restored)
}

func TestCompressEmptyFileRoundTrip(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "empty"), nil, 0644))

	got := runShell(t, home,
		"compress empty empty.gz",
		"decompress empty.gz restored",
	)

	assert.NotContains(t, got, "Operation failed")
	restored, err := os.ReadFile(filepath.Join(home, "restored"))
	require.NoError(t, err)
	assert.Empty(t, restored)
}

func TestCompressMissingDestParent(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "f.txt"), []byte("x"), 0644))

	got := runShell(t, home, "compress f.txt nowhere/f.gz")

	assert.Contains(t, got, "Invalid input")
}

func TestOSFacts(t *testing.T) {
	home := t.TempDir()

	got := runShell(t, home, "os --architecture", "os --EOL", "os --nope")

	assert.Contains(t, got, runtime.GOARCH)
	if runtime.GOOS == "windows" {
		assert.Contains(t, got, `"\r\n"`)
	} else {
		assert.Contains(t, got, `"\n"`)
	}
	assert.Contains(t, got, "Invalid input")
}

func TestStat(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "doc.txt"), []byte("some text\n"), 0644))

	got := runShell(t, home, "stat doc.txt")

	assert.Contains(t, got, "Name: doc.txt")
	assert.Contains(t, got, "Kind: FILE")
	assert.Contains(t, got, fmt.Sprintf("Size: %d bytes", len("some text\n")))
	assert.Contains(t, got, "MIME: text/plain")
}

func TestTree(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "a", "b"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "a", "f.txt"), nil, 0644))

	got := runShell(t, home, "tree")

	assert.Contains(t, got, "a <DIR>")
	assert.Contains(t, got, "  b <DIR>")
	assert.Contains(t, got, "  f.txt <FILE>")
}

func TestCdEscapeClampsToRoot(t *testing.T) {
	home := t.TempDir()

	// Escaping resolution clamps to the filesystem root, which exists, so cd
	// succeeds and lands exactly on the boundary.
	got := runShell(t, home, "cd ../../../../../../../../..")

	assert.Contains(t, got, cwdLine(string(filepath.Separator))+"\n")
}

func TestExitKeywordVariants(t *testing.T) {
	home := t.TempDir()

	for _, keyword := range []string{".exit", "exit"} {
		got := runShell(t, home, keyword, "ls")
		// Nothing after the exit keyword is processed.
		assert.Equal(t, 1, strings.Count(got, "You are currently in "), "keyword %q", keyword)
		assert.Contains(t, got, "goodbye!")
	}
}
