package shell

import (
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileManager/internal/logging"
	"github.com/GriffinCanCode/FileManager/internal/shared/paths"
)

// Session owns the working-directory state for one interpreter run.
//
// Invariant: cwd is always an absolute, normalized path equal to or below the
// filesystem root captured at construction. Only NavigateUp and SetCwd mutate
// it; both preserve the invariant.
type Session struct {
	ID       string
	Username string

	cwd  string
	root string
	log  *logging.Logger
}

// NewSession creates a session rooted at startDir. startDir is normalized to
// an absolute path; the confinement boundary is the filesystem root of that
// path.
func NewSession(username, startDir string, log *logging.Logger) *Session {
	if log == nil {
		log = logging.NewNop()
	}
	abs, err := filepath.Abs(startDir)
	if err != nil {
		abs = paths.Root(string(filepath.Separator))
	}
	abs = filepath.Clean(abs)

	s := &Session{
		ID:       uuid.NewString(),
		Username: username,
		cwd:      abs,
		root:     paths.Root(abs),
		log:      log,
	}
	s.log.Info("session started",
		zap.String("session_id", s.ID),
		zap.String("username", username),
		zap.String("cwd", abs),
	)
	return s
}

// Cwd returns the current working directory.
func (s *Session) Cwd() string {
	return s.cwd
}

// Root returns the confinement boundary captured at session start.
func (s *Session) Root() string {
	return s.root
}

// NavigateUp moves the working directory to its parent. At the filesystem
// root it is a no-op; it never fails.
func (s *Session) NavigateUp() {
	s.cwd = paths.Parent(s.cwd)
}

// SetCwd moves the working directory to dest, which must be absolute and
// normalized. A destination outside the root of the current working directory
// is refused silently, leaving state unchanged.
func (s *Session) SetCwd(dest string) {
	if !paths.Within(dest, paths.Root(s.cwd)) {
		s.log.Warn("refused out-of-bounds directory change",
			zap.String("session_id", s.ID),
			zap.String("dest", dest),
		)
		return
	}
	s.cwd = dest
}
