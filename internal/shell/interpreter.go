package shell

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileManager/internal/codec"
	"github.com/GriffinCanCode/FileManager/internal/logging"
	"github.com/GriffinCanCode/FileManager/internal/providers/filesystem"
	"github.com/GriffinCanCode/FileManager/internal/providers/system"
	"github.com/GriffinCanCode/FileManager/internal/shared/paths"
	"github.com/GriffinCanCode/FileManager/internal/shared/utils"
)

// Options configures an Interpreter. Session, Storage, and Terminal are
// required; the rest default sensibly.
type Options struct {
	Session  *Session
	Storage  filesystem.Storage
	Host     *system.Provider
	Codec    codec.Codec
	Hasher   *utils.Hasher
	Terminal *Terminal
	Logger   *logging.Logger
}

// Interpreter owns the read-eval-print loop: it reads one line, parses it,
// dispatches the matching operation, and reports the outcome followed by the
// current working directory.
type Interpreter struct {
	session *Session
	storage filesystem.Storage
	host    *system.Provider
	codec   codec.Codec
	hasher  *utils.Hasher
	term    *Terminal
	reg     *Registry
	log     *logging.Logger
}

// NewInterpreter wires an interpreter and registers all operations.
func NewInterpreter(opts Options) *Interpreter {
	it := &Interpreter{
		session: opts.Session,
		storage: opts.Storage,
		host:    opts.Host,
		codec:   opts.Codec,
		hasher:  opts.Hasher,
		term:    opts.Terminal,
		reg:     NewRegistry(),
		log:     opts.Logger,
	}
	if it.host == nil {
		it.host = system.NewProvider()
	}
	if it.codec == nil {
		it.codec = codec.Gzip{}
	}
	if it.hasher == nil {
		it.hasher = utils.DefaultHasher()
	}
	if it.log == nil {
		it.log = logging.NewNop()
	}

	for _, op := range []operation{
		{name: "up", arity: 0, run: it.navigateUp},
		{name: "cd", arity: 1, joinRest: true, run: it.changeDir},
		{name: "ls", arity: 0, run: it.list},
		{name: "tree", arity: 0, run: it.tree},
		{name: "cat", arity: 1, joinRest: true, run: it.readFile},
		{name: "add", arity: 1, joinRest: true, run: it.createFile},
		{name: "mkdir", arity: 1, joinRest: true, run: it.createDir},
		{name: "rn", arity: 2, run: it.rename},
		{name: "cp", arity: 2, run: it.copyFile},
		{name: "mv", arity: 2, run: it.moveFile},
		{name: "rm", arity: 1, joinRest: true, run: it.deleteFile},
		{name: "hash", arity: 1, joinRest: true, run: it.hashFile},
		{name: "compress", arity: 2, run: it.compress},
		{name: "decompress", arity: 2, run: it.decompress},
		{name: "os", arity: 1, run: it.hostFact},
		{name: "stat", arity: 1, joinRest: true, run: it.statPath},
	} {
		it.reg.Register(op)
	}
	it.log.Debug("operations registered", zap.Strings("commands", it.reg.Names()))
	return it
}

// Run executes the loop until the input closes, an exit keyword arrives, or
// ctx is cancelled. It always prints the farewell line before returning.
func (it *Interpreter) Run(ctx context.Context) {
	defer it.term.Close()

	it.term.Println("Welcome to the File Manager, %s!", it.session.Username)
	it.printCwd()

	lines := it.term.Lines()
	for {
		select {
		case <-ctx.Done():
			it.farewell()
			return
		case line, ok := <-lines:
			if !ok || it.dispatch(ctx, line) {
				it.farewell()
				return
			}
		}
	}
}

// dispatch handles one input line and reports whether the session should end.
func (it *Interpreter) dispatch(ctx context.Context, line string) (quit bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if trimmed == ".exit" || trimmed == "exit" {
		return true
	}

	tokens := strings.Fields(trimmed)
	name, args := tokens[0], tokens[1:]

	outcome := it.execute(ctx, name, args)
	switch outcome {
	case InvalidInput:
		it.term.Println("Invalid input")
	case OperationFailed:
		it.term.Println("Operation failed")
	}
	it.printCwd()
	return false
}

func (it *Interpreter) execute(ctx context.Context, name string, args []string) (outcome Outcome) {
	op, ok := it.reg.Lookup(name)
	if !ok {
		it.log.Debug("unknown command", zap.String("command", name))
		return InvalidInput
	}

	if len(args) < op.arity {
		return InvalidInput
	}
	if op.joinRest {
		args = []string{strings.Join(args, " ")}
	} else {
		args = args[:op.arity]
	}

	// A handler panic must not take the session down with it.
	defer func() {
		if r := recover(); r != nil {
			it.log.Error("handler panic",
				zap.String("command", name),
				zap.Any("panic", r),
			)
			outcome = OperationFailed
		}
	}()

	outcome = op.run(ctx, args)
	it.log.Debug("command dispatched",
		zap.String("command", name),
		zap.Stringer("outcome", outcome),
		zap.String("cwd", it.session.Cwd()),
	)
	return outcome
}

// resolve maps a raw path argument into the session's confined absolute space.
func (it *Interpreter) resolve(raw string) string {
	return paths.Resolve(raw, it.session.Cwd())
}

func (it *Interpreter) printCwd() {
	it.term.Println("You are currently in %s", it.session.Cwd())
}

func (it *Interpreter) farewell() {
	it.term.Println("Thank you for using File Manager, %s, goodbye!", it.session.Username)
	it.log.Info("session ended", zap.String("session_id", it.session.ID))
}

// failf logs a collaborator failure and classifies it.
func (it *Interpreter) failf(err error, format string, args ...any) Outcome {
	it.log.Warn(fmt.Sprintf(format, args...), zap.Error(err))
	return OperationFailed
}
