// Package shell implements the interactive file manager: the command
// interpreter loop, the session working-directory state, the operation
// registry, and one handler per command.
//
// The interpreter is single-threaded by construction: one line is read,
// parsed, dispatched, and reported before the next line is consumed, so the
// session state never sees concurrent mutation. Every dispatched command,
// whatever its outcome, ends with exactly one current-directory report line.
//
// Failures are folded into a two-tier taxonomy. InvalidInput covers malformed
// requests and violated preconditions detected before any mutating I/O;
// OperationFailed covers collaborator I/O errors at execution time. A
// command's failure never terminates the session.
package shell
