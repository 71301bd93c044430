// Package filesystem provides the storage capability consumed by the shell.
//
// The Storage interface covers exactly the primitives the command handlers
// need: metadata queries, directory enumeration, streamed reads and writes,
// atomic rename with cross-device detection, deletion, non-recursive directory
// creation, bounded recursive walks, and MIME detection.
//
// Handlers depend only on the interface; OS is the sole production
// implementation. Outcomes that handlers branch on (already exists, not found,
// cross-device) are surfaced as sentinel errors rather than booleans so that
// callers use errors.Is instead of string matching.
package filesystem
