// Package editor applies property requests to files on disk.
//
// An [Editor] wraps the pure [patch.Apply] with the side effects around
// it: request validation, existence checks, per-file locking, optional
// snapshots, atomic writes, and reporting. Each collaborator is an
// interface so callers can swap or disable it.
package editor
