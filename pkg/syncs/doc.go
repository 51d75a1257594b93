// Package syncs provides synchronization primitives and utilities.
//
// [PathLock] serializes edits of the same file within one process while
// letting edits of different files proceed concurrently.
package syncs
