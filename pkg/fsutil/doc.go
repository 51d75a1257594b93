// Package fsutil provides file helpers for rewriting files in place.
package fsutil
