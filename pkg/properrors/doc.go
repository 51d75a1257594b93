// Package properrors provides error definitions shared across propedit.
//
// Errors are sentinel values meant to be wrapped with context and matched
// with [errors.Is].
package properrors
