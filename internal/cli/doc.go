// Package cli defines the propedit command tree.
package cli
