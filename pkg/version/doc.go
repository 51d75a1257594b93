// Package version provides version information for the application.
//
// Version and Revision are set at link time with -ldflags "-X". When they
// are not, module build information is used.
package version
