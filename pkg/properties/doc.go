// Package properties models the lines of a ".properties" style file.
//
// Every physical line is classified as either an entry (a key/value pair
// split on the first "=") or an opaque line (blank, comment, or anything
// without "="). Opaque lines are never interpreted. There is no unescaping
// and no support for continuation lines.
package properties
