// Package patch applies update and delete operations to the text of a
// properties file while leaving every other line as it was.
//
// Matching entries are updated in place. Deleted entries are commented out
// inside a timestamped audit block. Updates for keys that do not exist are
// appended in a trailing block. [Apply] is a pure function: it does no I/O
// and never fails.
package patch
