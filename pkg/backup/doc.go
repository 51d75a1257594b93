// Package backup snapshots a file before it is rewritten.
//
// Snapshots are written next to the original as
// "<path>.<tool>-bkup_<dd-mm-YYYY_HH:MM>", optionally gzip-compressed.
package backup
