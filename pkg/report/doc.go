// Package report writes [editor.Result] values for people and machines.
//
// [Text] prints a short styled summary per file, [JSON] prints one JSON
// object per line, and [YAML] prints one YAML document per file.
package report
