package patch

import (
	"fmt"
	"strings"

	"github.com/macropower/propedit/pkg/properties"
)

// AppendFooter closes the block of appended properties.
const AppendFooter = "#################"

// Outcome is the result of [Apply].
type Outcome struct {
	// Content is the rewritten file. Every line ends with "\n". Edited
	// lines keep the carriage return of the line they replace, and the
	// appended block follows the file's first line.
	Content string
	// Updated lists keys whose value changed in place.
	Updated []string
	// Deleted lists keys that were commented out, once per occurrence.
	Deleted []string
	// Appended lists keys added in the trailing block, in request order.
	Appended []string
	// Changed is true when Content differs from what was read.
	Changed bool
}

// Lines returns Content split into lines.
func (o Outcome) Lines() []string {
	return properties.Split(o.Content)
}

// Apply rewrites content according to req.
//
// Entries whose key is pending update are rewritten as "key=value" only
// when the trimmed value differs; the first match consumes the update.
// Entries whose key is being deleted are replaced by an audit block, for
// every occurrence. Updates that matched nothing are appended. All other
// lines are emitted unchanged. A single timestamp is used for every
// annotation of one call.
func Apply(content string, req Request, opts ...Option) Outcome {
	cfg := newConfig(opts...)
	now := cfg.formatTime(cfg.now())

	pending := newPendingUpdates(req)
	deletes := newDeleteSet(req)

	var (
		out strings.Builder
		o   Outcome
	)

	emit := func(line, eol string) {
		out.WriteString(line)
		out.WriteString(eol)
	}

	for _, raw := range properties.Split(content) {
		line := properties.Parse(raw)
		if !line.IsEntry() {
			emit(line.Raw, properties.LF)

			continue
		}

		if value, ok := pending.take(line.Key); ok {
			value = strings.TrimSpace(value)
			if line.Value() == value {
				emit(line.Raw, properties.LF)

				continue
			}

			o.Changed = true
			o.Updated = append(o.Updated, line.Key)
			emit(line.Key+"="+value, line.EOL())

			continue
		}

		if _, ok := deletes[line.Key]; ok {
			o.Changed = true
			o.Deleted = append(o.Deleted, line.Key)

			for _, l := range removedBlock(line, cfg.tool, now) {
				emit(l, line.EOL())
			}

			continue
		}

		emit(line.Raw, properties.LF)
	}

	if keys := pending.remaining(); len(keys) > 0 {
		o.Changed = true
		o.Appended = keys

		eol := properties.EOL(content)

		emit("", eol)
		emit(fmt.Sprintf("# Added by %s at %s", cfg.tool, now), eol)

		for _, k := range keys {
			emit(k+"="+pending.values[k], eol)
		}

		emit(AppendFooter, eol)
	}

	o.Content = out.String()

	return o
}

func removedBlock(line properties.Line, tool, now string) []string {
	return []string{
		"",
		fmt.Sprintf("# The following property (%s) was removed by %s on %s", line.Key, tool, now),
		properties.CommentPrefix + line.Trimmed(),
		"",
	}
}
