package properties

import "strings"

// Kind is the classification of a [Line].
type Kind int

const (
	// KindOpaque is a blank line, a comment, or a line without "=".
	KindOpaque Kind = iota
	// KindEntry is a key/value property.
	KindEntry
)

func (k Kind) String() string {
	switch k {
	case KindEntry:
		return "entry"
	default:
		return "opaque"
	}
}

// CommentPrefix starts a comment line.
const CommentPrefix = "#"

// Line terminators.
const (
	LF   = "\n"
	CRLF = "\r\n"
)

// Line is one physical line of a properties file, without its terminator.
type Line struct {
	// Raw is the line exactly as read.
	Raw string
	// Key is the trimmed text before the first "=". Empty for opaque lines.
	Key string
	// RawValue is the text after the first "=", untrimmed. Empty for opaque
	// lines.
	RawValue string
	Kind     Kind
}

// Parse classifies a single line. Blank and comment lines are opaque even
// when they contain "=".
func Parse(raw string) Line {
	l := Line{Raw: raw, Kind: KindOpaque}

	trimmed := strings.TrimSpace(raw)

	switch {
	case trimmed == "":
		return l
	case strings.HasPrefix(trimmed, CommentPrefix):
		return l
	}

	key, value, found := strings.Cut(trimmed, "=")
	if !found {
		return l
	}

	l.Kind = KindEntry
	l.Key = strings.TrimSpace(key)
	l.RawValue = value

	return l
}

// IsEntry reports whether l is a key/value property.
func (l Line) IsEntry() bool {
	return l.Kind == KindEntry
}

// Value returns the trimmed value of an entry.
func (l Line) Value() string {
	return strings.TrimSpace(l.RawValue)
}

// EOL returns the terminator to write after an edited form of l: "\r\n"
// when Raw ends with a carriage return, "\n" otherwise.
func (l Line) EOL() string {
	if strings.HasSuffix(l.Raw, "\r") {
		return CRLF
	}

	return LF
}

// Trimmed returns the line without surrounding whitespace.
func (l Line) Trimmed() string {
	return strings.TrimSpace(l.Raw)
}
