package properties

import "strings"

// Split breaks content into lines. A final "\n" terminates the last line
// rather than starting an empty one, so empty content has no lines.
func Split(content string) []string {
	if content == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// EOL returns the terminator used by the first line of content, [LF] when
// content has no lines.
func EOL(content string) string {
	first, _, _ := strings.Cut(content, LF)
	if strings.HasSuffix(first, "\r") {
		return CRLF
	}

	return LF
}

// ParseAll classifies every line of content.
func ParseAll(content string) []Line {
	raw := Split(content)
	lines := make([]Line, 0, len(raw))

	for _, r := range raw {
		lines = append(lines, Parse(r))
	}

	return lines
}

// Entries returns the entry lines of content in file order.
func Entries(content string) []Line {
	var entries []Line

	for _, l := range ParseAll(content) {
		if l.IsEntry() {
			entries = append(entries, l)
		}
	}

	return entries
}

// Lookup returns the trimmed value of the first entry named key.
func Lookup(content, key string) (string, bool) {
	for _, l := range ParseAll(content) {
		if l.IsEntry() && l.Key == key {
			return l.Value(), true
		}
	}

	return "", false
}
