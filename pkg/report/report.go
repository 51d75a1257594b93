package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"sigs.k8s.io/yaml"

	"github.com/macropower/propedit/pkg/editor"
	"github.com/macropower/propedit/pkg/properrors"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// New returns the [editor.Reporter] for format.
//
//nolint:ireturn
func New(format string, w io.Writer) (editor.Reporter, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return NewText(w), nil
	case FormatJSON:
		return NewJSON(w), nil
	case FormatYAML:
		return NewYAML(w), nil
	default:
		return nil, fmt.Errorf("%w: output format %q, expected one of %v", properrors.ErrInvalidFormat, format, Formats)
	}
}

// JSON writes one JSON object per result.
type JSON struct {
	enc *json.Encoder
	mu  sync.Mutex
}

// NewJSON creates a [JSON] reporter.
func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

// Report implements [editor.Reporter].
func (j *JSON) Report(res *editor.Result) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.enc.Encode(res); err != nil {
		return fmt.Errorf("%w: %w", properrors.ErrJSONMarshal, err)
	}

	return nil
}

// YAML writes one YAML document per result, separated by "---".
type YAML struct {
	w     io.Writer
	count int
	mu    sync.Mutex
}

// NewYAML creates a [YAML] reporter.
func NewYAML(w io.Writer) *YAML {
	return &YAML{w: w}
}

// Report implements [editor.Reporter].
func (y *YAML) Report(res *editor.Result) error {
	b, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Errorf("%w: %w", properrors.ErrYAMLMarshal, err)
	}

	y.mu.Lock()
	defer y.mu.Unlock()

	if y.count > 0 {
		b = append([]byte("---\n"), b...)
	}

	y.count++

	if _, err := y.w.Write(b); err != nil {
		return fmt.Errorf("%w: %w", properrors.ErrWrite, err)
	}

	return nil
}
