package request

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	sigsyaml "sigs.k8s.io/yaml"

	"github.com/macropower/propedit/pkg/properrors"
)

// Format is a request document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
)

// Document is the YAML and JSON shape of a request.
type Document struct {
	// Properties to update or delete, applied in order.
	Properties []Property `json:"properties" jsonschema:"title=Properties,minItems=1" yaml:"properties"`
}

type tomlDocument struct {
	Property []Property `toml:"property"`
}

// FormatFromPath guesses the document format from a file extension,
// defaulting to YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	case ".hcl":
		return FormatHCL
	default:
		return FormatYAML
	}
}

// ReadFile decodes the request document at path.
func ReadFile(path string) ([]Property, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", properrors.ErrReadFile, path, err)
	}

	props, err := Decode(filepath.Base(path), data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return props, nil
}

// Decode decodes a request document. The name is used in HCL diagnostics.
func Decode(name string, data []byte, format Format) ([]Property, error) {
	var (
		props []Property
		err   error
	)

	switch format {
	case FormatYAML:
		props, err = decodeYAML(data)
	case FormatJSON:
		props, err = decodeJSON(data)
	case FormatTOML:
		props, err = decodeTOML(data)
	case FormatHCL:
		props, err = decodeHCL(name, data)
	default:
		return nil, fmt.Errorf("%w: request format %q", properrors.ErrInvalidFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", properrors.ErrDecodeRequest, format, err)
	}

	return props, nil
}

func decodeYAML(data []byte) ([]Property, error) {
	doc := Document{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err //nolint:wrapcheck // Wrapped by Decode.
	}

	return doc.Properties, nil
}

func decodeJSON(data []byte) ([]Property, error) {
	doc := Document{}

	if err := sigsyaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, err //nolint:wrapcheck // Wrapped by Decode.
	}

	return doc.Properties, nil
}

func decodeTOML(data []byte) ([]Property, error) {
	doc := tomlDocument{}

	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	if err != nil {
		return nil, err //nolint:wrapcheck // Wrapped by Decode.
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown fields: %v", undecoded)
	}

	return doc.Property, nil
}
