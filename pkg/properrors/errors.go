package properrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest indicates a mutation request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnsupportedAction indicates an action other than update or delete.
	ErrUnsupportedAction = fmt.Errorf("%w: unsupported action", ErrInvalidRequest)

	// ErrMissingValue indicates an update without a value.
	ErrMissingValue = fmt.Errorf("%w: missing value", ErrInvalidRequest)

	// ErrInvalidKey indicates an empty key or a key containing whitespace.
	ErrInvalidKey = fmt.Errorf("%w: invalid key", ErrInvalidRequest)

	// ErrInvalidValue indicates a value spanning more than one line.
	ErrInvalidValue = fmt.Errorf("%w: invalid value", ErrInvalidRequest)

	// ErrEmptyRequest indicates a request with no operations.
	ErrEmptyRequest = fmt.Errorf("%w: no operations", ErrInvalidRequest)

	// ErrRead indicates an error occurred while reading.
	ErrRead = errors.New("read")

	// ErrReadFile indicates an error occurred while reading a file.
	ErrReadFile = fmt.Errorf("file: %w", ErrRead)

	// ErrWrite indicates an error occurred while writing.
	ErrWrite = errors.New("write")

	// ErrWriteFile indicates an error occurred while writing a file.
	ErrWriteFile = fmt.Errorf("file: %w", ErrWrite)

	// ErrBackup indicates the target file could not be snapshotted.
	ErrBackup = errors.New("backup")

	// ErrFileNotFound indicates a file wasn't found in the specified path.
	ErrFileNotFound = errors.New("file not found")

	// ErrKeyNotFound indicates a property key wasn't found in a file.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidFormat indicates an unexpected or invalid format was encountered.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrDecodeRequest indicates a request document could not be decoded.
	ErrDecodeRequest = errors.New("decode request")

	// ErrJSONMarshal indicates an error occurred while marshaling JSON.
	ErrJSONMarshal = errors.New("marshal JSON")

	// ErrYAMLMarshal indicates an error occurred while marshaling YAML.
	ErrYAMLMarshal = errors.New("marshal YAML")
)
