package request

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"

	"github.com/macropower/propedit/pkg/patch"
	"github.com/macropower/propedit/pkg/properrors"
)

// Action is what to do with a property.
type Action string

const (
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Property is one requested mutation as written by the user.
type Property struct {
	// Value is the new value. Required for updates, ignored for deletes.
	// It must fit on one line.
	Value *string `json:"value,omitempty" jsonschema:"title=Value,pattern=^[^\\r\\n]*$" toml:"value" yaml:"value,omitempty"`
	// Key is the property name. It must not contain whitespace.
	Key string `json:"key" jsonschema:"title=Key,minLength=1,pattern=^\\S+$" toml:"key" yaml:"key"`
	// Action is either update or delete.
	Action Action `json:"action" jsonschema:"title=Action,enum=update,enum=delete" toml:"action" yaml:"action"`
}

// Update returns a [Property] that sets key to value.
func Update(key, value string) Property {
	return Property{Key: key, Value: &value, Action: ActionUpdate}
}

// Delete returns a [Property] that removes key.
func Delete(key string) Property {
	return Property{Key: key, Action: ActionDelete}
}

// Validate checks a single property.
func (p Property) Validate() error {
	var merr error

	switch {
	case p.Key == "":
		merr = multierror.Append(merr, fmt.Errorf("%w: key cannot be empty", properrors.ErrInvalidKey))
	case strings.IndexFunc(p.Key, unicode.IsSpace) >= 0:
		merr = multierror.Append(merr,
			fmt.Errorf("%w: %q: keys should not contain whitespace", properrors.ErrInvalidKey, p.Key))
	}

	switch p.Action {
	case ActionUpdate:
		switch {
		case p.Value == nil:
			merr = multierror.Append(merr,
				fmt.Errorf("%w: specify the value to set for the key %q", properrors.ErrMissingValue, p.Key))
		case strings.ContainsAny(*p.Value, "\r\n"):
			merr = multierror.Append(merr,
				fmt.Errorf("%w: value for %q must not contain line breaks", properrors.ErrInvalidValue, p.Key))
		}
	case ActionDelete:
	default:
		merr = multierror.Append(merr, fmt.Errorf("%w: %q", properrors.ErrUnsupportedAction, p.Action))
	}

	return merr
}

// Validate checks every property and reports all problems at once.
func Validate(props []Property) error {
	if len(props) == 0 {
		return properrors.ErrEmptyRequest
	}

	var merr *multierror.Error

	for _, p := range props {
		if err := p.Validate(); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	return merr.ErrorOrNil()
}

// Build validates props and converts them into a [patch.Request].
func Build(props []Property) (patch.Request, error) {
	if err := Validate(props); err != nil {
		return nil, err
	}

	return Convert(props)
}

// Convert turns props into a [patch.Request] without validating them.
// An update without a value sets the empty string. It only fails for
// actions that have no [patch.OpKind].
func Convert(props []Property) (patch.Request, error) {
	req := make(patch.Request, 0, len(props))

	for _, p := range props {
		switch p.Action {
		case ActionUpdate:
			var value string
			if p.Value != nil {
				value = *p.Value
			}

			req = append(req, patch.Update(p.Key, value))
		case ActionDelete:
			req = append(req, patch.Delete(p.Key))
		default:
			return nil, fmt.Errorf("%w: %q", properrors.ErrUnsupportedAction, p.Action)
		}
	}

	return req, nil
}

// ParseUpdate parses a "key=value" string into an update.
func ParseUpdate(s string) (Property, error) {
	key, value, found := strings.Cut(s, "=")
	if !found {
		return Property{}, fmt.Errorf("%w: no key=value pair found in %q", properrors.ErrInvalidRequest, s)
	}

	return Update(strings.TrimSpace(key), value), nil
}

// FromFlags builds properties from "key=value" updates and deleted keys,
// updates first.
func FromFlags(sets, deletes []string) ([]Property, error) {
	var merr *multierror.Error

	props := make([]Property, 0, len(sets)+len(deletes))

	for _, s := range sets {
		p, err := ParseUpdate(s)
		if err != nil {
			merr = multierror.Append(merr, err)

			continue
		}

		props = append(props, p)
	}

	for _, d := range deletes {
		props = append(props, Delete(d))
	}

	return props, merr.ErrorOrNil()
}
