package request

import (
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/macropower/propedit/pkg/properrors"
)

// Schema returns the JSON schema of a YAML or JSON request [Document].
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	s := r.Reflect(&Document{})
	s.Title = "propedit request"

	b, err := s.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", properrors.ErrJSONMarshal, err)
	}

	return b, nil
}
