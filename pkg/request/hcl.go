package request

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// hclDocument is the HCL shape of a request:
//
//	property "user.name" {
//	  value  = env.USER
//	  action = "update"
//	}
type hclDocument struct {
	Properties []hclProperty `hcl:"property,block"`
}

type hclProperty struct {
	Value  *string `hcl:"value,optional"`
	Key    string  `hcl:"key,label"`
	Action string  `hcl:"action"`
}

func decodeHCL(name string, data []byte) ([]Property, error) {
	if !strings.HasSuffix(name, ".hcl") {
		name += ".hcl"
	}

	doc := hclDocument{}

	if err := hclsimple.Decode(name, data, evalContext(), &doc); err != nil {
		return nil, err //nolint:wrapcheck // Wrapped by Decode.
	}

	props := make([]Property, 0, len(doc.Properties))
	for _, p := range doc.Properties {
		props = append(props, Property{Key: p.Key, Value: p.Value, Action: Action(p.Action)})
	}

	return props, nil
}

// evalContext exposes environment variables as env.<NAME>.
func evalContext() *hcl.EvalContext {
	env := map[string]cty.Value{}

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !hclsyntax.ValidIdentifier(k) {
			continue
		}

		env[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}
