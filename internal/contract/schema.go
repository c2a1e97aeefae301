package contract

import (
	"reflect"

	"github.com/google/jsonschema-go/jsonschema"

	"stakeplug/internal/domain"
)

// SchemaOptions returns jsonschema inference options that describe domain
// types by their JSON encoding rather than their Go layout.
func SchemaOptions() *jsonschema.ForOptions {
	return &jsonschema.ForOptions{
		TypeSchemas: map[reflect.Type]*jsonschema.Schema{
			reflect.TypeFor[domain.PublicKey]():   publicKeySchema(),
			reflect.TypeFor[domain.RelTimeLock](): relTimeLockSchema(),
		},
	}
}

// SchemaFor infers the argument schema of T.
func SchemaFor[T any]() (*jsonschema.Schema, error) {
	return jsonschema.For[T](SchemaOptions())
}

func publicKeySchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Description: "x-only secp256k1 public key, hex encoded",
		Pattern:     "^[0-9a-fA-F]{64}$",
	}
}

func relTimeLockSchema() *jsonschema.Schema {
	units := func(desc string) *jsonschema.Schema {
		return &jsonschema.Schema{
			Type:        "integer",
			Description: desc,
			Minimum:     jsonschema.Ptr(1.0),
			Maximum:     jsonschema.Ptr(65535.0),
		}
	}
	return &jsonschema.Schema{
		Type:        "object",
		Description: "relative timelock: exactly one of RH (blocks) or RT (512 second units)",
		Properties: map[string]*jsonschema.Schema{
			"RH": units("relative height in blocks"),
			"RT": units("relative time in 512 second units"),
		},
		OneOf: []*jsonschema.Schema{
			{Required: []string{"RH"}},
			{Required: []string{"RT"}},
		},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}
