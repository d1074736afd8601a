package config

import "github.com/invopop/jsonschema"

// Schema describes the configuration file format.
func Schema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
