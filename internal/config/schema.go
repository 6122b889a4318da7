// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "stackscan.config.schema.json"

// Schema returns the JSON schema of the configuration file.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		Anonymous:      true,
		ExpandedStruct: true,
	}

	return r.Reflect(&Config{})
}

// validateSchema validates a decoded YAML document against Schema. An empty document is valid.
func validateSchema(doc any) error {
	if doc == nil {
		return nil
	}

	schemaJSON, err := json.Marshal(Schema())
	if err != nil {
		return fmt.Errorf("marshaling config schema: %w", err)
	}

	schemaDoc, err := validator.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return fmt.Errorf("decoding config schema: %w", err)
	}

	compiler := validator.NewCompiler()
	if err := compiler.AddResource(schemaURL, schemaDoc); err != nil {
		return fmt.Errorf("adding config schema: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}

	// Round-trip through JSON so YAML scalars take their JSON types.
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("converting config to json: %w", err)
	}

	instance, err := validator.UnmarshalJSON(bytes.NewReader(docJSON))
	if err != nil {
		return fmt.Errorf("converting config to json: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	return nil
}
