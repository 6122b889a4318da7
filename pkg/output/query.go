// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath-community/go-jmespath"
)

// Query evaluates a JMESPath expression against the JSON form of obj.
func Query(obj interface{}, query string) (interface{}, error) {
	// Expressions address JSON keys, so struct values go through their JSON form first.
	b, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}

	var data interface{}
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshaling result: %w", err)
	}

	result, err := jmespath.Search(query, data)
	if err != nil {
		return nil, fmt.Errorf("evaluating query '%s': %w", query, err)
	}

	return result, nil
}
