// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import "fmt"

// Section is a titled block of rows, rendered by the table and markdown formatters.
type Section struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Sectioner is implemented by results that have a tabular form.
type Sectioner interface {
	Sections() []Section
}

func sectionsOf(obj interface{}, kind Format) ([]Section, error) {
	switch v := obj.(type) {
	case Sectioner:
		return v.Sections(), nil
	case []Section:
		return v, nil
	case Section:
		return []Section{v}, nil
	default:
		return nil, fmt.Errorf("%s format is not supported for %T, use --output json", kind, obj)
	}
}
