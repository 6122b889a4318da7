// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JsonFormatterOptions are the options accepted by JsonFormatter.
type JsonFormatterOptions struct {
	// Query is a JMESPath expression applied to the document before it is written.
	Query string
}

type JsonFormatter struct {
}

func (f *JsonFormatter) Kind() Format {
	return JsonFormat
}

func (f *JsonFormatter) Format(obj interface{}, writer io.Writer, opts interface{}) error {
	if options, ok := opts.(JsonFormatterOptions); ok && options.Query != "" {
		result, err := Query(obj, options.Query)
		if err != nil {
			return err
		}
		obj = result
	}

	b, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}

	_, err = writer.Write(append(b, '\n'))
	if err != nil {
		return fmt.Errorf("could not write content: %w", err)
	}

	return nil
}

var _ Formatter = (*JsonFormatter)(nil)
