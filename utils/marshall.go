// Package utils contains JSON helpers for polymorphic values.
package utils

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// TypeBasedUnmarshallJSON reads the "type" field of data, creates the value
// registered for it in typeMapping and unmarshals data into it. The returned
// value is the dereferenced struct, not a pointer.
func TypeBasedUnmarshallJSON(
	data []byte, typeMapping map[string]func() interface{},
) (interface{}, error) {
	var rawType struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &rawType); err != nil {
		return nil, err
	}

	create, knownType := typeMapping[rawType.Type]
	if !knownType {
		return nil, fmt.Errorf("unknown type %q", rawType.Type)
	}
	value := create()
	if err := json.Unmarshal(data, value); err != nil {
		return nil, err
	}
	reflectValue := reflect.ValueOf(value)
	if reflectValue.Kind() != reflect.Ptr {
		return nil, fmt.Errorf("invalid input type %T", value)
	}
	return reflectValue.Elem().Interface(), nil
}
